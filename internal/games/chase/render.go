package chase

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/engine"
)

// Each maze tile is drawn two cells wide so the board keeps its aspect.
const cellsPerTile = 2

// Room for the HUD above and the status line below the board.
const (
	hudRows     = 1
	statusRows  = 1
	minHUDWidth = 36
)

// Visual characters for rendering
const (
	PelletChar      = '·'
	PowerPelletChar = '●'
	GateChar        = '╌'
	GhostChar       = 'ᗣ'
	EyesChar        = '"'
	PlayerClosed    = '●'
)

// wallGlyphs holds the two cells of each wall shape. The second cell
// continues a horizontal run to the right.
var wallGlyphs = map[engine.WallShape][cellsPerTile]rune{
	engine.WallHorizontal:  {'─', '─'},
	engine.WallVertical:    {'│', ' '},
	engine.WallCornerTL:    {'┌', '─'},
	engine.WallCornerTR:    {'┐', ' '},
	engine.WallCornerBR:    {'┘', ' '},
	engine.WallCornerBL:    {'└', '─'},
	engine.WallTerminatorL: {'╶', '─'},
	engine.WallTerminatorR: {'╴', ' '},
	engine.WallTerminatorT: {'╷', ' '},
	engine.WallTerminatorB: {'╵', ' '},
	engine.WallConnectorT:  {'┬', '─'},
	engine.WallConnectorR:  {'├', '─'},
	engine.WallConnectorL:  {'┤', ' '},
	engine.WallConnectorB:  {'┴', '─'},
	engine.WallBlock:       {'█', '█'},
}

var archetypeColors = map[engine.Archetype]core.Color{
	engine.Blinky: core.ColorBrightRed,
	engine.Pinky:  core.ColorBrightMagenta,
	engine.Inky:   core.ColorBrightCyan,
	engine.Clyde:  core.ColorOrange,
}

var playerGlyphs = map[engine.Direction]rune{
	engine.DirLeft:  'ᗤ',
	engine.DirRight: 'ᗧ',
	engine.DirUp:    'ᗢ',
	engine.DirDown:  'ᗜ',
}

var deathFrames = []rune{'ᗧ', '◔', '◑', '◕', '○', ' '}

// boardSize returns the screen size needed by the largest stage.
func boardSize(stages []engine.Stage) (w, h int) {
	w = minHUDWidth
	for _, s := range stages {
		rows := len(s.Rows)
		cols := 0
		for _, r := range s.Rows {
			cols = max(cols, len([]rune(r)))
		}
		w = max(w, cols*cellsPerTile)
		h = max(h, rows+hudRows+statusRows)
	}
	return w, h
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderError(dst)
		return
	}

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	m := g.eng.Maze()
	ox := (dst.Width() - m.Cols()*cellsPerTile) / 2
	oy := hudRows + (dst.Height()-hudRows-statusRows-m.Rows())/2

	g.renderHUD(dst)
	g.renderMaze(dst, ox, oy)
	g.renderGhosts(dst, ox, oy)
	g.renderPlayer(dst, ox, oy)
	g.renderStatus(dst, oy+m.Rows())
	g.renderOverlay(dst, oy+m.Rows()/2)
}

func (g *Game) renderError(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-1, "Cannot start game", core.ColorBrightRed)
	msg := g.err.Error()
	if w := dst.Width() - 2; w > 0 && len([]rune(msg)) > w {
		msg = string([]rune(msg)[:w])
	}
	dst.DrawTextCentered(mid+1, msg)
}

// renderHUD draws the score, stage and session best.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.eng.Player().Score))

	stage, index := g.eng.Stage()
	stageText := fmt.Sprintf("Stage %d/%d", index+1, g.eng.StageCount())
	if stage.Name != "" {
		stageText += " " + stage.Name
	}
	dst.DrawTextCentered(0, stageText)

	highText := fmt.Sprintf("High: %d", g.eng.HighScore())
	dst.DrawText(dst.Width()-len(highText)-1, 0, highText)
}

func (g *Game) renderMaze(dst *core.Screen, ox, oy int) {
	m := g.eng.Maze()

	wallColor := core.ColorBrightBlue
	if g.eng.State() == engine.StateRoundClear {
		wallColor = core.Blink(core.ColorBrightBlue, core.ColorBrightWhite, g.eng.Tick(), 15)
	}
	for _, w := range m.Walls() {
		glyph := wallGlyphs[w.Shape]
		for i, r := range glyph {
			dst.SetColored(ox+w.Tile.X*cellsPerTile+i, oy+w.Tile.Y, r, wallColor)
		}
	}

	for _, t := range m.Gates() {
		for i := 0; i < cellsPerTile; i++ {
			dst.SetColored(ox+t.X*cellsPerTile+i, oy+t.Y, GateChar, core.ColorMagenta)
		}
	}

	for _, c := range m.Collectibles() {
		x, y := ox+c.Tile.X*cellsPerTile, oy+c.Tile.Y
		if c.Kind == engine.KindPowerPellet {
			// Power pellets blink while the game runs
			if g.eng.State() != engine.StatePlay || (g.eng.Tick()/20)%2 == 0 {
				dst.SetColored(x, y, PowerPelletChar, core.ColorBrightYellow)
			}
			continue
		}
		dst.SetColored(x, y, PelletChar, core.ColorWhite)
	}
}

func (g *Game) renderGhosts(dst *core.Screen, ox, oy int) {
	m := g.eng.Maze()
	for _, gh := range g.eng.Ghosts() {
		if gh.Hidden() {
			continue
		}
		t := engine.TileAt(gh.Pos)
		if !m.InBounds(t) {
			continue
		}
		x, y := ox+t.X*cellsPerTile, oy+t.Y

		if gh.ShowingScore() {
			dst.DrawTextColored(x, y, fmt.Sprintf("%d", gh.Bonus()), core.ColorBrightCyan)
			continue
		}
		r, c := ghostGlyph(gh, g.eng.Tick())
		dst.SetColored(x, y, r, c)
	}
}

func ghostGlyph(gh *engine.Ghost, tick uint64) (rune, core.Color) {
	switch gh.Mode() {
	case engine.ModeCaptured:
		return EyesChar, core.ColorBrightWhite
	case engine.ModeEvade:
		return GhostChar, core.ColorBlue
	case engine.ModeEvadeEnding:
		return GhostChar, core.Blink(core.ColorBrightWhite, core.ColorBlue, tick, 8)
	}
	if c, ok := archetypeColors[gh.Archetype()]; ok {
		return GhostChar, c
	}
	return GhostChar, core.ColorRed
}

func (g *Game) renderPlayer(dst *core.Screen, ox, oy int) {
	p := g.eng.Player()
	if g.eng.State() == engine.StateMenu {
		return
	}
	t := engine.TileAt(p.Pos)
	if !g.eng.Maze().InBounds(t) {
		return
	}
	dst.SetColored(ox+t.X*cellsPerTile, oy+t.Y, playerGlyph(p), core.ColorBrightYellow)
}

func playerGlyph(p *engine.Player) rune {
	if p.Killed() {
		i := int(p.DeathProgress() * float64(len(deathFrames)-1))
		return deathFrames[i]
	}
	mouth := p.Mouth()
	if mouth < 0.25 || mouth >= 2*math.Pi-0.01 {
		return PlayerClosed
	}
	return playerGlyphs[p.Heading()]
}

// renderStatus draws remaining lives and the event banner under the board.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	if g.eng.State() != engine.StateMenu {
		lives := strings.Repeat(string(playerGlyphs[engine.DirRight])+" ", max(g.eng.Player().Lives, 0))
		dst.DrawTextColored(1, y, lives, core.ColorBrightYellow)
	}
	if g.banner.text != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(g.banner.text))-1, y, g.banner.text, core.ColorBrightGreen)
	}
}

// renderOverlay draws state messages in a framed panel over the board.
func (g *Game) renderOverlay(dst *core.Screen, mid int) {
	if g.eng.Paused() {
		drawPanel(dst, mid, core.ColorBrightWhite, "PAUSED")
		return
	}

	switch g.eng.State() {
	case engine.StateMenu:
		drawPanel(dst, mid, core.ColorBrightYellow, "C H A S E", "", "Press Enter to start")
	case engine.StateReady:
		drawPanel(dst, mid, core.ColorBrightYellow, "READY!")
	case engine.StateGameOver:
		drawPanel(dst, mid, core.ColorBrightRed, "GAME OVER")
	case engine.StateFinished:
		drawPanel(dst, mid, core.ColorBrightGreen, "ALL STAGES CLEAR")
	}
}

// drawPanel blanks a box centered on row mid and writes lines inside it.
// The first line takes the accent color.
func drawPanel(dst *core.Screen, mid int, accent core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	r := core.NewRect(0, 0, w+4, len(lines)+2).CenteredOn(dst.Width()/2, mid)
	r.X = core.Clamp(r.X, 0, max(dst.Width()-r.W, 0))
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)

	inner := r.Inset(1)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = accent
		}
		x := inner.X + (inner.W-utf8.RuneCountInString(l))/2
		dst.DrawTextColored(x, inner.Y+i, l, c)
	}
}
