// Package chase adapts the maze chase engine to the terminal platform:
// configuration, stage packs, keyboard input and terminal rendering.
package chase

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/engine"
	"github.com/vovakirdan/tui-chase/internal/games/chase/levels"
	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/sched"
)

// Settings set via CLI before the platform creates a game.
var (
	configPath       string
	stagesDir        string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetStagesDir makes games load stages from a directory instead of an
// embedded pack.
func SetStagesDir(dir string) {
	stagesDir = dir
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes engine and game logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game on top of the chase engine.
type Game struct {
	id    string
	title string
	pack  string

	eng    *engine.Engine
	clock  *sched.ManualClock
	input  *stickyInput
	banner *banner

	runtime  core.RuntimeConfig
	cfg      config.ChaseConfig
	tickStep time.Duration
	err      error // Setup failure, shown instead of the maze

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates the classic chase game.
func New() *Game {
	return &Game{id: "chase", title: "Chase", pack: levels.PackClassic}
}

// NewMini creates the chase game on the small practice pack.
func NewMini() *Game {
	return &Game{id: "chase_mini", title: "Chase (Mini)", pack: levels.PackMini}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Engine exposes the running engine, nil if setup failed.
func (g *Game) Engine() *engine.Engine { return g.eng }

// Err returns the setup error, if any.
func (g *Game) Err() error { return g.err }

// Reset loads configuration and stages and puts the engine on its title screen.
// The session high score survives a reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.err = nil

	highScore := 0
	if g.eng != nil {
		highScore = g.eng.HighScore()
	}

	cfg, err := config.LoadChase(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultChaseConfig()
	}
	if difficultyPreset != "" {
		config.ApplyChasePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	stages, err := g.loadStages()
	if err != nil {
		g.fail(err)
		return
	}
	final, err := engine.ParseFinalStage(cfg.Gameplay.FinalStage)
	if err != nil {
		g.fail(err)
		return
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickStep = time.Second / time.Duration(tickRate)
	g.clock = sched.NewManualClock(time.Unix(0, 0))
	g.input = &stickyInput{}
	g.banner = &banner{logger: logger}

	eng, err := engine.New(stages,
		engine.WithTuning(tuningFromConfig(cfg)),
		engine.WithClock(g.clock),
		engine.WithInput(g.input),
		engine.WithNotifier(g.banner),
		engine.WithLogger(logger),
		engine.WithSeed(runtime.Seed),
		engine.WithFinalStage(final),
		engine.WithProgression(progression{dm: config.NewDifficultyManager(cfg.Difficulty)}),
		engine.WithHighScore(highScore),
	)
	if err != nil {
		g.fail(err)
		return
	}
	g.eng = eng

	g.minScreenW, g.minScreenH = boardSize(stages)
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	logger.Info("game ready", "game", g.id, "stages", len(stages), "seed", runtime.Seed)
}

func (g *Game) loadStages() ([]engine.Stage, error) {
	if stagesDir != "" {
		return levels.NewLoader(stagesDir).LoadAll()
	}
	return levels.Pack(g.pack)
}

func (g *Game) fail(err error) {
	logger.Error("cannot start game", "game", g.id, "err", err)
	g.err = err
	g.eng = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Abandon the current game and return to the title screen
	if in.Has(core.ActionRestart) && g.eng.State() != engine.StateMenu {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.eng.Paused() {
			g.eng.Resume()
		} else {
			g.eng.Pause()
		}
	}

	if g.eng.State() == engine.StateMenu && in.Has(core.ActionConfirm) {
		g.input.release()
		if err := g.eng.NewGame(); err != nil {
			g.fail(err)
			return core.StepResult{State: g.State()}
		}
	}

	if a, ok := in.LastDirection(); ok && !g.eng.Paused() {
		if d, ok := directionFor(a); ok {
			g.input.press(d)
		}
	}

	g.clock.Advance(g.tickStep)
	g.eng.Advance()
	if !g.eng.Paused() {
		g.banner.step()
	}

	return core.StepResult{State: g.State()}
}

// Resize adapts to a new screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// Idle reports whether the game sits on its title screen.
func (g *Game) Idle() bool {
	return g.eng == nil || g.eng.State() == engine.StateMenu
}

// StageReached returns the 1-based stage the current or last run is on.
func (g *Game) StageReached() int {
	if g.eng == nil {
		return 0
	}
	_, index := g.eng.Stage()
	return index + 1
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	state := g.eng.State()
	return core.GameState{
		Score:    g.eng.Player().Score,
		GameOver: state == engine.StateGameOver || state == engine.StateFinished,
		Paused:   g.eng.Paused(),
	}
}

func init() {
	registry.Register("chase", func() registry.Game { return New() })
	registry.Register("chase_mini", func() registry.Game { return NewMini() })
}
