package engine

import (
	"errors"
	"fmt"
)

// Stage data errors.
var (
	ErrEmptyMaze      = errors.New("engine: maze has no rows")
	ErrRaggedMaze     = errors.New("engine: maze rows differ in width")
	ErrNoWalls        = errors.New("engine: maze has no walls")
	ErrMissingRespawn = errors.New("engine: stage has no respawn point")
)

// WallShape is a rendering hint for a wall tile. Every shape blocks movement
// identically as a full tile.
type WallShape int

const (
	WallHorizontal WallShape = iota
	WallVertical
	WallCornerTL
	WallCornerTR
	WallCornerBR
	WallCornerBL
	WallTerminatorL
	WallTerminatorR
	WallTerminatorT
	WallTerminatorB
	WallConnectorT
	WallConnectorR
	WallConnectorL
	WallConnectorB
	WallBlock
)

var wallSymbols = map[rune]WallShape{
	'-': WallHorizontal,
	'|': WallVertical,
	'1': WallCornerTL,
	'2': WallCornerTR,
	'3': WallCornerBR,
	'4': WallCornerBL,
	'<': WallTerminatorL,
	'>': WallTerminatorR,
	'^': WallTerminatorT,
	'_': WallTerminatorB,
	'z': WallConnectorT,
	'x': WallConnectorR,
	'c': WallConnectorL,
	'v': WallConnectorB,
	'b': WallBlock,
}

// Maze symbols that are not walls.
const (
	SymbolPellet      = '.'
	SymbolPowerPellet = 'p'
	SymbolGate        = '~'
	SymbolEmpty       = ' '
)

// Wall is one blocking tile.
type Wall struct {
	Tile  Tile
	Shape WallShape
}

// Box returns the wall's collision rectangle.
func (w Wall) Box() Box {
	return Box{Pos: w.Tile.Origin(), W: TileWidth, H: TileHeight}
}

// CollectibleKind distinguishes regular and power pellets.
type CollectibleKind int

const (
	KindPellet CollectibleKind = iota
	KindPowerPellet
)

// Collectible radii in world pixels.
const (
	PelletRadius      = 4
	PowerPelletRadius = 8
)

// Collectible is a pellet sitting at the center of its tile.
type Collectible struct {
	Kind   CollectibleKind
	Tile   Tile
	Pos    Vec
	Radius float64
}

// Maze is a parsed stage layout: walls, gates and the remaining collectibles.
// Collectibles are keyed by tile index.
type Maze struct {
	cols, rows   int
	walls        []Wall
	wallAt       []bool
	gates        []Tile
	collectibles map[int]Collectible
}

// ParseMaze builds a maze from rows of layout symbols.
func ParseMaze(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMaze
	}

	cols := len([]rune(rows[0]))
	m := &Maze{
		cols:         cols,
		rows:         len(rows),
		wallAt:       make([]bool, cols*len(rows)),
		collectibles: make(map[int]Collectible),
	}

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRaggedMaze, y, len(runes), cols)
		}
		for x, r := range runes {
			t := Tile{X: x, Y: y}
			if shape, ok := wallSymbols[r]; ok {
				m.walls = append(m.walls, Wall{Tile: t, Shape: shape})
				m.wallAt[t.Index(cols)] = true
				continue
			}
			switch r {
			case SymbolPellet:
				m.collectibles[t.Index(cols)] = Collectible{Kind: KindPellet, Tile: t, Pos: t.Center(), Radius: PelletRadius}
			case SymbolPowerPellet:
				m.collectibles[t.Index(cols)] = Collectible{Kind: KindPowerPellet, Tile: t, Pos: t.Center(), Radius: PowerPelletRadius}
			case SymbolGate:
				m.gates = append(m.gates, t)
			case SymbolEmpty:
			default:
				return nil, fmt.Errorf("engine: unknown maze symbol %q at row %d column %d", r, y, x)
			}
		}
	}

	if len(m.walls) == 0 {
		return nil, ErrNoWalls
	}
	return m, nil
}

// Cols returns the maze width in tiles.
func (m *Maze) Cols() int { return m.cols }

// Rows returns the maze height in tiles.
func (m *Maze) Rows() int { return m.rows }

// BoardWidth returns the maze width in world pixels.
func (m *Maze) BoardWidth() float64 { return float64(m.cols * TileWidth) }

// Walls returns every wall tile.
func (m *Maze) Walls() []Wall { return m.walls }

// Gates returns the passable ghost-house gate tiles.
func (m *Maze) Gates() []Tile { return m.gates }

// Remaining returns the number of uncollected pellets.
func (m *Maze) Remaining() int { return len(m.collectibles) }

// InBounds reports whether t lies inside the grid.
func (m *Maze) InBounds(t Tile) bool {
	return t.X >= 0 && t.X < m.cols && t.Y >= 0 && t.Y < m.rows
}

// IsWall reports whether t is a wall tile. Tiles outside the grid are open.
func (m *Maze) IsWall(t Tile) bool {
	if !m.InBounds(t) {
		return false
	}
	return m.wallAt[t.Index(m.cols)]
}

// CollectibleAt returns the collectible on tile t, if any.
func (m *Maze) CollectibleAt(t Tile) (Collectible, bool) {
	if !m.InBounds(t) {
		return Collectible{}, false
	}
	c, ok := m.collectibles[t.Index(m.cols)]
	return c, ok
}

// Consume removes the collectible on tile t.
func (m *Maze) Consume(t Tile) {
	if m.InBounds(t) {
		delete(m.collectibles, t.Index(m.cols))
	}
}

// Collectibles returns the remaining collectibles keyed by tile index.
func (m *Maze) Collectibles() map[int]Collectible {
	return m.collectibles
}

// wallReach is how many tiles around a body are tested for walls. A body's
// look-ahead box never extends past radius plus one step, which is less than
// a tile for every supported radius and step.
const wallReach = 2

// Blocked reports whether c, displaced by delta, would collide with any wall.
func (m *Maze) Blocked(c Circle, delta Vec) bool {
	if delta.IsZero() {
		return false
	}
	center := TileAt(c.Pos)
	for dy := -wallReach; dy <= wallReach; dy++ {
		for dx := -wallReach; dx <= wallReach; dx++ {
			t := Tile{X: center.X + dx, Y: center.Y + dy}
			if !m.IsWall(t) {
				continue
			}
			if IsColliding(c, Wall{Tile: t}.Box(), delta) {
				return true
			}
		}
	}
	return false
}

// OpenDirections returns the directions in which c can take one step of the given speed.
func (m *Maze) OpenDirections(c Circle, speed int) DirSet {
	var open DirSet
	for _, d := range Directions {
		if !m.Blocked(c, d.Velocity(speed)) {
			open = open.With(d)
		}
	}
	return open
}

// clampStep bounds a configured speed to the range the collision model supports.
func clampStep(speed int) int {
	return max(1, min(speed, MaxStep))
}
