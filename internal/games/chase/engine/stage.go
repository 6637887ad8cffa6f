package engine

import (
	"fmt"
	"time"
)

// Archetype selects a ghost's pursuit targeting heuristic.
type Archetype int

const (
	// Blinky heads straight for the player.
	Blinky Archetype = iota
	// Pinky aims two tiles ahead of the player's facing.
	Pinky
	// Inky roams at random.
	Inky
	// Clyde aims two tiles ahead of the player's facing.
	Clyde
)

func (a Archetype) String() string {
	switch a {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return fmt.Sprintf("archetype(%d)", int(a))
	}
}

// ParseArchetype converts a lowercase name to an Archetype.
func ParseArchetype(s string) (Archetype, error) {
	switch s {
	case "blinky":
		return Blinky, nil
	case "pinky":
		return Pinky, nil
	case "inky":
		return Inky, nil
	case "clyde":
		return Clyde, nil
	default:
		return 0, fmt.Errorf("engine: unknown ghost archetype %q", s)
	}
}

// Mode is a ghost's behaviour state.
type Mode int

const (
	ModePursuit Mode = iota
	ModeEvade
	ModeEvadeEnding
	ModeCaptured
)

func (m Mode) String() string {
	switch m {
	case ModePursuit:
		return "pursuit"
	case ModeEvade:
		return "evade"
	case ModeEvadeEnding:
		return "evade_ending"
	case ModeCaptured:
		return "captured"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Frightened reports whether the mode lets the player capture the ghost.
func (m Mode) Frightened() bool {
	return m == ModeEvade || m == ModeEvadeEnding
}

// ParseMode converts a lowercase name to a Mode. "chase" is accepted as an
// alias for pursuit.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "pursuit", "chase":
		return ModePursuit, nil
	case "evade":
		return ModeEvade, nil
	case "evade_ending":
		return ModeEvadeEnding, nil
	case "captured":
		return ModeCaptured, nil
	default:
		return 0, fmt.Errorf("engine: unknown ghost mode %q", s)
	}
}

// GhostSpec describes how a ghost enters a stage.
type GhostSpec struct {
	Archetype Archetype
	Mode      Mode // Default mode, restored on respawn and restart
	Start     Tile
	Direction Direction
	Delay     time.Duration // Time between becoming visible and being released
}

// Stage is the static data for one maze.
type Stage struct {
	ID      string
	Name    string
	Rows    []string
	Respawn *Tile // Ghost respawn point. Required.
	Player  Tile
	Ghosts  []GhostSpec
}

// DefaultPlayerStart is used when a stage does not name a player start tile.
var DefaultPlayerStart = Tile{X: 1, Y: 1}

// Validate parses the stage layout and checks the data every round needs.
func (s Stage) Validate() (*Maze, error) {
	m, err := ParseMaze(s.Rows)
	if err != nil {
		return nil, fmt.Errorf("stage %q: %w", s.ID, err)
	}
	if s.Respawn == nil {
		return nil, fmt.Errorf("stage %q: %w", s.ID, ErrMissingRespawn)
	}
	if !m.InBounds(*s.Respawn) {
		return nil, fmt.Errorf("stage %q: respawn %v outside %dx%d maze", s.ID, *s.Respawn, m.Cols(), m.Rows())
	}
	if !m.InBounds(s.Player) || m.IsWall(s.Player) {
		return nil, fmt.Errorf("stage %q: player start %v is not an open tile", s.ID, s.Player)
	}
	for i, g := range s.Ghosts {
		if !m.InBounds(g.Start) || m.IsWall(g.Start) {
			return nil, fmt.Errorf("stage %q: ghost %d start %v is not an open tile", s.ID, i, g.Start)
		}
	}
	return m, nil
}
