package engine

// GhostSnapshot is a copy of one ghost's observable state.
type GhostSnapshot struct {
	ID           int
	Archetype    Archetype
	Mode         Mode
	Direction    Direction
	Pos          Vec
	Vel          Vec
	Hidden       bool
	ForcedRandom bool
	Guarded      bool
	ShowingScore bool
}

// Snapshot is a comparable copy of the engine state, used for
// determinism checks and debugging.
type Snapshot struct {
	Tick      uint64
	State     RoundState
	Stage     int
	Score     int
	Lives     int
	HighScore int
	Remaining int
	Captured  int
	PlayerPos Vec
	PlayerVel Vec
	Ghosts    []GhostSnapshot
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      e.tick,
		State:     e.state,
		Stage:     e.stageIndex,
		Score:     e.player.Score,
		Lives:     e.player.Lives,
		HighScore: e.highScore,
		Remaining: e.maze.Remaining(),
		Captured:  e.captured,
		PlayerPos: e.player.Pos,
		PlayerVel: e.player.Vel,
		Ghosts:    make([]GhostSnapshot, len(e.ghosts)),
	}
	for i, g := range e.ghosts {
		s.Ghosts[i] = GhostSnapshot{
			ID:           g.id,
			Archetype:    g.spec.Archetype,
			Mode:         g.mode,
			Direction:    g.dir,
			Pos:          g.Pos,
			Vel:          g.Vel,
			Hidden:       g.hidden,
			ForcedRandom: g.forcedRandom,
			Guarded:      g.guarded,
			ShowingScore: g.showingScore,
		}
	}
	return s
}
