package engine

import "time"

// Command is the payload of a scheduled timer. Each concrete type names one
// delayed action the engine performs when its timer fires.
type Command interface {
	command()
}

// Ghost-scoped commands carry the index of the ghost in the current stage.
type (
	ReleaseGhost     struct{ Ghost int }
	EndForcedRoam    struct{ Ghost int }
	EvadeTick        struct{ Ghost int }
	EndCaptureFreeze struct{ Ghost int }
)

// Round-scoped commands.
type (
	EndEvadeWindow  struct{}
	StartRound      struct{}
	CloseGame       struct{}
	AdvanceStage    struct{}
	ResetAfterDeath struct{}
	RespawnPlayer   struct{}
)

func (ReleaseGhost) command()     {}
func (EndForcedRoam) command()    {}
func (EvadeTick) command()        {}
func (EndCaptureFreeze) command() {}
func (EndEvadeWindow) command()   {}
func (StartRound) command()       {}
func (CloseGame) command()        {}
func (AdvanceStage) command()     {}
func (ResetAfterDeath) command()  {}
func (RespawnPlayer) command()    {}

// Effect is a side effect requested by a ghost transition. Ghosts never touch
// the scheduler or the notifier; the engine applies their effects.
type Effect interface {
	effect()
}

// StartTimer schedules Cmd after After. Repeat makes it an interval.
// Replace restarts an existing timer of the same name.
type StartTimer struct {
	Name    string
	Cmd     Command
	After   time.Duration
	Repeat  bool
	Replace bool
}

// CancelTimer removes the named timer.
type CancelTimer struct {
	Name string
}

// ResetCaptureCount ends the evade window early for scoring purposes.
type ResetCaptureCount struct{}

// EvadeEnded reports that a ghost finished its frightened window.
type EvadeEnded struct {
	Ghost int
}

func (StartTimer) effect()        {}
func (CancelTimer) effect()       {}
func (ResetCaptureCount) effect() {}
func (EvadeEnded) effect()        {}

// Round timer names.
const (
	TimerNewGame     = "new_game"
	TimerEndGame     = "end_game"
	TimerNextStage   = "next_stage"
	TimerBeforeDie   = "before_die"
	TimerAfterDie    = "after_die"
	TimerEvadeWindow = "evade_window"
)
