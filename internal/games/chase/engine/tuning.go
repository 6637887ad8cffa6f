package engine

import "time"

// Tuning holds every speed, radius, duration and score the engine uses.
type Tuning struct {
	PlayerSpeed  int
	PlayerRadius float64
	GhostRadius  float64

	GhostSpeed         int // Pursuit speed
	GhostEvadeSpeed    int
	GhostCapturedSpeed int

	ReadyDelay     time.Duration // Menu to Play countdown
	EndGameDelay   time.Duration // GameOver or Finished back to Menu
	NextStageDelay time.Duration
	BeforeDieDelay time.Duration // Player killed to ghosts reset
	AfterDieDelay  time.Duration // Ghosts reset to player respawn
	CaptureFreeze  time.Duration // Score display pause after a capture
	ForcedRoam     time.Duration // Random roaming after release or respawn

	EvadeInterval    time.Duration // Period of the per-ghost evade tick
	EvadeTicks       int           // Ticks until the evade window ends
	EvadeEndingTicks []int         // Ticks at which the ghost flashes its ending state

	PelletScore      int
	PowerPelletScore int
	GhostBaseScore   int // Doubles with each capture in the same window

	Lives int
}

// DefaultTuning returns the classic tuning.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:  3,
		PlayerRadius: 18,
		GhostRadius:  18,

		GhostSpeed:         4,
		GhostEvadeSpeed:    2,
		GhostCapturedSpeed: 9,

		ReadyDelay:     4500 * time.Millisecond,
		EndGameDelay:   1200 * time.Millisecond,
		NextStageDelay: 3000 * time.Millisecond,
		BeforeDieDelay: 1000 * time.Millisecond,
		AfterDieDelay:  1400 * time.Millisecond,
		CaptureFreeze:  1500 * time.Millisecond,
		ForcedRoam:     10 * time.Second,

		EvadeInterval:    500 * time.Millisecond,
		EvadeTicks:       21,
		EvadeEndingTicks: []int{12, 14, 16, 18, 20},

		PelletScore:      10,
		PowerPelletScore: 50,
		GhostBaseScore:   200,

		Lives: 3,
	}
}

// EvadeWindow returns the full length of a frightened window.
func (t Tuning) EvadeWindow() time.Duration {
	return time.Duration(t.EvadeTicks) * t.EvadeInterval
}

func (t Tuning) ghostSpeed(m Mode) int {
	switch m {
	case ModeEvade, ModeEvadeEnding:
		return clampStep(t.GhostEvadeSpeed)
	case ModeCaptured:
		return clampStep(t.GhostCapturedSpeed)
	default:
		return clampStep(t.GhostSpeed)
	}
}

func (t Tuning) isEndingTick(n int) bool {
	for _, e := range t.EvadeEndingTicks {
		if e == n {
			return true
		}
	}
	return false
}
