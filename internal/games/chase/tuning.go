package chase

import (
	"time"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/games/chase/engine"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// tuningFromConfig converts the YAML configuration into engine tuning.
func tuningFromConfig(cfg config.ChaseConfig) engine.Tuning {
	return engine.Tuning{
		PlayerSpeed:  cfg.Player.Speed,
		PlayerRadius: cfg.Player.Radius,
		GhostRadius:  cfg.Ghosts.Radius,

		GhostSpeed:         cfg.Ghosts.Speed,
		GhostEvadeSpeed:    cfg.Ghosts.EvadeSpeed,
		GhostCapturedSpeed: cfg.Ghosts.CapturedSpeed,

		ReadyDelay:     ms(cfg.Timing.ReadyMs),
		EndGameDelay:   ms(cfg.Timing.EndGameMs),
		NextStageDelay: ms(cfg.Timing.NextStageMs),
		BeforeDieDelay: ms(cfg.Timing.BeforeDieMs),
		AfterDieDelay:  ms(cfg.Timing.AfterDieMs),
		CaptureFreeze:  ms(cfg.Timing.CaptureFreezeMs),
		ForcedRoam:     ms(cfg.Timing.ForcedRoamMs),

		EvadeInterval:    ms(cfg.Timing.EvadeIntervalMs),
		EvadeTicks:       cfg.Timing.EvadeTicks,
		EvadeEndingTicks: append([]int(nil), cfg.Timing.EvadeEndingTicks...),

		PelletScore:      cfg.Scoring.Pellet,
		PowerPelletScore: cfg.Scoring.PowerPellet,
		GhostBaseScore:   cfg.Scoring.GhostBase,

		Lives: cfg.Gameplay.Lives,
	}
}

// progression raises ghost speed and shortens the evade window as the
// difficulty level climbs.
type progression struct {
	dm *config.DifficultyManager
}

func (p progression) Tune(base engine.Tuning, stage int, score int) engine.Tuning {
	base.GhostSpeed = p.dm.GhostSpeed(base.GhostSpeed, stage, score)

	cut := p.dm.EvadeTickReduction(base.EvadeTicks, stage, score)
	if cut == 0 {
		return base
	}
	// Ending flashes keep their distance from the end of the window.
	base.EvadeTicks -= cut
	ending := make([]int, 0, len(base.EvadeEndingTicks))
	for _, t := range base.EvadeEndingTicks {
		if t-cut > 0 {
			ending = append(ending, t-cut)
		}
	}
	base.EvadeEndingTicks = ending
	return base
}
