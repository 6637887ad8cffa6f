package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Player: ChasePlayer{
			Speed:  3,
			Radius: 18,
		},
		Ghosts: ChaseGhosts{
			Speed:         4,
			EvadeSpeed:    2,
			CapturedSpeed: 9,
			Radius:        18,
		},
		Timing: ChaseTiming{
			ReadyMs:          4500,
			EndGameMs:        1200,
			NextStageMs:      3000,
			BeforeDieMs:      1000,
			AfterDieMs:       1400,
			CaptureFreezeMs:  1500,
			ForcedRoamMs:     10000,
			EvadeIntervalMs:  500,
			EvadeTicks:       21,
			EvadeEndingTicks: []int{12, 14, 16, 18, 20},
		},
		Scoring: ChaseScoring{
			Pellet:      10,
			PowerPellet: 50,
			GhostBase:   200,
		},
		Gameplay: ChaseGameplay{
			Lives:      3,
			FinalStage: "loop",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stage",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				GhostSpeedBonus:    2,
				EvadeTickReduction: 8,
			},
		},
	}
}
