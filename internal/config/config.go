// Package config provides YAML-based game configuration loading and
// difficulty management for the chase game.
package config

// ChaseConfig contains all tunable parameters of the chase game.
type ChaseConfig struct {
	Player     ChasePlayer      `yaml:"player"`
	Ghosts     ChaseGhosts      `yaml:"ghosts"`
	Timing     ChaseTiming      `yaml:"timing"`
	Scoring    ChaseScoring     `yaml:"scoring"`
	Gameplay   ChaseGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ChasePlayer defines player movement parameters. Speeds are pixels per tick
// on a 30px tile grid.
type ChasePlayer struct {
	Speed  int     `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// ChaseGhosts defines ghost movement parameters.
type ChaseGhosts struct {
	Speed         int     `yaml:"speed"`
	EvadeSpeed    int     `yaml:"evade_speed"`
	CapturedSpeed int     `yaml:"captured_speed"`
	Radius        float64 `yaml:"radius"`
}

// ChaseTiming defines every delay in milliseconds.
type ChaseTiming struct {
	ReadyMs          int   `yaml:"ready_ms"`
	EndGameMs        int   `yaml:"end_game_ms"`
	NextStageMs      int   `yaml:"next_stage_ms"`
	BeforeDieMs      int   `yaml:"before_die_ms"`
	AfterDieMs       int   `yaml:"after_die_ms"`
	CaptureFreezeMs  int   `yaml:"capture_freeze_ms"`
	ForcedRoamMs     int   `yaml:"forced_roam_ms"`
	EvadeIntervalMs  int   `yaml:"evade_interval_ms"`
	EvadeTicks       int   `yaml:"evade_ticks"`
	EvadeEndingTicks []int `yaml:"evade_ending_ticks"`
}

// ChaseScoring defines points per event.
type ChaseScoring struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	GhostBase   int `yaml:"ghost_base"` // Doubles with each capture in one evade window
}

// ChaseGameplay defines round rules.
type ChaseGameplay struct {
	Lives      int    `yaml:"lives"`
	FinalStage string `yaml:"final_stage"` // "loop" or "finish"
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "stage", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Stage index or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GhostSpeedBonus    int `yaml:"ghost_speed_bonus"`    // Added to every ghost speed at max difficulty
	EvadeTickReduction int `yaml:"evade_tick_reduction"` // Evade window shortening at max difficulty, in ticks
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
