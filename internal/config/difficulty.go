package config

import "math"

// Lower bounds that keep a game playable at maximum difficulty.
const (
	minEvadeTicks = 6
	maxStep       = 10 // Largest per-tick step the collision model supports
)

// DifficultyManager calculates game parameters from progress through the game.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a stage index and score.
func (d *DifficultyManager) Level(stage int, score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "stage":
		progress = float64(stage) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GhostSpeedBonus returns the pixels per tick added to every ghost speed.
func (d *DifficultyManager) GhostSpeedBonus(stage int, score int) int {
	level := d.Level(stage, score)
	return int(level * float64(d.cfg.Scaling.GhostSpeedBonus))
}

// GhostSpeed returns a ghost speed raised by the current bonus, capped at
// the largest step collision handling supports.
func (d *DifficultyManager) GhostSpeed(base int, stage int, score int) int {
	return min(base+d.GhostSpeedBonus(stage, score), maxStep)
}

// EvadeTickReduction returns how many evade ticks the window loses.
func (d *DifficultyManager) EvadeTickReduction(baseTicks int, stage int, score int) int {
	level := d.Level(stage, score)
	reduction := int(level * float64(d.cfg.Scaling.EvadeTickReduction))
	if baseTicks-reduction < minEvadeTicks {
		reduction = max(0, baseTicks-minEvadeTicks)
	}
	return reduction
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
