package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded ChaseConfig
	require.NoError(t, yaml.Unmarshal(defaultChaseYAML, &embedded))
	assert.Equal(t, DefaultChaseConfig(), embedded)
}

func TestLoadChaseCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chase.yaml")
	data := []byte("player:\n  speed: 5\ngameplay:\n  final_stage: finish\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadChase(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Player.Speed)
	assert.Equal(t, "finish", cfg.Gameplay.FinalStage)
	assert.Equal(t, 4, cfg.Ghosts.Speed, "unset keys keep their defaults")
	assert.Equal(t, 3, cfg.Gameplay.Lives)
}

func TestLoadChaseErrors(t *testing.T) {
	_, err := LoadChase(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player: [1, 2"), 0o644))
	_, err = LoadChase(path)
	assert.Error(t, err)
}

func TestApplyChasePreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultChaseConfig()
			ApplyChasePreset(&cfg, tt.preset)
			assert.Equal(t, tt.enabled, cfg.Difficulty.Enabled)
			assert.InDelta(t, tt.level, cfg.Difficulty.InitialLevel, 1e-9)
			assert.Equal(t, tt.lives, cfg.Gameplay.Lives)
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	p, err = ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestDifficultyLevelByStage(t *testing.T) {
	dm := NewDifficultyManager(DefaultChaseConfig().Difficulty)

	assert.InDelta(t, 0.0, dm.Level(0, 5000), 1e-9, "score is ignored for stage progression")
	assert.InDelta(t, 0.5, dm.Level(4, 0), 1e-9)
	assert.InDelta(t, 1.0, dm.Level(20, 0), 1e-9, "clamped at max")

	dm.SetInitialLevel(0.5)
	assert.InDelta(t, 0.75, dm.Level(4, 0), 1e-9)
}

func TestDifficultyLevelByScore(t *testing.T) {
	cfg := DefaultChaseConfig().Difficulty
	cfg.Progression = ProgressionConfig{Type: "score", MaxAt: 10000}
	dm := NewDifficultyManager(cfg)

	assert.InDelta(t, 0.25, dm.Level(7, 2500), 1e-9)
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DefaultChaseConfig().Difficulty)
	dm.SetInitialLevel(0.3)
	dm.SetEnabled(false)

	assert.False(t, dm.IsEnabled())
	assert.InDelta(t, 0.3, dm.Level(8, 0), 1e-9)
}

func TestDifficultyScaling(t *testing.T) {
	dm := NewDifficultyManager(DefaultChaseConfig().Difficulty)

	assert.Equal(t, 4, dm.GhostSpeed(4, 0, 0))
	assert.Equal(t, 5, dm.GhostSpeed(4, 4, 0))
	assert.Equal(t, 6, dm.GhostSpeed(4, 8, 0))
	assert.Equal(t, 10, dm.GhostSpeed(9, 8, 0), "capped at the collision step limit")

	assert.Equal(t, 0, dm.EvadeTickReduction(21, 0, 0))
	assert.Equal(t, 4, dm.EvadeTickReduction(21, 4, 0))
	assert.Equal(t, 8, dm.EvadeTickReduction(21, 8, 0))
	assert.Equal(t, 4, dm.EvadeTickReduction(10, 8, 0), "never below the minimum window")
}
