// Package formats provides stage file format parsers.
package formats

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-chase/internal/games/chase/engine"
)

// YAMLStage represents the YAML structure for a stage file.
type YAMLStage struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Respawn  *YAMLTile         `yaml:"respawn"`
	Player   *YAMLTile         `yaml:"player,omitempty"`
	Ghosts   []YAMLGhost       `yaml:"ghosts"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLTile is a grid coordinate.
type YAMLTile struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLGhost describes one ghost.
type YAMLGhost struct {
	Archetype string   `yaml:"archetype"`
	Mode      string   `yaml:"mode,omitempty"`
	Start     YAMLTile `yaml:"start"`
	Direction string   `yaml:"direction,omitempty"`
	DelayMs   int      `yaml:"delay_ms"`
}

func (t YAMLTile) tile() engine.Tile {
	return engine.Tile{X: t.X, Y: t.Y}
}

// ParseYAML parses a YAML stage file.
// Structural problems such as a missing respawn point are left to
// engine.Stage.Validate so every stage source reports them the same way.
func ParseYAML(data []byte) (engine.Stage, error) {
	var ys YAMLStage
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return engine.Stage{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	stage := engine.Stage{
		ID:     ys.ID,
		Name:   ys.Name,
		Rows:   ys.Rows,
		Player: engine.DefaultPlayerStart,
		Ghosts: make([]engine.GhostSpec, 0, len(ys.Ghosts)),
	}
	if ys.Respawn != nil {
		respawn := ys.Respawn.tile()
		stage.Respawn = &respawn
	}
	if ys.Player != nil {
		stage.Player = ys.Player.tile()
	}

	for i, yg := range ys.Ghosts {
		spec, err := parseGhost(yg)
		if err != nil {
			return engine.Stage{}, fmt.Errorf("ghost %d: %w", i, err)
		}
		stage.Ghosts = append(stage.Ghosts, spec)
	}

	return stage, nil
}

func parseGhost(yg YAMLGhost) (engine.GhostSpec, error) {
	archetype, err := engine.ParseArchetype(yg.Archetype)
	if err != nil {
		return engine.GhostSpec{}, err
	}

	mode := engine.ModePursuit
	if yg.Mode != "" {
		if mode, err = engine.ParseMode(yg.Mode); err != nil {
			return engine.GhostSpec{}, err
		}
	}

	dir := engine.DirUp
	if yg.Direction != "" {
		if dir, err = engine.ParseDirection(yg.Direction); err != nil {
			return engine.GhostSpec{}, err
		}
	}

	if yg.DelayMs < 0 {
		return engine.GhostSpec{}, fmt.Errorf("negative delay_ms %d", yg.DelayMs)
	}

	return engine.GhostSpec{
		Archetype: archetype,
		Mode:      mode,
		Start:     yg.Start.tile(),
		Direction: dir,
		Delay:     time.Duration(yg.DelayMs) * time.Millisecond,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
