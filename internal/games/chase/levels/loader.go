// Package levels loads chase stage packs, either embedded or from a directory.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-chase/internal/games/chase/engine"
	"github.com/vovakirdan/tui-chase/internal/games/chase/levels/formats"
)

// ErrNoStages is returned when a pack contains no loadable stage.
var ErrNoStages = errors.New("levels: no stages found")

// Loader handles loading stages from a directory tree.
type Loader struct {
	fsys fs.FS
	Root string
}

// NewLoader creates a loader reading stage files under root.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), Root: root}
}

func newFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{fsys: fsys, Root: root}
}

// LoadAll recursively scans and loads all stage files, sorted by ID.
// Every stage is validated; the first invalid file aborts the load.
func (l *Loader) LoadAll() ([]engine.Stage, error) {
	var stages []engine.Stage

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		stage, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		stages = append(stages, stage)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: cannot load %s: %w", l.Root, err)
	}

	if len(stages) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoStages, l.Root)
	}

	// Sort by ID for determinism
	sort.Slice(stages, func(i, j int) bool {
		return stages[i].ID < stages[j].ID
	})

	return stages, nil
}

// LoadFile loads and validates a single stage file, relative to the loader root.
func (l *Loader) LoadFile(p string) (engine.Stage, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return engine.Stage{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	stage, err := formats.ParseYAML(data)
	if err != nil {
		return engine.Stage{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if stage.ID == "" {
		stage.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}

	if _, err := stage.Validate(); err != nil {
		return engine.Stage{}, fmt.Errorf("validating file %s: %w", p, err)
	}
	return stage, nil
}

// LoadByID loads a specific stage by ID.
func (l *Loader) LoadByID(id string) (engine.Stage, error) {
	stages, err := l.LoadAll()
	if err != nil {
		return engine.Stage{}, err
	}

	for _, s := range stages {
		if s.ID == id {
			return s, nil
		}
	}

	return engine.Stage{}, fmt.Errorf("levels: stage not found: %s", id)
}

// ListIDs returns all stage IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	stages, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(stages))
	for i, s := range stages {
		ids[i] = s.ID
	}
	return ids, nil
}
