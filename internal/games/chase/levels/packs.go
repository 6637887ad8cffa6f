package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/vovakirdan/tui-chase/internal/games/chase/engine"
)

//go:embed packs
var packFS embed.FS

// Built-in pack names.
const (
	PackClassic = "classic"
	PackMini    = "mini"
)

// Packs returns the names of the embedded stage packs.
func Packs() []string {
	entries, err := fs.ReadDir(packFS, "packs")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Pack loads an embedded stage pack by name.
func Pack(name string) ([]engine.Stage, error) {
	sub, err := fs.Sub(packFS, "packs/"+name)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot open pack %q: %w", name, err)
	}
	if _, err := fs.Stat(sub, "."); err != nil {
		return nil, fmt.Errorf("levels: unknown pack %q", name)
	}
	return newFSLoader(sub, "packs/"+name).LoadAll()
}
