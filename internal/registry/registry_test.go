package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-chase/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{"zz_stub_b"} })
	Register("zz_stub_a", func() Game { return stubGame{"zz_stub_a"} })

	require.True(t, Exists("zz_stub_a"))
	g, err := Create("zz_stub_b")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub_b", g.ID())

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.IsIncreasing(t, ids)
	assert.Contains(t, List(), GameInfo{ID: "zz_stub_a", Title: "Stub zz_stub_a"})
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{"zz_dup"} })
	assert.Panics(t, func() {
		Register("zz_dup", func() Game { return stubGame{"zz_dup"} })
	})
	assert.Panics(t, func() {
		Register("", func() Game { return stubGame{} })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	assert.Error(t, err)
	assert.False(t, Exists("no_such_game"))
}
