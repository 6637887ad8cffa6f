package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		assert.NotEqual(t, d, d.Opposite())
		assert.Equal(t, d, d.Opposite().Opposite(), "Opposite should be an involution for %v", d)
		assert.Equal(t, d.Unit().Scale(-1), d.Opposite().Unit())
	}
}

func TestDirectionPanicsOnUnsupported(t *testing.T) {
	bad := Direction(9)
	assert.Panics(t, func() { bad.Opposite() })
	assert.Panics(t, func() { bad.Unit() })
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		v        Vec
		expected Direction
		ok       bool
	}{
		{Vec{X: -3}, DirLeft, true},
		{Vec{X: 3}, DirRight, true},
		{Vec{Y: -3}, DirUp, true},
		{Vec{Y: 3}, DirDown, true},
		{Vec{}, 0, false},
	}

	for _, tc := range tests {
		d, ok := DirectionOf(tc.v)
		assert.Equal(t, tc.ok, ok, "DirectionOf(%v)", tc.v)
		if tc.ok {
			assert.Equal(t, tc.expected, d, "DirectionOf(%v)", tc.v)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		parsed, err := ParseDirection(d.String())
		assert.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestTileConversions(t *testing.T) {
	tile := Tile{X: 2, Y: 3}

	assert.Equal(t, Vec{X: 60, Y: 90}, tile.Origin())
	assert.Equal(t, Vec{X: 75, Y: 105}, tile.Center())
	assert.Equal(t, tile, TileAt(tile.Center()))
	assert.Equal(t, tile, TileAt(tile.Origin()))
	assert.Equal(t, 2+3*21, tile.Index(21))
	assert.Equal(t, Tile{X: -1, Y: 0}, TileAt(Vec{X: -0.5, Y: 10}))
}

func TestDirSet(t *testing.T) {
	var s DirSet
	assert.Equal(t, 0, s.Len())

	s = s.With(DirUp).With(DirLeft).With(DirUp)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(DirUp))
	assert.False(t, s.Has(DirDown))
	assert.Equal(t, []Direction{DirLeft, DirUp}, s.Slice())

	s = s.Without(DirLeft)
	assert.Equal(t, []Direction{DirUp}, s.Slice())
}
