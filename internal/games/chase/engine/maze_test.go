package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRows is a small maze with two loops, a shared middle corridor and two
// power pellets.
var testRows = []string{
	"1-----z-----2",
	"|.....|.....|",
	"|.1-2.|.1-2.|",
	"|p4-3.~.4-3p|",
	"|...........|",
	"4-----------3",
}

func mustMaze(t *testing.T, rows []string) *Maze {
	t.Helper()
	m, err := ParseMaze(rows)
	require.NoError(t, err)
	return m
}

func TestParseMaze(t *testing.T) {
	m := mustMaze(t, testRows)

	assert.Equal(t, 13, m.Cols())
	assert.Equal(t, 6, m.Rows())
	assert.Equal(t, 13.0*TileWidth, m.BoardWidth())
	assert.Equal(t, 29, m.Remaining())
	assert.Equal(t, []Tile{{X: 6, Y: 3}}, m.Gates())

	assert.True(t, m.IsWall(Tile{X: 0, Y: 0}))
	assert.True(t, m.IsWall(Tile{X: 6, Y: 2}))
	assert.False(t, m.IsWall(Tile{X: 6, Y: 3}), "gate must be passable")
	assert.False(t, m.IsWall(Tile{X: -1, Y: 3}), "outside the grid is open")

	c, ok := m.CollectibleAt(Tile{X: 1, Y: 3})
	require.True(t, ok)
	assert.Equal(t, KindPowerPellet, c.Kind)
	assert.Equal(t, float64(PowerPelletRadius), c.Radius)
	assert.Equal(t, Tile{X: 1, Y: 3}.Center(), c.Pos)

	c, ok = m.CollectibleAt(Tile{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, KindPellet, c.Kind)

	var shapes []WallShape
	for _, w := range m.Walls()[:3] {
		shapes = append(shapes, w.Shape)
	}
	assert.Equal(t, []WallShape{WallCornerTL, WallHorizontal, WallHorizontal}, shapes)
}

func TestParseMazeErrors(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected error
	}{
		{"no rows", nil, ErrEmptyMaze},
		{"ragged rows", []string{"1--2", "|.|"}, ErrRaggedMaze},
		{"no walls", []string{"...", ". ."}, ErrNoWalls},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMaze(tc.rows)
			if !errors.Is(err, tc.expected) {
				t.Errorf("ParseMaze() error = %v, expected %v", err, tc.expected)
			}
		})
	}

	_, err := ParseMaze([]string{"1-?2"})
	assert.ErrorContains(t, err, "unknown maze symbol")
}

func TestConsume(t *testing.T) {
	m := mustMaze(t, testRows)
	before := m.Remaining()

	m.Consume(Tile{X: 1, Y: 1})
	m.Consume(Tile{X: 1, Y: 1})
	m.Consume(Tile{X: 99, Y: 99})

	assert.Equal(t, before-1, m.Remaining())
	_, ok := m.CollectibleAt(Tile{X: 1, Y: 1})
	assert.False(t, ok)
}

func TestOpenDirections(t *testing.T) {
	m := mustMaze(t, testRows)

	tests := []struct {
		name     string
		tile     Tile
		expected []Direction
	}{
		{"top-left corner", Tile{X: 1, Y: 1}, []Direction{DirRight, DirDown}},
		{"horizontal corridor", Tile{X: 3, Y: 1}, []Direction{DirLeft, DirRight}},
		{"t-junction", Tile{X: 5, Y: 1}, []Direction{DirLeft, DirDown}},
		{"gate crossing", Tile{X: 6, Y: 3}, []Direction{DirLeft, DirRight, DirDown}},
		{"bottom corridor junction", Tile{X: 6, Y: 4}, []Direction{DirLeft, DirRight, DirUp}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			open := m.OpenDirections(Circle{Pos: tc.tile.Center(), Radius: 18}, 4)
			assert.Equal(t, tc.expected, open.Slice())
		})
	}
}

func TestStageValidate(t *testing.T) {
	respawn := Tile{X: 6, Y: 3}
	stage := Stage{ID: "test", Rows: testRows, Respawn: &respawn, Player: Tile{X: 1, Y: 1}}

	_, err := stage.Validate()
	require.NoError(t, err)

	noRespawn := stage
	noRespawn.Respawn = nil
	_, err = noRespawn.Validate()
	assert.ErrorIs(t, err, ErrMissingRespawn)

	badPlayer := stage
	badPlayer.Player = Tile{X: 0, Y: 0}
	_, err = badPlayer.Validate()
	assert.Error(t, err)

	badGhost := stage
	badGhost.Ghosts = []GhostSpec{{Start: Tile{X: 6, Y: 2}}}
	_, err = badGhost.Validate()
	assert.Error(t, err)
}
