// Package engine implements the chase simulation: maze geometry, collision,
// movement, ghost behaviour and the round state machine.
// This package has no terminal or UI dependencies.
package engine

import (
	"fmt"
	"math"
)

// Tile dimensions in world pixels.
const (
	TileWidth  = 30
	TileHeight = 30
)

// Vec is a point or velocity in world pixels.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// Tile is a grid coordinate: column X, row Y.
type Tile struct {
	X, Y int
}

// Origin returns the world position of the tile's top-left corner.
func (t Tile) Origin() Vec {
	return Vec{X: float64(t.X * TileWidth), Y: float64(t.Y * TileHeight)}
}

// Center returns the world position of the tile's center.
func (t Tile) Center() Vec {
	return Vec{
		X: float64(t.X*TileWidth + TileWidth/2),
		Y: float64(t.Y*TileHeight + TileHeight/2),
	}
}

// Index returns the flat index of the tile in a grid with the given column count.
func (t Tile) Index(cols int) int {
	return t.X + t.Y*cols
}

// TileAt returns the tile containing a world position.
func TileAt(p Vec) Tile {
	return Tile{
		X: int(math.Floor(p.X / TileWidth)),
		Y: int(math.Floor(p.Y / TileHeight)),
	}
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
	DirUp
)

// Directions lists every direction in candidate evaluation order.
// Ties in target selection resolve to the earliest entry.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Opposite returns the reversal of d.
// Panics on a value outside the four cardinal directions.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirUp:
		return DirDown
	default:
		panic(fmt.Sprintf("engine: unsupported direction %d", int(d)))
	}
}

// Unit returns the unit vector for d. Screen Y grows downwards.
// Panics on a value outside the four cardinal directions.
func (d Direction) Unit() Vec {
	switch d {
	case DirLeft:
		return Vec{X: -1}
	case DirRight:
		return Vec{X: 1}
	case DirDown:
		return Vec{Y: 1}
	case DirUp:
		return Vec{Y: -1}
	default:
		panic(fmt.Sprintf("engine: unsupported direction %d", int(d)))
	}
}

// Velocity returns the velocity of magnitude speed pointing along d.
func (d Direction) Velocity(speed int) Vec {
	return d.Unit().Scale(float64(speed))
}

// ParseDirection converts a lowercase name back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	case "up", "top":
		return DirUp, nil
	default:
		return 0, fmt.Errorf("engine: unknown direction %q", s)
	}
}

// DirectionOf returns the direction a velocity points along.
// The horizontal component wins when both are set.
func DirectionOf(v Vec) (Direction, bool) {
	switch {
	case v.X < 0:
		return DirLeft, true
	case v.X > 0:
		return DirRight, true
	case v.Y < 0:
		return DirUp, true
	case v.Y > 0:
		return DirDown, true
	default:
		return 0, false
	}
}

// DirSet is a set of directions stored as a bitmask.
type DirSet uint8

// Has reports whether d is in the set.
func (s DirSet) Has(d Direction) bool {
	return s&(1<<uint(d)) != 0
}

// With returns the set with d added.
func (s DirSet) With(d Direction) DirSet {
	return s | 1<<uint(d)
}

// Without returns the set with d removed.
func (s DirSet) Without(d Direction) DirSet {
	return s &^ (1 << uint(d))
}

// Len returns the number of directions in the set.
func (s DirSet) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Slice returns the members of the set in evaluation order.
func (s DirSet) Slice() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
