package engine

import (
	"fmt"
	"math"
)

// Circle is a moving body: a player or ghost.
type Circle struct {
	Pos    Vec
	Radius float64
}

// Box is an axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	Pos  Vec
	W, H float64
}

// paddingFactor shrinks the padding as speed grows, indexed by step magnitude - 1.
// Faster bodies get a wider alignment window so their discrete steps cannot
// skip over the only aligned position at a junction.
var paddingFactor = [...]float64{0, 1, 1, 2, 2, 2, 3, 4, 4, 4}

// MaxStep is the largest per-tick step magnitude the collision model supports.
const MaxStep = len(paddingFactor)

// Padding returns the wall padding for a body of the given radius moving
// step pixels per tick. Panics if step is outside [1, MaxStep].
func Padding(radius float64, step int) float64 {
	if step < 1 || step > MaxStep {
		panic(fmt.Sprintf("engine: step %d outside supported range [1, %d]", step, MaxStep))
	}
	return TileWidth/2 - radius - paddingFactor[step-1]
}

// IsColliding reports whether circle, displaced by delta, would overlap box
// expanded by the speed-dependent padding. It is a look-ahead test: the
// circle's position is not changed. Step magnitude is taken from the X
// component of delta, or from Y when X is zero. A zero delta never collides.
func IsColliding(c Circle, b Box, delta Vec) bool {
	step := math.Abs(delta.X)
	if step == 0 {
		step = math.Abs(delta.Y)
	}
	if step == 0 {
		return false
	}
	pad := Padding(c.Radius, int(step))

	return c.Pos.Y-c.Radius+delta.Y < b.Pos.Y+b.H+pad &&
		c.Pos.X+c.Radius+delta.X > b.Pos.X-pad &&
		c.Pos.Y+c.Radius+delta.Y > b.Pos.Y-pad &&
		c.Pos.X-c.Radius+delta.X < b.Pos.X+b.W+pad
}
