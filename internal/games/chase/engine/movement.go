package engine

import "math"

// Integrate advances p by v, wraps the horizontal axis across [0, boardWidth]
// and re-centres the axis perpendicular to travel onto its tile centerline.
func Integrate(p, v Vec, boardWidth float64) Vec {
	p = p.Add(v)

	if p.X < 0 {
		p.X = boardWidth
	} else if p.X > boardWidth {
		p.X = 0
	}

	return Recenter(p, v)
}

// Recenter snaps the coordinate perpendicular to v onto the centerline of
// the tile it lies in. Vertical travel snaps X, horizontal travel snaps Y.
func Recenter(p, v Vec) Vec {
	if v.Y != 0 {
		p.X = centerline(p.X, TileWidth)
	}
	if v.X != 0 {
		p.Y = centerline(p.Y, TileHeight)
	}
	return p
}

func centerline(c float64, size int) float64 {
	s := float64(size)
	return math.Floor(c/s)*s + s/2
}
