// Package physics is the collision side of a shape body: a compound resolv
// collider with one rectangle per cell, move-and-collide against solids, and
// the point distance used for zone proximity. It does not depend on ebitengine
// or donburi entities.
package physics

import (
	gomath "math"

	"github.com/automoto/shapeshift/morph"
	"github.com/yohamta/donburi/features/math"
)

// PointDistance returns the smallest distance from p to any of the rects.
// A point inside a rect is at distance 0.
func PointDistance(rects []morph.Rect, p math.Vec2) float64 {
	best := gomath.Inf(1)
	for _, r := range rects {
		dx := axisGap(p.X, r.X, r.X+r.W)
		dy := axisGap(p.Y, r.Y, r.Y+r.H)
		if d := gomath.Hypot(dx, dy); d < best {
			best = d
		}
	}
	return best
}

func axisGap(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	}
	return 0
}
