// Package morph drives the reshaping of polyomino bodies: proximity to
// transformer zones, the approach/commit/depart/recover state machine, and the
// silhouette match used to finish a level.
//
// Everything here is pure: callers pass in positions, shapes and detector
// results, and get back the next state plus a list of effects to perform.
package morph

import (
	"github.com/automoto/shapeshift/shape"
	"github.com/yohamta/donburi/features/math"
)

// Zone is a level-placed transformer. It never changes during a level.
type Zone struct {
	Position math.Vec2
	Radius   float64
	Kind     shape.Kind
	// Spit is the per-tick velocity a body leaves the zone with. World space,
	// so negative Y is up.
	Spit math.Vec2
}

// Rect is an axis-aligned world-space rectangle (y-down, X/Y is top-left).
type Rect struct {
	X, Y, W, H float64
}

// WorldRects places s's cell boxes in world space for a body whose cell (0,0)
// is centered on origin. Grid +Y maps to screen up.
func WorldRects(s *shape.Shape, origin math.Vec2, cellSize float64) []Rect {
	boxes := s.Geometry(cellSize)
	rects := make([]Rect, len(boxes))
	for i, b := range boxes {
		rects[i] = Rect{
			X: origin.X + b.CX - b.Size/2,
			Y: origin.Y - b.CY - b.Size/2,
			W: b.Size,
			H: b.Size,
		}
	}
	return rects
}
