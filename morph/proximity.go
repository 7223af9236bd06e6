package morph

import (
	"github.com/automoto/shapeshift/shape"
	"github.com/yohamta/donburi/features/math"
)

// DistanceFunc returns the non-negative minimum distance from point to a
// compound shape made of rects. It is supplied by the physics layer.
type DistanceFunc func(rects []Rect, point math.Vec2) float64

// Proximity is one zone's detector result for one tick.
type Proximity struct {
	Near     bool
	Distance float64
}

// Detector decides whether a body is inside a zone's trigger radius.
type Detector struct {
	CellSize float64
	Distance DistanceFunc
}

// IsNear measures from the body's world-space geometry to zone.Position and
// reports near when the distance is strictly below zone.Radius.
func (d Detector) IsNear(s *shape.Shape, origin math.Vec2, zone Zone) (bool, float64) {
	dist := d.Distance(WorldRects(s, origin, d.CellSize), zone.Position)
	return dist < zone.Radius, dist
}

// Scan evaluates every zone in order. The result is parallel to zones.
func (d Detector) Scan(s *shape.Shape, origin math.Vec2, zones []Zone) []Proximity {
	rects := WorldRects(s, origin, d.CellSize)
	out := make([]Proximity, len(zones))
	for i, z := range zones {
		dist := d.Distance(rects, z.Position)
		out[i] = Proximity{Near: dist < z.Radius, Distance: dist}
	}
	return out
}
