package morph

import (
	gomath "math"
	"testing"

	"github.com/automoto/shapeshift/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

// centerDistance stands in for the physics layer: distance from point to the
// nearest rect center.
func centerDistance(rects []Rect, p math.Vec2) float64 {
	best := gomath.Inf(1)
	for _, r := range rects {
		d := gomath.Hypot(r.X+r.W/2-p.X, r.Y+r.H/2-p.Y)
		if d < best {
			best = d
		}
	}
	return best
}

func TestWorldRectsFlipGridY(t *testing.T) {
	s := shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0}, shape.Cell{X: 0, Y: 1})
	rects := WorldRects(s, math.Vec2{X: 100, Y: 200}, 50)

	require.Len(t, rects, 3)
	assert.Equal(t, Rect{X: 75, Y: 175, W: 50, H: 50}, rects[0])
	assert.Equal(t, Rect{X: 125, Y: 175, W: 50, H: 50}, rects[1])
	// grid up is screen up
	assert.Equal(t, Rect{X: 75, Y: 125, W: 50, H: 50}, rects[2])
}

func TestIsNearUsesStrictRadius(t *testing.T) {
	d := Detector{CellSize: 50, Distance: centerDistance}
	zone := Zone{Position: math.Vec2{X: 30, Y: 0}, Radius: 30}

	near, dist := d.IsNear(shape.Unit(), math.Vec2{}, zone)
	assert.False(t, near)
	assert.InDelta(t, 30, dist, 1e-9)

	zone.Radius = 30.5
	near, _ = d.IsNear(shape.Unit(), math.Vec2{}, zone)
	assert.True(t, near)
}

func TestIsNearSeesAddedCells(t *testing.T) {
	d := Detector{CellSize: 50, Distance: centerDistance}
	zone := Zone{Position: math.Vec2{X: 55, Y: 0}, Radius: 10}

	near, _ := d.IsNear(shape.Unit(), math.Vec2{}, zone)
	assert.False(t, near)

	near, dist := d.IsNear(shape.Apply(shape.AddRight, shape.Unit()), math.Vec2{}, zone)
	assert.True(t, near)
	assert.InDelta(t, 5, dist, 1e-9)
}

func TestScanKeepsZoneOrder(t *testing.T) {
	d := Detector{CellSize: 50, Distance: centerDistance}
	zones := []Zone{
		{Position: math.Vec2{X: 200, Y: 0}, Radius: 30},
		{Position: math.Vec2{X: 5, Y: 0}, Radius: 30},
		{Position: math.Vec2{X: 0, Y: 20}, Radius: 30},
	}

	got := d.Scan(shape.Unit(), math.Vec2{}, zones)

	require.Len(t, got, 3)
	assert.False(t, got[0].Near)
	assert.True(t, got[1].Near)
	assert.True(t, got[2].Near)
	assert.InDelta(t, 200, got[0].Distance, 1e-9)
}
