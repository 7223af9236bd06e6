package physics

import (
	"testing"

	"github.com/automoto/shapeshift/morph"
	"github.com/automoto/shapeshift/shape"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func newSpace() *resolv.Space {
	return resolv.NewSpace(1000, 1000, 10, 10)
}

func addSolid(space *resolv.Space, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, TagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(obj)
	return obj
}

func TestPointDistance(t *testing.T) {
	rects := []morph.Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 100, Y: 0, W: 10, H: 10},
	}

	assert.Equal(t, 0.0, PointDistance(rects, math.Vec2{X: 5, Y: 5}))
	assert.InDelta(t, 5, PointDistance(rects, math.Vec2{X: 15, Y: 5}), 1e-9)
	assert.InDelta(t, 5, PointDistance(rects, math.Vec2{X: 95, Y: 5}), 1e-9)
	assert.InDelta(t, 5, PointDistance(rects, math.Vec2{X: 13, Y: 14}), 1e-9)
}

func TestPointDistanceFeedsDetector(t *testing.T) {
	d := morph.Detector{CellSize: 50, Distance: PointDistance}
	zone := morph.Zone{Position: math.Vec2{X: 100, Y: 0}, Radius: 30}

	near, dist := d.IsNear(shape.Unit(), math.Vec2{}, zone)
	assert.False(t, near)
	assert.InDelta(t, 75, dist, 1e-9)

	near, dist = d.IsNear(shape.Apply(shape.AddRight, shape.Unit()), math.Vec2{}, zone)
	assert.True(t, near)
	assert.InDelta(t, 25, dist, 1e-9)
}

func TestNewBodyOnePartPerCell(t *testing.T) {
	space := newSpace()
	s := shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0}, shape.Cell{X: 0, Y: 1})

	b := NewBody(space, s, math.Vec2{X: 200, Y: 200}, 50, "owner")

	require.Len(t, b.Parts(), 3)
	assert.Len(t, space.Objects(), 3)
	assert.Equal(t, []morph.Rect{
		{X: 175, Y: 175, W: 50, H: 50},
		{X: 225, Y: 175, W: 50, H: 50},
		{X: 175, Y: 125, W: 50, H: 50},
	}, b.Rects())
	for _, p := range b.Parts() {
		assert.Equal(t, "owner", p.Data)
		assert.True(t, p.HasTags(TagBody))
	}
}

func TestRebuildReplacesParts(t *testing.T) {
	space := newSpace()
	b := NewBody(space, shape.Unit(), math.Vec2{X: 200, Y: 200}, 50, nil)

	b.Rebuild(shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0}))
	assert.Len(t, b.Parts(), 2)
	assert.Len(t, space.Objects(), 2)

	b.Remove()
	assert.Empty(t, space.Objects())
}

func TestMoveLandsOnSolid(t *testing.T) {
	space := newSpace()
	addSolid(space, 100, 300, 300, 50)
	b := NewBody(space, shape.Unit(), math.Vec2{X: 200, Y: 265}, 50, nil)

	c := b.Move(0, 20)

	assert.True(t, c.Landed())
	assert.InDelta(t, 10, c.Vertical, 1e-9)
	assert.InDelta(t, 275, b.Origin.Y, 1e-9)
	require.Len(t, b.Rects(), 1)
	assert.Equal(t, morph.Rect{X: 175, Y: 250, W: 50, H: 50}, b.Rects()[0])
	assert.True(t, b.Grounded())
}

func TestMoveLandsWithAnyPart(t *testing.T) {
	space := newSpace()
	addSolid(space, 240, 300, 100, 50)
	// only the right-hand cell is above the solid
	s := shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0})
	b := NewBody(space, s, math.Vec2{X: 200, Y: 270}, 50, nil)

	c := b.Move(0, 10)

	assert.True(t, c.Landed())
	assert.InDelta(t, 275, b.Origin.Y, 1e-9)
}

func TestMoveStopsAtWall(t *testing.T) {
	space := newSpace()
	addSolid(space, 300, 0, 50, 400)
	b := NewBody(space, shape.Unit(), math.Vec2{X: 270, Y: 200}, 50, nil)

	c := b.Move(10, 0)

	assert.False(t, c.Landed())
	assert.InDelta(t, 5, c.Horizontal, 1e-9)
	assert.InDelta(t, 275, b.Origin.X, 1e-9)

	c = b.Move(-10, 0)
	assert.False(t, c.Hit())
	assert.InDelta(t, 265, b.Origin.X, 1e-9)
}

// An L whose first cell is flush against a wall must not be let into it by a
// nearer solid in front of a later cell.
func TestFlushPartBlocksLeftwardMove(t *testing.T) {
	space := newSpace()
	addSolid(space, 100, 200, 75, 200) // right edge touches cell (0,0)
	addSolid(space, 180, 200, 43, 74)  // ends 2px left of cell (1,1)
	s := shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0}, shape.Cell{X: 1, Y: 1})
	b := NewBody(space, s, math.Vec2{X: 200, Y: 300}, 50, nil)

	c := b.Move(-3.4, 0)

	assert.InDelta(t, 200, b.Origin.X, 1e-9)
	assert.InDelta(t, -3.4, c.Horizontal, 1e-9)
	assert.InDelta(t, 175, b.Parts()[0].X, 1e-9)
}

func TestFlushPartBlocksUpwardMove(t *testing.T) {
	space := newSpace()
	addSolid(space, 150, 200, 75, 75) // bottom edge touches cell (0,0)
	addSolid(space, 225, 150, 50, 73) // ends 2px above cell (1,1)
	s := shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0}, shape.Cell{X: 1, Y: 1})
	b := NewBody(space, s, math.Vec2{X: 200, Y: 300}, 50, nil)

	c := b.Move(0, -3.4)

	assert.InDelta(t, 300, b.Origin.Y, 1e-9)
	assert.InDelta(t, -3.4, c.Vertical, 1e-9)
	assert.False(t, c.Landed())
}

func TestNearestSolidWinsRegardlessOfPartOrder(t *testing.T) {
	space := newSpace()
	addSolid(space, 100, 200, 73, 200) // 2px left of cell (0,0)
	addSolid(space, 180, 200, 44, 74)  // 1px left of cell (1,1)
	s := shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0}, shape.Cell{X: 1, Y: 1})
	b := NewBody(space, s, math.Vec2{X: 200, Y: 300}, 50, nil)

	c := b.Move(-5, 0)

	assert.InDelta(t, 199, b.Origin.X, 1e-9)
	assert.InDelta(t, -4, c.Horizontal, 1e-9)
}

func TestMoveFreeWhenNothingInTheWay(t *testing.T) {
	space := newSpace()
	addSolid(space, 0, 900, 1000, 50)
	b := NewBody(space, shape.Unit(), math.Vec2{X: 500, Y: 100}, 50, nil)

	c := b.Move(3, 7)

	assert.False(t, c.Hit())
	assert.Equal(t, math.Vec2{X: 503, Y: 107}, b.Origin)
	assert.False(t, b.Grounded())
}

func TestDisabledBodyPassesThrough(t *testing.T) {
	space := newSpace()
	addSolid(space, 100, 300, 300, 50)
	b := NewBody(space, shape.Unit(), math.Vec2{X: 200, Y: 265}, 50, nil)
	b.Disabled = true

	c := b.Move(0, 40)

	assert.False(t, c.Hit())
	assert.InDelta(t, 305, b.Origin.Y, 1e-9)
	assert.False(t, b.Grounded())
}

func TestReenabledBodyFallsOutOfOverlap(t *testing.T) {
	space := newSpace()
	addSolid(space, 100, 300, 300, 50)
	b := NewBody(space, shape.Unit(), math.Vec2{X: 200, Y: 310}, 50, nil)

	c := b.Move(0, 5)

	assert.False(t, c.Hit())
	assert.InDelta(t, 315, b.Origin.Y, 1e-9)
}

func TestRestsOn(t *testing.T) {
	space := newSpace()
	lift := addSolid(space, 100, 300, 100, 20)
	// Bottom edge of the cell at 275+25 = 300.
	b := NewBody(space, shape.Unit(), math.Vec2{X: 150, Y: 275}, 50, nil)

	assert.True(t, b.RestsOn(lift, 1))

	b.SetOrigin(math.Vec2{X: 150, Y: 260})
	assert.False(t, b.RestsOn(lift, 1), "hovering above")

	b.SetOrigin(math.Vec2{X: 400, Y: 275})
	assert.False(t, b.RestsOn(lift, 1), "beside the lift")

	b.SetOrigin(math.Vec2{X: 150, Y: 275})
	b.Disabled = true
	assert.False(t, b.RestsOn(lift, 1))
}
