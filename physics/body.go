package physics

import (
	gomath "math"

	"github.com/automoto/shapeshift/morph"
	"github.com/automoto/shapeshift/shape"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Resolv tags shared by everything that lives in the collision space.
const (
	TagSolid = "solid"
	TagBody  = "body"
)

// Body is a compound collider made of one resolv object per shape cell. The
// parts never collide with each other; only the body's own tag is on them.
type Body struct {
	Origin   math.Vec2
	CellSize float64
	// Disabled turns off collision response: Move translates freely and
	// reports no contact.
	Disabled bool

	space   *resolv.Space
	parts   []*resolv.Object
	offsets []math.Vec2
	tags    []string
	data    interface{}
}

// NewBody builds the compound collider for s at origin and adds it to space.
// data is stored on every part so a collision can be traced back to its owner.
func NewBody(space *resolv.Space, s *shape.Shape, origin math.Vec2, cellSize float64, data interface{}, tags ...string) *Body {
	b := &Body{
		Origin:   origin,
		CellSize: cellSize,
		space:    space,
		tags:     append([]string{TagBody}, tags...),
		data:     data,
	}
	b.Rebuild(s)
	return b
}

// Rebuild replaces every part with colliders for s, keeping the origin.
func (b *Body) Rebuild(s *shape.Shape) {
	b.Remove()

	rects := morph.WorldRects(s, math.Vec2{}, b.CellSize)
	b.parts = make([]*resolv.Object, 0, len(rects))
	b.offsets = make([]math.Vec2, 0, len(rects))
	for _, r := range rects {
		obj := resolv.NewObject(b.Origin.X+r.X, b.Origin.Y+r.Y, r.W, r.H, b.tags...)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		obj.Data = b.data
		if b.space != nil {
			b.space.Add(obj)
		}
		b.parts = append(b.parts, obj)
		b.offsets = append(b.offsets, math.Vec2{X: r.X, Y: r.Y})
	}
}

// Remove takes every part out of the space.
func (b *Body) Remove() {
	for _, p := range b.parts {
		if p.Space != nil {
			p.Space.Remove(p)
		}
	}
	b.parts = nil
	b.offsets = nil
}

// Parts returns the live colliders, one per cell.
func (b *Body) Parts() []*resolv.Object {
	return b.parts
}

// Rects returns the world-space rectangles of the parts.
func (b *Body) Rects() []morph.Rect {
	rects := make([]morph.Rect, len(b.parts))
	for i, p := range b.parts {
		rects[i] = morph.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
	}
	return rects
}

// SetOrigin moves the whole body so that cell (0,0) is centered on o.
func (b *Body) SetOrigin(o math.Vec2) {
	b.Origin = o
	for i, p := range b.parts {
		p.X = o.X + b.offsets[i].X
		p.Y = o.Y + b.offsets[i].Y
		p.Update()
	}
}

// Contact describes what stopped a move.
type Contact struct {
	// Horizontal is the part of dx that was cancelled by a solid.
	Horizontal float64
	// Vertical is the part of dy that was cancelled by a solid. A positive
	// value means the body landed on something.
	Vertical float64
}

// Hit reports whether anything blocked the move.
func (c Contact) Hit() bool {
	return c.Horizontal != 0 || c.Vertical != 0
}

// Landed reports whether the body came down onto a solid.
func (c Contact) Landed() bool {
	return c.Vertical > 0
}

// Move translates the body by (dx, dy), resolving the horizontal axis first,
// and stops each axis at the first solid any part would run into.
func (b *Body) Move(dx, dy float64) Contact {
	var c Contact
	if b.Disabled {
		b.SetOrigin(math.Vec2{X: b.Origin.X + dx, Y: b.Origin.Y + dy})
		return c
	}

	if dx != 0 {
		allowed := b.sweep(dx, 0)
		c.Horizontal = dx - allowed
		b.SetOrigin(math.Vec2{X: b.Origin.X + allowed, Y: b.Origin.Y})
	}
	if dy != 0 {
		allowed := b.sweep(0, dy)
		c.Vertical = dy - allowed
		b.SetOrigin(math.Vec2{X: b.Origin.X, Y: b.Origin.Y + allowed})
	}
	return c
}

// Grounded reports whether a solid sits directly below any part.
func (b *Body) Grounded() bool {
	if b.Disabled {
		return false
	}
	return b.sweep(0, 1) < 1
}

// RestsOn reports whether any part stands on top of solid, within
// tolerance pixels.
func (b *Body) RestsOn(solid *resolv.Object, tolerance float64) bool {
	if b.Disabled {
		return false
	}
	for _, p := range b.parts {
		if p.X >= solid.X+solid.W || p.X+p.W <= solid.X {
			continue
		}
		gap := solid.Y - (p.Y + p.H)
		if gap >= -tolerance && gap <= tolerance {
			return true
		}
	}
	return false
}

// sweep returns how far along a single axis the body may travel. Solids a
// part already overlaps are ignored so a body that had collision turned off
// can fall out of them.
func (b *Body) sweep(dx, dy float64) float64 {
	allowed := dx + dy
	for _, p := range b.parts {
		check := p.Check(dx, dy, TagSolid)
		if check == nil {
			continue
		}
		for _, solid := range check.ObjectsByTags(TagSolid) {
			if gap, ok := approach(p, solid, dx, dy); ok && shorter(gap, allowed) {
				allowed = gap
			}
		}
	}
	return allowed
}

// approach returns the free distance from part to solid along the move,
// and false when the solid is not in the way.
func approach(part, solid *resolv.Object, dx, dy float64) (float64, bool) {
	if dx != 0 {
		if part.Y >= solid.Y+solid.H || part.Y+part.H <= solid.Y {
			return 0, false
		}
		if dx > 0 {
			gap := solid.X - (part.X + part.W)
			return gap, gap >= 0 && gap < dx
		}
		gap := (solid.X + solid.W) - part.X
		return gap, gap <= 0 && gap > dx
	}

	if part.X >= solid.X+solid.W || part.X+part.W <= solid.X {
		return 0, false
	}
	if dy > 0 {
		gap := solid.Y - (part.Y + part.H)
		return gap, gap >= 0 && gap < dy
	}
	gap := (solid.Y + solid.H) - part.Y
	return gap, gap <= 0 && gap > dy
}

// shorter reports whether travel a is no longer than travel b. Both come
// from the same move, so only their lengths differ.
func shorter(a, b float64) bool {
	return gomath.Abs(a) <= gomath.Abs(b)
}
