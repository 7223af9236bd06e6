package shape

// Box is an axis-aligned square patch in a shape's local space.
// CX, CY is the center; Size is the side length. Local space is y-up.
type Box struct {
	CX, CY float64
	Size   float64
}

// Min returns the lower-left corner of the box.
func (b Box) Min() (float64, float64) {
	return b.CX - b.Size/2, b.CY - b.Size/2
}

// Max returns the upper-right corner of the box.
func (b Box) Max() (float64, float64) {
	return b.CX + b.Size/2, b.CY + b.Size/2
}

// Geometry returns one box per cell, centered at (x*cellSize, y*cellSize).
// The same list feeds the renderer and the physics compound shape.
func (s *Shape) Geometry(cellSize float64) []Box {
	boxes := make([]Box, len(s.cells))
	for i, c := range s.cells {
		boxes[i] = Box{
			CX:   float64(c.X) * cellSize,
			CY:   float64(c.Y) * cellSize,
			Size: cellSize,
		}
	}
	return boxes
}
