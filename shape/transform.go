package shape

import (
	"fmt"
	"strings"
)

// Kind is a shape-mutating operation a transformer zone applies.
type Kind int

const (
	AddRight Kind = iota
	AddTop
	RotateClockwise
)

var kindNames = map[Kind]string{
	AddRight:        "add_right",
	AddTop:          "add_top",
	RotateClockwise: "rotate_cw",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a level-file name ("add_right", "add_top", "rotate_cw")
// back to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown transformation %q", name)
}

// Apply returns the shape produced by running kind on s. s is not modified.
// The bounding box is measured fresh from s before the mutation.
func Apply(kind Kind, s *Shape) *Shape {
	w, h := s.Dimensions()
	out := s.Clone()

	switch kind {
	case AddRight:
		out.AddCell(w, 0)
	case AddTop:
		out.AddCell(0, h)
	case RotateClockwise:
		// All new coordinates come from the pre-rotation cells.
		rotated := make([]Cell, len(s.cells))
		for i, c := range s.cells {
			rotated[i] = Cell{X: c.Y, Y: w - c.X - 1}
		}
		out = New(rotated...)
	default:
		panic(fmt.Sprintf("shape: unknown transformation %v", kind))
	}

	return out
}
