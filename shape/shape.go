// Package shape models a polyomino body: a set of unit cells on an integer
// grid. It has no dependencies on ebitengine, donburi, or resolv.
package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is a unit grid offset relative to a body's origin. +Y points up.
type Cell struct {
	X, Y int
}

// Shape is an insertion-ordered set of cells. A Shape always holds at least
// one cell and never holds the same cell twice.
type Shape struct {
	cells []Cell
}

// New builds a shape from the given cells, dropping duplicates.
// Building a shape with no cells is a programming error and panics.
func New(cells ...Cell) *Shape {
	if len(cells) == 0 {
		panic("shape: a shape needs at least one cell")
	}
	s := &Shape{cells: make([]Cell, 0, len(cells))}
	for _, c := range cells {
		s.AddCell(c.X, c.Y)
	}
	return s
}

// Unit returns the single-cell shape every player spawns with.
func Unit() *Shape {
	return New(Cell{0, 0})
}

// AddCell inserts (x, y) unless it is already present.
func (s *Shape) AddCell(x, y int) {
	if s.Contains(x, y) {
		return
	}
	s.cells = append(s.cells, Cell{X: x, Y: y})
}

// Contains reports whether (x, y) is one of the shape's cells.
func (s *Shape) Contains(x, y int) bool {
	for _, c := range s.cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// Len returns the number of cells.
func (s *Shape) Len() int {
	return len(s.cells)
}

// Cells returns a copy of the cells in insertion order.
func (s *Shape) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Dimensions returns (max(x)+1, max(y)+1) over all cells.
// It is recomputed on every call and is never smaller than (1, 1).
func (s *Shape) Dimensions() (w, h int) {
	w, h = 1, 1
	for _, c := range s.cells {
		if c.X+1 > w {
			w = c.X + 1
		}
		if c.Y+1 > h {
			h = c.Y + 1
		}
	}
	return w, h
}

// Equals reports whether both shapes hold exactly the same cells,
// regardless of insertion order.
func (s *Shape) Equals(other *Shape) bool {
	if other == nil || len(s.cells) != len(other.cells) {
		return false
	}
	for _, c := range s.cells {
		if !other.Contains(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s *Shape) Clone() *Shape {
	return &Shape{cells: s.Cells()}
}

// String renders the cells as "x,y;x,y", the same format Parse accepts.
func (s *Shape) String() string {
	parts := make([]string, len(s.cells))
	for i, c := range s.cells {
		parts[i] = fmt.Sprintf("%d,%d", c.X, c.Y)
	}
	return strings.Join(parts, ";")
}

// Parse reads a shape from "x,y;x,y;..." as used by level files.
// Whitespace around cells is ignored.
func Parse(text string) (*Shape, error) {
	var cells []Cell
	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("parse cell %q: want x,y", part)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
		if err != nil {
			return nil, fmt.Errorf("parse cell %q: %w", part, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
		if err != nil {
			return nil, fmt.Errorf("parse cell %q: %w", part, err)
		}
		cells = append(cells, Cell{X: x, Y: y})
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("parse shape %q: no cells", text)
	}
	return New(cells...), nil
}
