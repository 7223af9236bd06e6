package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPanicsWithoutCells(t *testing.T) {
	assert.Panics(t, func() { New() })
}

func TestNewDropsDuplicates(t *testing.T) {
	s := New(Cell{0, 0}, Cell{1, 0}, Cell{0, 0})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Cell{{0, 0}, {1, 0}}, s.Cells())
}

func TestAddCellIsIdempotent(t *testing.T) {
	once := Unit()
	once.AddCell(3, 2)

	twice := Unit()
	twice.AddCell(3, 2)
	twice.AddCell(3, 2)

	assert.Equal(t, once.Cells(), twice.Cells())
	assert.True(t, once.Equals(twice))
}

func TestCellsReturnsCopy(t *testing.T) {
	s := Unit()
	cells := s.Cells()
	cells[0] = Cell{9, 9}

	assert.True(t, s.Contains(0, 0))
	assert.False(t, s.Contains(9, 9))
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		name  string
		shape *Shape
		w, h  int
	}{
		{"unit", Unit(), 1, 1},
		{"bar", New(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}), 3, 1},
		{"column", New(Cell{0, 0}, Cell{0, 1}), 1, 2},
		{"ell", New(Cell{0, 0}, Cell{1, 0}, Cell{0, 1}), 2, 2},
		{"offset", New(Cell{2, 3}), 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.shape.Dimensions()
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
			for _, c := range tt.shape.Cells() {
				assert.Less(t, c.X, w)
				assert.Less(t, c.Y, h)
			}
		})
	}
}

func TestEqualsIgnoresOrder(t *testing.T) {
	a := New(Cell{0, 0}, Cell{1, 0}, Cell{0, 1})
	b := New(Cell{0, 1}, Cell{0, 0}, Cell{1, 0})

	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.True(t, a.Equals(a))
}

func TestEqualsRejectsSubset(t *testing.T) {
	small := New(Cell{0, 0}, Cell{1, 0})
	big := New(Cell{0, 0}, Cell{1, 0}, Cell{0, 1})

	assert.False(t, small.Equals(big))
	assert.False(t, big.Equals(small))
	assert.False(t, small.Equals(nil))
}

func TestEqualsRejectsSameSizeDifferentCells(t *testing.T) {
	a := New(Cell{0, 0}, Cell{1, 0})
	b := New(Cell{0, 0}, Cell{0, 1})

	assert.False(t, a.Equals(b))
}

func TestParseRoundTrip(t *testing.T) {
	s, err := Parse(" 0,0 ; 1,0;0, 1 ")
	require.NoError(t, err)
	assert.Equal(t, []Cell{{0, 0}, {1, 0}, {0, 1}}, s.Cells())
	assert.Equal(t, "0,0;1,0;0,1", s.String())
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"", ";;", "1", "a,b", "1,2,3"} {
		_, err := Parse(text)
		assert.Error(t, err, "input %q", text)
	}
}

func TestGeometry(t *testing.T) {
	s := New(Cell{0, 0}, Cell{1, 0}, Cell{0, 1})
	boxes := s.Geometry(50)

	require.Len(t, boxes, 3)
	assert.Equal(t, Box{CX: 0, CY: 0, Size: 50}, boxes[0])
	assert.Equal(t, Box{CX: 50, CY: 0, Size: 50}, boxes[1])
	assert.Equal(t, Box{CX: 0, CY: 50, Size: 50}, boxes[2])

	minX, minY := boxes[1].Min()
	maxX, maxY := boxes[1].Max()
	assert.Equal(t, 25.0, minX)
	assert.Equal(t, -25.0, minY)
	assert.Equal(t, 75.0, maxX)
	assert.Equal(t, 25.0, maxY)
}
