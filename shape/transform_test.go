package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAddRight(t *testing.T) {
	out := Apply(AddRight, Unit())

	assert.Equal(t, []Cell{{0, 0}, {1, 0}}, out.Cells())
	w, h := out.Dimensions()
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)
}

func TestApplyAddTop(t *testing.T) {
	out := Apply(AddTop, New(Cell{0, 0}, Cell{1, 0}))

	assert.Equal(t, []Cell{{0, 0}, {1, 0}, {0, 1}}, out.Cells())
	w, h := out.Dimensions()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
}

func TestApplyRotateClockwise(t *testing.T) {
	out := Apply(RotateClockwise, New(Cell{0, 0}, Cell{1, 0}))

	// (0,0)->(0,1), (1,0)->(0,0)
	assert.Equal(t, []Cell{{0, 1}, {0, 0}}, out.Cells())
	w, h := out.Dimensions()
	assert.Equal(t, 1, w)
	assert.Equal(t, 2, h)
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	in := New(Cell{0, 0}, Cell{1, 0})
	_ = Apply(AddTop, in)
	_ = Apply(RotateClockwise, in)

	assert.Equal(t, []Cell{{0, 0}, {1, 0}}, in.Cells())
}

func TestApplyMeasuresFromClampedBox(t *testing.T) {
	// Dimensions never drop below (1, 1), even for cells left of the origin.
	out := Apply(AddRight, New(Cell{-2, 0}))
	assert.Equal(t, []Cell{{-2, 0}, {1, 0}}, out.Cells())

	out = Apply(AddTop, New(Cell{0, -1}))
	assert.Equal(t, []Cell{{0, -1}, {0, 1}}, out.Cells())
}

func TestApplyPanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() { Apply(Kind(42), Unit()) })
}

func TestRotateFourTimesRestoresAnchoredShapes(t *testing.T) {
	shapes := []*Shape{
		Unit(),
		New(Cell{0, 0}, Cell{1, 0}),
		New(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{0, 1}),
		New(Cell{0, 0}, Cell{0, 1}, Cell{1, 1}, Cell{1, 2}),
	}

	for _, s := range shapes {
		out := s
		for i := 0; i < 4; i++ {
			out = Apply(RotateClockwise, out)
		}
		assert.True(t, s.Equals(out), "shape %s came back as %s", s, out)
	}
}

// The pivot is max(x)+1, not the true extent, so a shape that does not touch
// both axes drifts toward the origin instead of rotating in place. This is the
// reference formula and is kept as-is.
func TestRotateOffsetShapeCollapsesTowardOrigin(t *testing.T) {
	out := New(Cell{1, 1})
	for i := 0; i < 4; i++ {
		out = Apply(RotateClockwise, out)
	}

	require.Equal(t, 1, out.Len())
	assert.Equal(t, []Cell{{0, 0}}, out.Cells())
}

func TestRotateTwiceWithFreshDimensions(t *testing.T) {
	bar := New(Cell{0, 0}, Cell{1, 0}, Cell{2, 0})

	once := Apply(RotateClockwise, bar)
	twice := Apply(RotateClockwise, once)

	assert.True(t, twice.Equals(New(Cell{2, 0}, Cell{1, 0}, Cell{0, 0})))
	w, h := twice.Dimensions()
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{AddRight, AddTop, RotateClockwise} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" Add_Top ")
	require.NoError(t, err)
	assert.Equal(t, AddTop, got)

	_, err = ParseKind("mirror")
	assert.Error(t, err)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
