package morph

import (
	"testing"

	"github.com/automoto/shapeshift/shape"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func ell() *shape.Shape {
	return shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0}, shape.Cell{X: 0, Y: 1})
}

func TestMatchesNeedsBothPositionAndShape(t *testing.T) {
	at := math.Vec2{X: 400, Y: 300}

	assert.True(t, Matches(ell(), ell(), at, at, 25))
	assert.True(t, Matches(ell(), ell(), math.Vec2{X: 410, Y: 290}, at, 25))

	// right silhouette, wrong place
	assert.False(t, Matches(ell(), ell(), math.Vec2{X: 430, Y: 300}, at, 25))
	assert.False(t, Matches(ell(), ell(), math.Vec2{X: 400, Y: 325}, at, 25))
}

func TestMatchesRejectsExtraCellsWhileColocated(t *testing.T) {
	at := math.Vec2{X: 400, Y: 300}
	body := ell()
	body.AddCell(1, 1)

	assert.False(t, Matches(body, ell(), at, at, 25))
	assert.False(t, Matches(ell(), body, at, at, 25))
}

func TestMatchesIgnoresInsertionOrder(t *testing.T) {
	at := math.Vec2{X: 0, Y: 0}
	reordered := shape.New(shape.Cell{X: 0, Y: 1}, shape.Cell{X: 1, Y: 0}, shape.Cell{X: 0, Y: 0})

	assert.True(t, Matches(reordered, ell(), at, at, 25))
}

func TestCaveOriginCentersSilhouette(t *testing.T) {
	center := math.Vec2{X: 500, Y: 400}

	assert.Equal(t, center, CaveOrigin(shape.Unit(), center, 50))
	assert.Equal(t, math.Vec2{X: 475, Y: 425}, CaveOrigin(ell(), center, 50))

	bar := shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0}, shape.Cell{X: 2, Y: 0})
	assert.Equal(t, math.Vec2{X: 450, Y: 400}, CaveOrigin(bar, center, 50))
}
