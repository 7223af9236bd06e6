package morph

import (
	gomath "math"

	"github.com/automoto/shapeshift/shape"
	"github.com/yohamta/donburi/features/math"
)

// Matches reports whether a body fits a cave: the two origins must be within
// tolerance on both axes, and the cell sets must be identical. Touching the
// cave with the wrong silhouette never counts.
func Matches(body, target *shape.Shape, bodyPos, targetPos math.Vec2, tolerance float64) bool {
	if gomath.Abs(bodyPos.X-targetPos.X) >= tolerance {
		return false
	}
	if gomath.Abs(bodyPos.Y-targetPos.Y) >= tolerance {
		return false
	}
	return body.Equals(target)
}

// CaveOrigin returns where cell (0,0) of a cave's target sits so that the
// silhouette is centered on the cave position.
func CaveOrigin(target *shape.Shape, center math.Vec2, cellSize float64) math.Vec2 {
	w, h := target.Dimensions()
	return math.Vec2{
		X: center.X - float64(w-1)*cellSize/2,
		Y: center.Y + float64(h-1)*cellSize/2,
	}
}
