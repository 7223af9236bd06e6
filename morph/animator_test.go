package morph

import (
	"testing"

	"github.com/automoto/shapeshift/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

var testTuning = Tuning{
	CommitEpsilon: 0.01,
	PullGain:      0.2,
	ShrinkRate:    0.1,
	GrowRate:      0.05,
}

func testZone() Zone {
	return Zone{
		Position: math.Vec2{X: 100, Y: 100},
		Radius:   30,
		Kind:     shape.AddRight,
		Spit:     math.Vec2{X: 3, Y: -4},
	}
}

func TestAdvanceIdleEntersMovingToward(t *testing.T) {
	zone := testZone()
	pos := math.Vec2{X: 70, Y: 100}

	out := Advance(testTuning, NotAnimating{}, Input{
		Position: pos,
		Shape:    shape.Unit(),
		Zones:    []Zone{zone},
		Near:     []Proximity{{Near: true, Distance: 5}},
		Scale:    1,
	})

	require.IsType(t, MovingToward{}, out.State)
	toward := out.State.(MovingToward)
	assert.Equal(t, pos, toward.Origin)
	assert.Equal(t, zone.Position, toward.ZonePosition)
	assert.Equal(t, 0, toward.Zone)
	assert.Equal(t, []Effect{EffectDisableCollision, EffectPlayApproachSound}, out.Effects)
	assert.False(t, out.Committed)
}

func TestAdvanceIdleStaysWhenNothingNear(t *testing.T) {
	out := Advance(testTuning, NotAnimating{}, Input{
		Position: math.Vec2{},
		Shape:    shape.Unit(),
		Zones:    []Zone{testZone()},
		Near:     []Proximity{{Near: false, Distance: 80}},
		Scale:    1,
	})

	assert.Equal(t, NotAnimating{}, out.State)
	assert.Empty(t, out.Effects)
	assert.False(t, out.Steer)
}

func TestAdvanceIdlePicksFirstNearZone(t *testing.T) {
	first := testZone()
	second := testZone()
	second.Position = math.Vec2{X: 120, Y: 100}

	out := Advance(testTuning, NotAnimating{}, Input{
		Position: math.Vec2{X: 110, Y: 100},
		Shape:    shape.Unit(),
		Zones:    []Zone{first, second},
		Near:     []Proximity{{Near: true}, {Near: true}},
		Scale:    1,
	})

	require.IsType(t, MovingToward{}, out.State)
	assert.Equal(t, 0, out.State.(MovingToward).Zone)
}

func TestAdvanceNilStateActsAsNotAnimating(t *testing.T) {
	out := Advance(testTuning, nil, Input{
		Shape: shape.Unit(),
		Scale: 0.5,
	})

	assert.Equal(t, NotAnimating{}, out.State)
	assert.InDelta(t, 0.55, out.Scale, 1e-9)
}

func TestAdvanceTowardPullsAndShrinks(t *testing.T) {
	zone := testZone()
	state := MovingToward{Origin: math.Vec2{X: 70, Y: 100}, ZonePosition: zone.Position}

	out := Advance(testTuning, state, Input{
		Position: math.Vec2{X: 90, Y: 110},
		Shape:    shape.Unit(),
		Zones:    []Zone{zone},
		Near:     []Proximity{{Near: true}},
		Scale:    1,
	})

	assert.Equal(t, state, out.State)
	assert.True(t, out.Steer)
	assert.InDelta(t, 2, out.Velocity.X, 1e-9)
	assert.InDelta(t, -2, out.Velocity.Y, 1e-9)
	assert.InDelta(t, 0.9, out.Scale, 1e-9)
	assert.False(t, out.Committed)
}

func TestAdvanceTowardCommitsInsideEpsilon(t *testing.T) {
	zone := testZone()
	origin := math.Vec2{X: 70, Y: 100}
	state := MovingToward{Origin: origin, ZonePosition: zone.Position}
	before := shape.Unit()

	out := Advance(testTuning, state, Input{
		Position: math.Vec2{X: 100.005, Y: 100},
		Shape:    before,
		Zones:    []Zone{zone},
		Near:     []Proximity{{Near: true}},
		Scale:    0.1,
	})

	require.True(t, out.Committed)
	assert.Equal(t, shape.AddRight, out.Kind)
	assert.True(t, out.Shape.Equals(shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0})))
	assert.Equal(t, 1, before.Len(), "input shape must not change")

	require.IsType(t, MovingAway{}, out.State)
	away := out.State.(MovingAway)
	assert.Equal(t, origin, away.Origin)
	assert.Equal(t, zone.Spit, away.Spit)
	assert.Contains(t, out.Effects, EffectPlayCommitSound)
}

func TestAdvanceTowardIsNotCancelledByLeavingRadius(t *testing.T) {
	zone := testZone()
	state := MovingToward{Origin: math.Vec2{X: 0, Y: 100}, ZonePosition: zone.Position}

	out := Advance(testTuning, state, Input{
		Position: math.Vec2{X: 0, Y: 100},
		Shape:    shape.Unit(),
		Zones:    []Zone{zone},
		Near:     []Proximity{{Near: false, Distance: 75}},
		Scale:    1,
	})

	assert.Equal(t, state, out.State)
	assert.True(t, out.Steer)
}

func TestAdvanceTowardWaitsWhenZoneIsGone(t *testing.T) {
	zone := testZone()
	state := MovingToward{ZonePosition: zone.Position, Zone: 3}

	out := Advance(testTuning, state, Input{
		Position: zone.Position,
		Shape:    shape.Unit(),
		Zones:    []Zone{zone},
		Scale:    1,
	})

	assert.False(t, out.Committed)
	assert.Equal(t, state, out.State)
}

func TestAdvanceTowardConvergesAndCommits(t *testing.T) {
	zone := testZone()
	pos := math.Vec2{X: 75, Y: 100}
	var state State = MovingToward{Origin: pos, ZonePosition: zone.Position}
	current := shape.Unit()
	scale := 1.0

	committed := false
	for tick := 0; tick < 200 && !committed; tick++ {
		out := Advance(testTuning, state, Input{
			Position: pos,
			Shape:    current,
			Zones:    []Zone{zone},
			Near:     []Proximity{{Near: true}},
			Scale:    scale,
		})
		state, current, scale = out.State, out.Shape, out.Scale
		pos = math.Vec2{X: pos.X + out.Velocity.X, Y: pos.Y + out.Velocity.Y}
		committed = out.Committed
	}

	require.True(t, committed)
	assert.Equal(t, 2, current.Len())
	assert.Less(t, scale, 0.1)
}

func TestAdvanceAwaySpitsWhileNear(t *testing.T) {
	zone := testZone()
	state := MovingAway{
		Origin:       math.Vec2{X: 150, Y: 100},
		ZonePosition: zone.Position,
		Spit:         zone.Spit,
	}

	out := Advance(testTuning, state, Input{
		Position: zone.Position,
		Shape:    shape.Unit(),
		Zones:    []Zone{zone},
		Near:     []Proximity{{Near: true}},
		Scale:    0.2,
	})

	assert.Equal(t, state, out.State)
	assert.True(t, out.Steer)
	// came in from the right, so the spit is mirrored to the left
	assert.Equal(t, math.Vec2{X: -3, Y: -4}, out.Velocity)
	assert.InDelta(t, 0.25, out.Scale, 1e-9)
	assert.Empty(t, out.Effects)
}

func TestAdvanceAwayKeepsSpitSignFromTheLeft(t *testing.T) {
	zone := testZone()
	state := MovingAway{Origin: math.Vec2{X: 10, Y: 100}, ZonePosition: zone.Position, Spit: zone.Spit}

	out := Advance(testTuning, state, Input{
		Shape: shape.Unit(),
		Zones: []Zone{zone},
		Near:  []Proximity{{Near: true}},
		Scale: 1,
	})

	assert.Equal(t, math.Vec2{X: 3, Y: -4}, out.Velocity)
	assert.Equal(t, 1.0, out.Scale)
}

func TestAdvanceAwayFallsOnceClear(t *testing.T) {
	zone := testZone()
	state := MovingAway{ZonePosition: zone.Position, Spit: zone.Spit}

	out := Advance(testTuning, state, Input{
		Shape: shape.Unit(),
		Zones: []Zone{zone},
		Near:  []Proximity{{Near: false, Distance: 31}},
		Scale: 0.5,
	})

	assert.Equal(t, Falling{}, out.State)
	assert.Equal(t, []Effect{EffectEnableCollision}, out.Effects)
	assert.False(t, out.Steer)
}

func TestAdvanceFallingLandsOnContact(t *testing.T) {
	out := Advance(testTuning, Falling{}, Input{Shape: shape.Unit(), Scale: 0.98})
	assert.Equal(t, Falling{}, out.State)
	assert.Equal(t, 1.0, out.Scale)

	out = Advance(testTuning, Falling{}, Input{Shape: shape.Unit(), Scale: 1, Landed: true})
	assert.Equal(t, NotAnimating{}, out.State)
	assert.Empty(t, out.Effects)
}

func TestAnimating(t *testing.T) {
	assert.False(t, Animating(NotAnimating{}))
	assert.True(t, Animating(MovingToward{}))
	assert.True(t, Animating(MovingAway{}))
	assert.False(t, Animating(Falling{}))
	assert.False(t, Animating(nil))
}
