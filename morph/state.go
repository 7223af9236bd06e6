package morph

import "github.com/yohamta/donburi/features/math"

// State is the animator state of one body. The set of states is closed:
// NotAnimating, MovingToward, MovingAway and Falling.
type State interface {
	Name() string
	isState()
}

// NotAnimating is the resting state. Bodies spawn here.
type NotAnimating struct{}

// MovingToward pulls the body into a zone. It cannot be cancelled.
type MovingToward struct {
	Origin       math.Vec2 // body position when the pull started
	ZonePosition math.Vec2
	Zone         int // index into the level's zones
}

// MovingAway spits the body out of the zone after the shape was committed.
type MovingAway struct {
	Origin       math.Vec2
	ZonePosition math.Vec2
	Spit         math.Vec2
	Zone         int
}

// Falling waits for the body to land with collisions back on.
type Falling struct{}

func (NotAnimating) Name() string { return "not_animating" }
func (MovingToward) Name() string { return "moving_toward" }
func (MovingAway) Name() string   { return "moving_away" }
func (Falling) Name() string      { return "falling" }

func (NotAnimating) isState() {}
func (MovingToward) isState() {}
func (MovingAway) isState()   {}
func (Falling) isState()      {}

// Effect is a side effect the caller performs after a transition.
type Effect int

const (
	EffectDisableCollision Effect = iota
	EffectEnableCollision
	EffectPlayApproachSound
	EffectPlayCommitSound
)

func (e Effect) String() string {
	switch e {
	case EffectDisableCollision:
		return "disable_collision"
	case EffectEnableCollision:
		return "enable_collision"
	case EffectPlayApproachSound:
		return "play_approach_sound"
	case EffectPlayCommitSound:
		return "play_commit_sound"
	}
	return "unknown"
}

// Animating reports whether the state drives the body's velocity.
func Animating(s State) bool {
	switch s.(type) {
	case MovingToward, MovingAway:
		return true
	}
	return false
}
