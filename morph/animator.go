package morph

import (
	gomath "math"

	"github.com/automoto/shapeshift/shape"
	"github.com/yohamta/donburi/features/math"
)

// Tuning holds the animator constants. Rates are per tick.
type Tuning struct {
	// CommitEpsilon is how close the body must get to the zone center
	// before the transformation is applied.
	CommitEpsilon float64
	// PullGain is the fraction of the remaining displacement covered per tick.
	PullGain float64
	// ShrinkRate is the fraction of the scale lost per tick while pulled in.
	ShrinkRate float64
	// GrowRate is added to the scale per tick while recovering.
	GrowRate float64
}

// Input is everything the animator reads for one body on one tick.
type Input struct {
	Position math.Vec2 // world position of the body origin
	Shape    *shape.Shape
	Zones    []Zone
	Near     []Proximity // parallel to Zones, from Detector.Scan
	Landed   bool        // a contact with a vertical component arrived this tick
	Scale    float64
}

// Output is the result of one transition.
type Output struct {
	State State
	Shape *shape.Shape
	// Committed is set on the tick the zone's transformation was applied.
	Committed bool
	Kind      shape.Kind
	Effects   []Effect
	// Steer is set when Velocity should replace the body's own motion.
	Steer    bool
	Velocity math.Vec2
	Scale    float64
}

// Advance runs one tick of the state machine. It never mutates in.Shape;
// a committed transformation comes back as a new Output.Shape.
func Advance(t Tuning, state State, in Input) Output {
	out := Output{State: state, Shape: in.Shape, Scale: in.Scale}

	switch s := state.(type) {
	case MovingToward:
		advanceToward(t, s, in, &out)
	case MovingAway:
		advanceAway(t, s, in, &out)
	case Falling:
		out.Scale = grow(in.Scale, t.GrowRate)
		if in.Landed {
			out.State = NotAnimating{}
		}
	default:
		// NotAnimating, or no state registered yet.
		out.State = NotAnimating{}
		out.Scale = grow(in.Scale, t.GrowRate)
		advanceIdle(in, &out)
	}

	return out
}

func advanceIdle(in Input, out *Output) {
	for i, p := range in.Near {
		if !p.Near || i >= len(in.Zones) {
			continue
		}
		out.State = MovingToward{
			Origin:       in.Position,
			ZonePosition: in.Zones[i].Position,
			Zone:         i,
		}
		out.Effects = append(out.Effects, EffectDisableCollision, EffectPlayApproachSound)
		return
	}
}

func advanceToward(t Tuning, s MovingToward, in Input, out *Output) {
	dx := s.ZonePosition.X - in.Position.X
	dy := s.ZonePosition.Y - in.Position.Y

	out.Steer = true
	out.Velocity = math.Vec2{X: dx * t.PullGain, Y: dy * t.PullGain}
	out.Scale = shrink(in.Scale, t.ShrinkRate)

	if gomath.Hypot(dx, dy) >= t.CommitEpsilon {
		return
	}
	zone, ok := recordedZone(s.Zone, s.ZonePosition, in.Zones)
	if !ok {
		return
	}

	out.Shape = shape.Apply(zone.Kind, in.Shape)
	out.Committed = true
	out.Kind = zone.Kind
	out.Effects = append(out.Effects, EffectPlayCommitSound)
	out.State = MovingAway{
		Origin:       s.Origin,
		ZonePosition: s.ZonePosition,
		Spit:         zone.Spit,
		Zone:         s.Zone,
	}
	out.Velocity = spitVelocity(zone.Spit, s.ZonePosition, s.Origin)
}

func advanceAway(t Tuning, s MovingAway, in Input, out *Output) {
	out.Scale = grow(in.Scale, t.GrowRate)

	if s.Zone < len(in.Near) && in.Near[s.Zone].Near {
		out.Steer = true
		out.Velocity = spitVelocity(s.Spit, s.ZonePosition, s.Origin)
		return
	}

	out.State = Falling{}
	out.Effects = append(out.Effects, EffectEnableCollision)
}

// recordedZone returns the zone the pull started on, if it is still in place.
func recordedZone(index int, pos math.Vec2, zones []Zone) (Zone, bool) {
	if index < 0 || index >= len(zones) {
		return Zone{}, false
	}
	z := zones[index]
	if z.Position != pos {
		return Zone{}, false
	}
	return z, true
}

// spitVelocity flips the spit's horizontal component so the body keeps
// travelling the way it came in.
func spitVelocity(spit, zonePos, origin math.Vec2) math.Vec2 {
	sign := 1.0
	if zonePos.X-origin.X < 0 {
		sign = -1
	}
	return math.Vec2{X: spit.X * sign, Y: spit.Y}
}

func shrink(scale, rate float64) float64 {
	scale -= scale * rate
	if scale < 0 {
		return 0
	}
	return scale
}

func grow(scale, rate float64) float64 {
	scale += rate
	if scale > 1 {
		return 1
	}
	return scale
}
