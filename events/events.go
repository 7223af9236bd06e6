// Package events holds the world-scoped event types systems publish to each
// other during a tick.
package events

import (
	"github.com/automoto/shapeshift/shape"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Contact is raised when a body's move was stopped by a solid.
type Contact struct {
	Entry *donburi.Entry
	// VerticalForce is the cancelled vertical travel.
	VerticalForce float64
	// Landed is set when the body came down onto a solid.
	Landed bool
	// Airborne is set when the body was not resting on anything before the
	// move, so Landed marks a fresh landing.
	Airborne bool
}

// Committed is raised on the tick a transformer reshapes a body.
type Committed struct {
	Entry *donburi.Entry
	Kind  shape.Kind
	Shape *shape.Shape
}

// Matched is raised when a body settles into a cave it fits.
type Matched struct {
	Entry *donburi.Entry
	Cave  *donburi.Entry
}

var (
	ContactEvent   = events.NewEventType[Contact]()
	CommittedEvent = events.NewEventType[Committed]()
	MatchedEvent   = events.NewEventType[Matched]()
)

// Process delivers every queued event of every type.
func Process(w donburi.World) {
	ContactEvent.ProcessEvents(w)
	CommittedEvent.ProcessEvents(w)
	MatchedEvent.ProcessEvents(w)
}
