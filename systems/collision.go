package systems

import (
	"github.com/automoto/shapeshift/components"
	"github.com/automoto/shapeshift/events"
	"github.com/automoto/shapeshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every body by its velocity against the level's
// solids and raises a contact event for each blocked move.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		body := components.Body.Get(e)

		airborne := !physics.OnGround
		contact := body.Move(physics.SpeedX, physics.SpeedY)
		if contact.Horizontal != 0 {
			physics.SpeedX = 0
		}
		if contact.Vertical != 0 {
			physics.SpeedY = 0
		}
		physics.OnGround = body.Grounded()

		if !contact.Hit() {
			return
		}
		events.ContactEvent.Publish(ecs.World, events.Contact{
			Entry:         e,
			VerticalForce: contact.Vertical,
			Landed:        contact.Landed(),
			Airborne:      airborne,
		})
	})

	events.Process(ecs.World)
}
