package systems

import (
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/morph"
	"github.com/automoto/shapeshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns input into body velocity. Input is ignored while a
// transformer is moving the body.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		if morph.Animating(components.Morph.Get(playerEntry).State) {
			return
		}

		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)

		handleMovementInput(
			GetAction(input, cfg.ActionMoveLeft),
			GetAction(input, cfg.ActionMoveRight),
			player, physics,
		)
		handleJumpInput(ecs, playerEntry, GetAction(input, cfg.ActionJump), player, physics)
	})
}

func handleMovementInput(left, right components.ActionState, player *components.PlayerData, physics *components.PhysicsData) {
	switch {
	case left.Pressed && !right.Pressed:
		physics.SpeedX = -cfg.Player.MoveSpeed
		player.Direction = -1
	case right.Pressed && !left.Pressed:
		physics.SpeedX = cfg.Player.MoveSpeed
		player.Direction = 1
	default:
		physics.SpeedX = 0
	}
}

// handleJumpInput jumps once; the next contact clears the flag.
func handleJumpInput(e *ecs.ECS, playerEntry *donburi.Entry, jump components.ActionState, player *components.PlayerData, physics *components.PhysicsData) {
	if !jump.Pressed || player.Jumping {
		return
	}

	player.Jumping = true
	physics.SpeedY = -cfg.Player.JumpSpeed
	PlaySFX(e, cfg.SoundJump)
	TriggerSquashStretch(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
}
