package systems

import (
	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/yohamta/donburi"
)

// OnActionDown applies a key press to the player's velocity.
func OnActionDown(w donburi.World, action cfg.ActionID) {
	level, ok := levelData(w)
	if !ok {
		return
	}
	playerEntry, body, ok := playerState(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	switch action {
	case cfg.ActionJump:
		if level.Engine.IsOnLadder() {
			body.ChangeY = cfg.Physics.LadderSpeed
			player.Climbing = true
			return
		}
		// One-shot impulse; ignored while airborne.
		if level.Engine.CanJump() {
			body.ChangeY = cfg.Player.JumpSpeed
			player.Jumping = true
		}
	case cfg.ActionMoveLeft:
		body.ChangeX = -cfg.Player.MovementSpeed
	case cfg.ActionMoveRight:
		body.ChangeX = cfg.Player.MovementSpeed
	}
}

// OnActionUp applies a key release. A horizontal release only stops the
// player when it was moving that way.
func OnActionUp(w donburi.World, action cfg.ActionID) {
	level, ok := levelData(w)
	if !ok {
		return
	}
	_, body, ok := playerState(w)
	if !ok {
		return
	}

	switch action {
	case cfg.ActionJump:
		if level.Engine.IsOnLadder() {
			body.ChangeY = 0
		}
	case cfg.ActionMoveLeft:
		if body.ChangeX < 0 {
			body.ChangeX = 0
		}
	case cfg.ActionMoveRight:
		if body.ChangeX > 0 {
			body.ChangeX = 0
		}
	}
}
