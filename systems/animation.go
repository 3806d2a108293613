package systems

import (
	"math"

	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/physics"
	"github.com/yohamta/donburi"
)

// UpdatePlayerAnimation picks the player's texture and frame from its motion.
func UpdatePlayerAnimation(w donburi.World) {
	playerEntry, body, ok := playerState(w)
	if !ok {
		return
	}
	animatePlayer(components.Player.Get(playerEntry), body)
}

func animatePlayer(player *components.PlayerData, body *physics.Body) {
	if body.ChangeX < 0 && player.Facing == cfg.DirectionRight {
		player.Facing = cfg.DirectionLeft
	} else if body.ChangeX > 0 && player.Facing == cfg.DirectionLeft {
		player.Facing = cfg.DirectionRight
	}

	player.Climbing = body.OnLadder
	if player.Climbing {
		if math.Abs(body.ChangeY) > 1 {
			advanceFrame(player)
		}
		player.Texture = cfg.TextureClimb
		player.Frame = climbFrame(player.FrameCounter)
		player.Jumping = false
		return
	}

	switch {
	case body.ChangeY > 0:
		player.Texture = cfg.TextureJump
		player.Frame = 0
		return
	case body.ChangeY < 0:
		player.Texture = cfg.TextureFall
		player.Frame = 0
		return
	}
	player.Jumping = false

	if body.ChangeX == 0 {
		player.Texture = cfg.TextureIdle
		player.Frame = 0
		return
	}

	advanceFrame(player)
	player.Texture = cfg.TextureWalk
	player.Frame = player.FrameCounter
}

func advanceFrame(player *components.PlayerData) {
	player.FrameCounter++
	if player.FrameCounter >= cfg.Player.WalkFrames {
		player.FrameCounter = 0
	}
}

// climbFrame spreads the walk counter over the climb textures.
func climbFrame(counter int) int {
	if cfg.Player.WalkFrames <= 0 || cfg.Player.ClimbFrames <= 0 {
		return 0
	}
	return counter * cfg.Player.ClimbFrames / cfg.Player.WalkFrames
}
