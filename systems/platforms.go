package systems

import (
	"github.com/automoto/sigmaplatformer/components"
	"github.com/automoto/sigmaplatformer/tags"
	"github.com/yohamta/donburi"
)

// UpdateMovingPlatforms advances every scripted platform by one frame and
// carries a player standing on it. Walls stop the carried player.
func UpdateMovingPlatforms(w donburi.World) {
	_, body, hasPlayer := playerState(w)
	level, hasLevel := levelData(w)

	tags.MovingPlatform.Each(w, func(e *donburi.Entry) {
		platform := components.MovingPlatform.Get(e)
		obj := components.Object.Get(e).Object

		prevX, prevY := obj.X, obj.Y
		if platform.SequenceX != nil {
			x, _, _ := platform.SequenceX.Update(1)
			obj.X = float64(x)
		} else {
			obj.X += platform.ChangeX
		}
		if platform.SequenceY != nil {
			y, _, _ := platform.SequenceY.Update(1)
			obj.Y = float64(y)
		} else {
			obj.Y += platform.ChangeY
		}
		platform.DeltaX = obj.X - prevX
		platform.DeltaY = obj.Y - prevY
		if obj.Space != nil {
			obj.Update()
		}

		if hasPlayer && hasLevel && body.Ground == obj {
			level.Engine.Carry(platform.DeltaX, platform.DeltaY)
		}
	})
}
