package systems

import (
	"github.com/automoto/sigmaplatformer/components"
	"github.com/automoto/sigmaplatformer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCamera centres the view on the player, never scrolling past the map origin.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	_, body, ok := playerState(w)
	if !ok {
		return // no player yet
	}

	px, py := body.Center()
	camera.Position.X, camera.Position.Y = gamemath.CenterCamera(px, py, camera.Width, camera.Height)
}
