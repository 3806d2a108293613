package factory

import (
	"github.com/automoto/sigmaplatformer/archetypes"
	"github.com/automoto/sigmaplatformer/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World, viewportW, viewportH float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Width:  viewportW,
		Height: viewportH,
	})
	return camera
}
