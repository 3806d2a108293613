package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	// Position is the bottom-left corner of the view in world units.
	Position math.Vec2
	Width    float64
	Height   float64
}

var Camera = donburi.NewComponentType[CameraData]()
