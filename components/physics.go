package components

import (
	"github.com/automoto/sigmaplatformer/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData is the integrator state of a moving entity.
type PhysicsData struct {
	*physics.Body
}

var Physics = donburi.NewComponentType[PhysicsData]()
