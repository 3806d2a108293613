package components

import (
	"github.com/automoto/sigmaplatformer/physics"
	"github.com/automoto/sigmaplatformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the state of the level currently loaded. It is rebuilt on
// every level load.
type LevelData struct {
	Index    int
	Path     string
	Map      *leveldata.Map
	EndOfMap float64

	Engine    *physics.Engine
	Platforms physics.ObjectList

	// Hazards and Coins are nil when the map has no such layer.
	Hazards physics.Collider
	Coins   physics.Collider
}

var Level = donburi.NewComponentType[LevelData]()
