package components

import (
	"github.com/automoto/sigmaplatformer/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing   config.Direction
	Jumping  bool
	Climbing bool

	// Texture and Frame select what the renderer draws.
	Texture config.TextureID
	Frame   int
	// FrameCounter advances on every walk or climb update; Frame is derived from it.
	FrameCounter int

	// Spawn coordinate, centre of the sprite.
	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
