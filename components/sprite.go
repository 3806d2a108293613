package components

import (
	"image/color"

	"github.com/automoto/sigmaplatformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

// SpriteData says how to draw a tile entity. Images are resolved by the
// renderer so gameplay code never touches Ebitengine.
type SpriteData struct {
	Layer string
	Ref   leveldata.TileRef
	// Fill is used when the tileset image is unavailable.
	Fill color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
