package factory

import (
	"image/color"

	"github.com/automoto/sigmaplatformer/archetypes"
	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/shared/gamemath"
	"github.com/automoto/sigmaplatformer/shared/leveldata"
	"github.com/automoto/sigmaplatformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TileKind is the gameplay role a map layer gives its tiles.
type TileKind int

const (
	KindDecoration TileKind = iota
	KindWall
	KindMovingPlatform
	KindCoin
	KindHazard
	KindLadder
)

// KindForLayer maps a layer name to the role of its tiles.
func KindForLayer(name string) TileKind {
	switch name {
	case cfg.LayerNamePlatforms, cfg.LayerNamePlatformsAlt:
		return KindWall
	case cfg.LayerNameMovingPlatforms:
		return KindMovingPlatform
	case cfg.LayerNameCoins:
		return KindCoin
	case cfg.LayerNameDontTouch:
		return KindHazard
	case cfg.LayerNameLadders:
		return KindLadder
	default:
		return KindDecoration
	}
}

func (k TileKind) resolvTag() string {
	switch k {
	case KindWall:
		return tags.ResolvWall
	case KindMovingPlatform:
		return tags.ResolvPlatform
	case KindCoin:
		return tags.ResolvCoin
	case KindHazard:
		return tags.ResolvHazard
	case KindLadder:
		return tags.ResolvLadder
	default:
		return ""
	}
}

func (k TileKind) fill() color.RGBA {
	switch k {
	case KindWall:
		return cfg.SaddleBrown
	case KindMovingPlatform:
		return cfg.DarkGreen
	case KindCoin:
		return cfg.BrightYellow
	case KindHazard:
		return cfg.LightRed
	case KindLadder:
		return cfg.Orange
	default:
		return cfg.SlateGray
	}
}

// CreateTile spawns one map tile at rect (world units). The object is added
// to the resolv space when hashed is set.
func CreateTile(w donburi.World, layer string, rect gamemath.Rect, ref leveldata.TileRef, hashed bool) *donburi.Entry {
	kind := KindForLayer(layer)

	var tile *donburi.Entry
	switch kind {
	case KindWall:
		tile = archetypes.Wall.Spawn(w)
	case KindMovingPlatform:
		tile = archetypes.MovingPlatform.Spawn(w)
	case KindCoin:
		tile = archetypes.Coin.Spawn(w)
	case KindHazard:
		tile = archetypes.Hazard.Spawn(w)
	case KindLadder:
		tile = archetypes.Ladder.Spawn(w)
	default:
		tile = archetypes.Decoration.Spawn(w)
	}

	var obj *resolv.Object
	if tag := kind.resolvTag(); tag != "" {
		obj = resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tag)
	} else {
		obj = resolv.NewObject(rect.X, rect.Y, rect.W, rect.H)
	}
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = tile // Link for O(1) lookup

	components.Object.SetValue(tile, components.ObjectData{Object: obj})
	components.Sprite.SetValue(tile, components.SpriteData{
		Layer: layer,
		Ref:   ref,
		Fill:  kind.fill(),
	})

	if hashed {
		if spaceEntry, ok := components.Space.First(w); ok {
			components.Space.Get(spaceEntry).Add(obj)
		}
	}

	return tile
}
