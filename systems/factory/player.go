package factory

import (
	"github.com/automoto/sigmaplatformer/archetypes"
	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/physics"
	"github.com/automoto/sigmaplatformer/shared/leveldata"
	"github.com/automoto/sigmaplatformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player centred on (x, y).
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	width, height := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-width/2, y-height/2, width, height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Physics.SetValue(player, components.PhysicsData{Body: physics.NewBody(obj)})
	components.Player.SetValue(player, components.PlayerData{
		Facing:  cfg.DirectionRight,
		Texture: cfg.TextureIdle,
		SpawnX:  x,
		SpawnY:  y,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Layer: cfg.LayerNamePlayer,
		Ref:   leveldata.TileRef{Tileset: -1},
		Fill:  cfg.White,
	})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
