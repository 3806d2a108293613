package systems

import (
	"slices"

	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/shared/leveldata"
	"github.com/automoto/sigmaplatformer/systems/factory"
	"github.com/yohamta/donburi"
)

// playerLayerIndex returns where the player layer goes in names: right
// before Foreground, or at the end. exists is set when the map already has a
// layer of that name.
func playerLayerIndex(names []string) (index int, exists bool) {
	if i := slices.Index(names, cfg.LayerNamePlayer); i >= 0 {
		return i, true
	}
	if i := slices.Index(names, cfg.LayerNameForeground); i >= 0 {
		return i, false
	}
	return len(names), false
}

// InsertPlayerLayer returns a copy of names with the player layer placed
// immediately before Foreground, or appended when there is no Foreground.
func InsertPlayerLayer(names []string) []string {
	i, exists := playerLayerIndex(names)
	if exists {
		return slices.Clone(names)
	}
	return slices.Insert(slices.Clone(names), i, cfg.LayerNamePlayer)
}

// ComposeScene turns every tile of m into an entity, builds the ordered draw
// list and spawns the player at the spawn coordinate. Tiles of hashed layers
// are added to the resolv space, which must already exist. It returns the
// right edge of the map.
func ComposeScene(w donburi.World, m *leveldata.Map) float64 {
	scale := cfg.Map.TileScaling

	layers := make([]components.SceneLayer, 0, len(m.Layers)+1)
	for _, layer := range m.Layers {
		hashed := cfg.Map.Options(layer.Name).UseSpatialHash
		sceneLayer := components.SceneLayer{
			Name:     layer.Name,
			Hashed:   hashed,
			Visible:  layer.Visible,
			Opacity:  layer.Opacity,
			Entities: make([]donburi.Entity, 0, len(layer.Tiles)),
		}

		for _, tile := range layer.Tiles {
			rect := m.WorldRect(tile.Rect, scale)
			entry := factory.CreateTile(w, layer.Name, rect, tile.Ref, hashed)
			if factory.KindForLayer(layer.Name) == factory.KindMovingPlatform {
				factory.AttachMotion(entry, tile.Motion, scale)
			}
			sceneLayer.Entities = append(sceneLayer.Entities, entry.Entity())
		}
		layers = append(layers, sceneLayer)
	}

	player := factory.CreatePlayer(w, cfg.Player.StartX, cfg.Player.StartY)

	i, exists := playerLayerIndex(m.LayerNames())
	if exists {
		layers[i].Entities = append(layers[i].Entities, player.Entity())
	} else {
		layers = slices.Insert(layers, i, components.SceneLayer{
			Name:     cfg.LayerNamePlayer,
			Visible:  true,
			Opacity:  1,
			Entities: []donburi.Entity{player.Entity()},
		})
	}
	factory.CreateScene(w, layers)

	if m.BackgroundColor != nil {
		if session, ok := sessionData(w); ok {
			session.Background = *m.BackgroundColor
		}
	}

	return m.EndOfMap(cfg.Map.GridPixelSize())
}
