package systems

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/physics"
	"github.com/automoto/sigmaplatformer/shared/leveldata"
	"github.com/automoto/sigmaplatformer/systems/factory"
	"github.com/automoto/sigmaplatformer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// levelScoped matches every entity rebuilt on a level load.
var levelScoped = donburi.NewQuery(filter.Not(filter.Contains(components.Session)))

// StartGame creates the session and loads the configured start level.
func StartGame(w donburi.World, maps fs.FS) error {
	factory.CreateSession(w, maps)
	return LoadLevel(w, cfg.C.StartLevel)
}

// LoadLevel replaces the current level with sigmamap<index>.tmx from the
// session's map filesystem. On error the current level is left untouched.
//
// Moving platforms collide on any level whose Moving Platforms layer has
// objects, not only on level 2.
func LoadLevel(w donburi.World, index int) error {
	session, ok := sessionData(w)
	if !ok {
		return fmt.Errorf("load level %d: no session", index)
	}

	path := cfg.Map.Path(index)
	m, err := leveldata.LoadMap(session.Maps, path)
	if err != nil {
		return fmt.Errorf("load level %d: %w", index, err)
	}
	wallLayers := WallLayers(m)
	if len(wallLayers) == 0 {
		return fmt.Errorf("load level %d: %s has no %q or %q layer",
			index, path, cfg.LayerNamePlatforms, cfg.LayerNamePlatformsAlt)
	}

	purgeLevel(w)

	grid := cfg.Map.GridPixelSize()
	cell := cfg.Physics.SpaceCellSize
	factory.CreateSpace(w,
		int(math.Ceil(float64(m.Width)*grid)),
		int(math.Ceil(float64(m.Height)*grid)),
		cell, cell,
	)

	endOfMap := ComposeScene(w, m)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return fmt.Errorf("load level %d: player was not spawned", index)
	}
	body := components.Physics.Get(playerEntry).Body

	sceneEntry, _ := components.Scene.First(w)
	scene := components.Scene.Get(sceneEntry)

	level := components.LevelData{
		Index:    index,
		Path:     path,
		Map:      m,
		EndOfMap: endOfMap,
	}

	opts := []physics.Option{
		physics.WithMaxStep(cfg.Physics.MaxStep),
		physics.WithJumpCheck(cfg.Physics.JumpCheckDistance),
	}
	if layer, ok := m.Layer(cfg.LayerNameMovingPlatforms); ok && len(layer.Tiles) > 0 {
		level.Platforms = sceneObjects(w, scene, cfg.LayerNameMovingPlatforms)
		opts = append(opts, physics.WithPlatforms(layerCollider(w, scene, cfg.LayerNameMovingPlatforms, tags.ResolvPlatform)))
	}
	if _, ok := m.Layer(cfg.LayerNameLadders); ok {
		opts = append(opts, physics.WithLadders(layerCollider(w, scene, cfg.LayerNameLadders, tags.ResolvLadder)))
	}
	if _, ok := m.Layer(cfg.LayerNameDontTouch); ok {
		level.Hazards = layerCollider(w, scene, cfg.LayerNameDontTouch, tags.ResolvHazard)
	}
	if _, ok := m.Layer(cfg.LayerNameCoins); ok {
		level.Coins = layerCollider(w, scene, cfg.LayerNameCoins, tags.ResolvCoin)
	}

	var walls physics.Colliders
	hashedWalls := false
	for _, name := range wallLayers {
		if cfg.Map.Options(name).UseSpatialHash {
			// One hashed query covers every wall layer.
			if hashedWalls {
				continue
			}
			hashedWalls = true
		}
		walls = append(walls, layerCollider(w, scene, name, tags.ResolvWall))
	}
	level.Engine = physics.NewEngine(body, cfg.Physics.Gravity, walls, opts...)

	factory.CreateLevel(w, level)
	factory.CreateCamera(w, float64(cfg.C.Width), float64(cfg.C.Height))
	UpdateCamera(w)

	session.Level = index
	session.LevelLoads++

	log.Info("level loaded",
		"level", index,
		"map", path,
		"layers", len(m.Layers),
		"endOfMap", endOfMap,
		"platforms", level.Engine.HasPlatforms(),
	)
	return nil
}

// ReloadLevel loads the current level again, e.g. after its file changed.
func ReloadLevel(w donburi.World) error {
	session, ok := sessionData(w)
	if !ok {
		return fmt.Errorf("reload level: no session")
	}
	return LoadLevel(w, session.Level)
}

// WallLayers returns the names of the solid ground layers present in m.
func WallLayers(m *leveldata.Map) []string {
	var names []string
	for _, name := range []string{cfg.LayerNamePlatforms, cfg.LayerNamePlatformsAlt} {
		if _, ok := m.Layer(name); ok {
			names = append(names, name)
		}
	}
	return names
}

func purgeLevel(w donburi.World) {
	var doomed []donburi.Entity
	levelScoped.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, entity := range doomed {
		w.Remove(entity)
	}
}

// layerCollider queries the spatial hash for hashed layers and scans the
// layer's objects otherwise.
func layerCollider(w donburi.World, scene *components.SceneData, layer, tag string) physics.Collider {
	if cfg.Map.Options(layer).UseSpatialHash {
		return physics.NewHashedLayer(tag)
	}
	return sceneObjects(w, scene, layer)
}

func sceneObjects(w donburi.World, scene *components.SceneData, layer string) physics.ObjectList {
	sceneLayer := scene.Layer(layer)
	if sceneLayer == nil {
		return nil
	}
	objects := make(physics.ObjectList, 0, len(sceneLayer.Entities))
	for _, entity := range sceneLayer.Entities {
		if !w.Valid(entity) {
			continue
		}
		objects = append(objects, components.Object.Get(w.Entry(entity)).Object)
	}
	return objects
}

func sessionData(w donburi.World) (*components.SessionData, bool) {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

func levelData(w donburi.World) (*components.LevelData, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

func playerState(w donburi.World) (*donburi.Entry, *physics.Body, bool) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Physics.Get(entry).Body, true
}
