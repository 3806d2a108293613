package factory

import (
	"io/fs"

	"github.com/automoto/sigmaplatformer/archetypes"
	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/yohamta/donburi"
)

// CreateLevel stores the state of a freshly loaded level.
func CreateLevel(w donburi.World, data components.LevelData) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, data)
	return level
}

// CreateScene spawns the scene holding the draw order of the current level.
func CreateScene(w donburi.World, layers []components.SceneLayer) *donburi.Entry {
	scene := archetypes.Scene.Spawn(w)
	components.Scene.SetValue(scene, components.SceneData{Layers: layers})
	return scene
}

// CreateSession spawns the state that lives for the whole run.
func CreateSession(w donburi.World, maps fs.FS) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{
		Level:      cfg.C.StartLevel,
		Background: cfg.BackgroundColor,
		Maps:       maps,
	})
	return session
}
