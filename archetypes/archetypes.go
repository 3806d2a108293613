package archetypes

import (
	"slices"

	"github.com/automoto/sigmaplatformer/components"
	"github.com/automoto/sigmaplatformer/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Sprite,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.Object,
		components.Sprite,
		components.MovingPlatform,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Object,
		components.Sprite,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
		components.Sprite,
	)
	Ladder = newArchetype(
		tags.Ladder,
		components.Object,
		components.Sprite,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Scene = newArchetype(
		components.Scene,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(slices.Concat(a.components, cs)...))
}
