package render

import (
	"image/color"

	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/physics"
	"github.com/automoto/sigmaplatformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object when debug drawing is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.DebugDraw {
		return
	}
	v, ok := cameraView(e.World, screen)
	if !ok {
		return
	}

	for _, obj := range debugObjects(e.World) {
		rect := physics.RectOf(obj)
		if !v.visible(rect) {
			continue
		}
		x, y := v.toScreen(rect)
		c := debugColor(obj)

		vector.FillRect(screen, float32(x), float32(y), float32(rect.W), 1, c, false)          // Top
		vector.FillRect(screen, float32(x), float32(y+rect.H-1), float32(rect.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(rect.H), c, false)          // Left
		vector.FillRect(screen, float32(x+rect.W-1), float32(y), 1, float32(rect.H), c, false) // Right
	}
}

// debugObjects returns the space's objects plus the moving platforms, which
// live outside the space.
func debugObjects(w donburi.World) []*resolv.Object {
	var objs []*resolv.Object
	if spaceEntry, ok := components.Space.First(w); ok {
		objs = append(objs, components.Space.Get(spaceEntry).Objects()...)
	}
	if levelEntry, ok := components.Level.First(w); ok {
		for _, obj := range components.Level.Get(levelEntry).Platforms {
			if obj.Space == nil {
				objs = append(objs, obj)
			}
		}
	}
	return objs
}

func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvWall):
		return color.RGBA{100, 100, 100, 255} // Grey
	case obj.HasTags(tags.ResolvPlayer):
		return color.RGBA{0, 0, 255, 255} // Blue
	case obj.HasTags(tags.ResolvHazard):
		return color.RGBA{255, 0, 0, 255} // Red
	case obj.HasTags(tags.ResolvPlatform):
		return color.RGBA{0, 255, 0, 255} // Green
	default:
		return color.RGBA{0, 255, 255, 255} // Cyan
	}
}
