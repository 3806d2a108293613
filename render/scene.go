package render

import (
	"image/color"

	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/physics"
	"github.com/automoto/sigmaplatformer/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cullPadding keeps sprites from popping at the screen edges.
const cullPadding = 64.0

// Renderer draws the current scene through the camera.
type Renderer struct {
	images *Images
	drawOp ebiten.DrawImageOptions
}

func NewRenderer(images *Images) *Renderer {
	return &Renderer{images: images}
}

// Images exposes the cache so hot reloads can clear it.
func (r *Renderer) Images() *Images {
	return r.images
}

// view is the camera state captured once per frame.
type view struct {
	camX, camY float64
	w, h       float64
}

func (v view) toScreen(rect gamemath.Rect) (float64, float64) {
	return gamemath.ToScreen(rect, v.camX, v.camY, v.h)
}

func (v view) visible(rect gamemath.Rect) bool {
	return gamemath.Visible(rect, v.camX, v.camY, v.w, v.h, cullPadding)
}

// DrawScene fills the background and draws every visible layer in order.
func (r *Renderer) DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	background := cfg.BackgroundColor
	if sessionEntry, ok := components.Session.First(e.World); ok {
		background = components.Session.Get(sessionEntry).Background
	}
	screen.Fill(background)

	v, ok := cameraView(e.World, screen)
	if !ok {
		return // no level yet
	}
	sceneEntry, ok := components.Scene.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for _, layer := range components.Scene.Get(sceneEntry).Layers {
		if !layer.Visible {
			continue
		}
		for _, entity := range layer.Entities {
			if !e.World.Valid(entity) {
				continue
			}
			entry := e.World.Entry(entity)
			if entry.HasComponent(components.Player) {
				r.drawPlayer(screen, entry, v, layer.Opacity)
				continue
			}
			r.drawTile(screen, entry, level, v, layer.Opacity)
		}
	}
}

func (r *Renderer) drawTile(screen *ebiten.Image, entry *donburi.Entry, level *components.LevelData, v view, opacity float64) {
	rect := physics.RectOf(components.Object.Get(entry).Object)
	if !v.visible(rect) {
		return
	}
	sprite := components.Sprite.Get(entry)
	x, y := v.toScreen(rect)

	var img *ebiten.Image
	if ref := sprite.Ref; ref.Tileset >= 0 && level.Map != nil && ref.Tileset < len(level.Map.Tilesets) {
		img = r.images.Tile(level.Map.Tilesets[ref.Tileset], ref.ID)
	}
	if img == nil {
		fillRect(screen, x, y, rect.W, rect.H, fade(sprite.Fill, opacity))
		return
	}

	tw, th := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	r.drawOp.GeoM.Reset()
	r.drawOp.ColorScale.Reset()
	if sprite.Ref.FlipH {
		r.drawOp.GeoM.Scale(-1, 1)
		r.drawOp.GeoM.Translate(tw, 0)
	}
	if sprite.Ref.FlipV {
		r.drawOp.GeoM.Scale(1, -1)
		r.drawOp.GeoM.Translate(0, th)
	}
	r.drawOp.GeoM.Scale(rect.W/tw, rect.H/th)
	r.drawOp.GeoM.Translate(x, y)
	r.drawOp.ColorScale.ScaleAlpha(float32(opacity))
	screen.DrawImage(img, &r.drawOp)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, entry *donburi.Entry, v view, opacity float64) {
	rect := physics.RectOf(components.Object.Get(entry).Object)
	player := components.Player.Get(entry)
	x, y := v.toScreen(rect)

	img := r.images.PlayerFrame(player.Texture, player.Frame)
	if img == nil {
		fillRect(screen, x, y, rect.W, rect.H, fade(components.Sprite.Get(entry).Fill, opacity))
		return
	}

	fw, fh := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	r.drawOp.GeoM.Reset()
	r.drawOp.ColorScale.Reset()
	// Anchor at bottom-centre so the feet line up with the collision box.
	r.drawOp.GeoM.Translate(-fw/2, -fh)
	r.drawOp.GeoM.Scale(cfg.Player.Scaling, cfg.Player.Scaling)
	if player.Facing == cfg.DirectionLeft {
		r.drawOp.GeoM.Scale(-1, 1)
	}
	r.drawOp.GeoM.Translate(x+rect.W/2, y+rect.H)
	r.drawOp.ColorScale.ScaleAlpha(float32(opacity))
	screen.DrawImage(img, &r.drawOp)
}

func cameraView(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return view{
		camX: camera.Position.X,
		camY: camera.Position.Y,
		w:    float64(screen.Bounds().Dx()),
		h:    float64(screen.Bounds().Dy()),
	}, true
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// fade scales a colour's alpha by opacity, keeping it premultiplied.
func fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
