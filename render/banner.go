package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/sigmaplatformer/components"
	"github.com/automoto/sigmaplatformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BannerFrames is how long the level banner stays up after a load.
const BannerFrames = 120

// Banner shows "Level N" for a short time after every level load.
type Banner struct {
	loads  int
	level  int
	frames int
}

// Update watches the session load counter.
func (b *Banner) Update(w donburi.World) {
	entry, ok := components.Session.First(w)
	if !ok {
		return
	}
	session := components.Session.Get(entry)
	if session.LevelLoads != b.loads {
		b.loads = session.LevelLoads
		b.level = session.Level
		b.frames = BannerFrames
		return
	}
	if b.frames > 0 {
		b.frames--
	}
}

// Showing reports whether the banner is on screen.
func (b *Banner) Showing() bool {
	return b.frames > 0
}

// Text is the banner caption.
func (b *Banner) Text() string {
	return fmt.Sprintf("Level %d", b.level)
}

// alpha fades the banner out over its last quarter.
func (b *Banner) alpha() float64 {
	fade := BannerFrames / 4
	if b.frames >= fade {
		return 1
	}
	return float64(b.frames) / float64(fade)
}

func (b *Banner) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	if !b.Showing() || !fonts.Loaded(fonts.Banner) {
		return
	}
	face := fonts.Banner.Get()
	caption := b.Text()

	bounds := text.BoundString(face, caption) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy() / 3

	a := b.alpha()
	shadow := color.RGBA{A: uint8(180 * a)}
	fg := color.RGBA{R: uint8(255 * a), G: uint8(255 * a), B: uint8(255 * a), A: uint8(255 * a)}
	text.Draw(screen, caption, face, x+2, y+2, shadow) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, caption, face, x, y, fg)         //nolint:staticcheck // TODO: migrate to text/v2
}
