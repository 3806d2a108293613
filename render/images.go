package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Images caches decoded images and sub-images read from the maps file system.
// A missing image is logged once and then drawn as a flat colour.
type Images struct {
	fsys       fs.FS
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	missing    map[string]bool
}

func NewImages(fsys fs.FS) *Images {
	return &Images{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
		missing:    make(map[string]bool),
	}
}

// Clear drops every cached image so edited files are read again.
func (l *Images) Clear() {
	clear(l.cache)
	clear(l.frameCache)
	clear(l.missing)
}

// Image returns the decoded image at path, or nil if it cannot be read.
func (l *Images) Image(path string) *ebiten.Image {
	if path == "" || l.fsys == nil {
		return nil
	}
	if img, ok := l.cache[path]; ok {
		return img
	}
	if l.missing[path] {
		return nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		l.markMissing(path, err)
		return nil
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		l.markMissing(path, err)
		return nil
	}

	l.cache[path] = img
	return img
}

// Tile returns the sub-image of tile id inside ts.
func (l *Images) Tile(ts leveldata.Tileset, id uint32) *ebiten.Image {
	key := fmt.Sprintf("%s#%d", ts.ImagePath, id)
	if img, ok := l.frameCache[key]; ok {
		return img
	}
	sheet := l.Image(ts.ImagePath)
	if sheet == nil {
		return nil
	}
	src := ts.TileRect(id)
	if !src.In(sheet.Bounds()) {
		return nil
	}
	frame := sheet.SubImage(src).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

// PlayerFrame returns frame of the player texture strip, or nil when the
// texture is not shipped next to the maps.
func (l *Images) PlayerFrame(texture cfg.TextureID, frame int) *ebiten.Image {
	key := fmt.Sprintf("player/%s/%d", texture, frame)
	if img, ok := l.frameCache[key]; ok {
		return img
	}
	sheet := l.Image(PlayerTexturePath(texture))
	if sheet == nil {
		return nil
	}
	src := playerFrameRect(sheet.Bounds(), frame)
	img := sheet.SubImage(src).(*ebiten.Image)
	l.frameCache[key] = img
	return img
}

// PlayerTexturePath is where a player texture strip is looked up.
func PlayerTexturePath(texture cfg.TextureID) string {
	return fmt.Sprintf("images/player/%s.png", texture)
}

// playerFrameRect picks frame from a horizontal strip of FrameWidth cells,
// wrapping when the strip is shorter than the animation.
func playerFrameRect(bounds image.Rectangle, frame int) image.Rectangle {
	fw := cfg.Player.FrameWidth
	if fw <= 0 || fw > bounds.Dx() {
		return bounds
	}
	frames := bounds.Dx() / fw
	x := bounds.Min.X + (frame%frames)*fw
	h := min(cfg.Player.FrameHeight, bounds.Dy())
	return image.Rect(x, bounds.Min.Y, x+fw, bounds.Min.Y+h)
}

func (l *Images) markMissing(path string, err error) {
	l.missing[path] = true
	log.Warn("image unavailable, drawing flat colour", "path", path, "err", err)
}
