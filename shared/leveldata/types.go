// Package leveldata provides TMX level parsing for the game and the validate
// command. It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import (
	"image"
	"image/color"

	"github.com/automoto/sigmaplatformer/shared/gamemath"
)

// LayerKind distinguishes tile layers from object groups.
type LayerKind int

const (
	TileLayer LayerKind = iota
	ObjectLayer
)

func (k LayerKind) String() string {
	if k == ObjectLayer {
		return "objects"
	}
	return "tiles"
}

// Map holds everything the game needs from one TMX file.
type Map struct {
	Name            string
	Width           int // in tiles
	Height          int // in tiles
	TileWidth       int
	TileHeight      int
	BackgroundColor *color.RGBA
	Layers          []Layer // declaration order
	Tilesets        []Tileset
}

// Layer is a named collection of tiles sharing a rendering/collision role.
type Layer struct {
	Name    string
	Kind    LayerKind
	Visible bool
	Opacity float64
	Tiles   []Tile
}

// Tile is one placed tile. Rect is in map pixels, y-down, as Tiled stores it.
type Tile struct {
	Rect   gamemath.Rect
	Ref    TileRef
	Motion Motion
}

// TileRef points at the image for a tile. Tileset is -1 when the tile has no image.
type TileRef struct {
	Tileset int
	ID      uint32
	FlipH   bool
	FlipV   bool
}

// Motion is the scripted movement read from change_x/change_y/boundary_* properties.
// Velocities are pixels per frame; boundaries are unscaled y-up world values.
type Motion struct {
	ChangeX, ChangeY float64

	BoundaryLeft, BoundaryRight float64
	BoundaryTop, BoundaryBottom float64

	HasLeft, HasRight, HasTop, HasBottom bool
}

// Moves reports whether any velocity is set.
func (m Motion) Moves() bool {
	return m.ChangeX != 0 || m.ChangeY != 0
}

// Tileset describes a single-image tileset.
type Tileset struct {
	Name       string
	ImagePath  string // relative to the filesystem the map was loaded from, empty if none
	TileWidth  int
	TileHeight int
	Columns    int
	Spacing    int
	Margin     int
}

// TileRect returns the source rectangle of a tile inside the tileset image.
func (ts Tileset) TileRect(id uint32) image.Rectangle {
	cols := ts.Columns
	if cols <= 0 {
		cols = 1
	}
	col := int(id) % cols
	row := int(id) / cols
	x := ts.Margin + col*(ts.TileWidth+ts.Spacing)
	y := ts.Margin + row*(ts.TileHeight+ts.Spacing)
	return image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight)
}

// Layer returns the first layer with the given name.
func (m *Map) Layer(name string) (*Layer, bool) {
	for i := range m.Layers {
		if m.Layers[i].Name == name {
			return &m.Layers[i], true
		}
	}
	return nil, false
}

// LayerNames lists the layer names in declaration order.
func (m *Map) LayerNames() []string {
	names := make([]string, len(m.Layers))
	for i, l := range m.Layers {
		names[i] = l.Name
	}
	return names
}

// PixelHeight is the map height in unscaled pixels.
func (m *Map) PixelHeight() float64 {
	return float64(m.Height * m.TileHeight)
}

// WorldRect converts a map rectangle (y-down) to y-up world units scaled by scale.
func (m *Map) WorldRect(r gamemath.Rect, scale float64) gamemath.Rect {
	return gamemath.Rect{
		X: r.X * scale,
		Y: (m.PixelHeight() - r.Y - r.H) * scale,
		W: r.W * scale,
		H: r.H * scale,
	}
}

// EndOfMap is the right edge of the map for a given on-screen cell size.
func (m *Map) EndOfMap(gridPixelSize float64) float64 {
	return float64(m.Width) * gridPixelSize
}
