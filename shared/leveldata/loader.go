package leveldata

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/automoto/sigmaplatformer/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Custom properties read from tiles and objects to script platform movement.
const (
	PropChangeX        = "change_x"
	PropChangeY        = "change_y"
	PropBoundaryLeft   = "boundary_left"
	PropBoundaryRight  = "boundary_right"
	PropBoundaryTop    = "boundary_top"
	PropBoundaryBottom = "boundary_bottom"
)

// LoadMap parses a TMX file. It takes an fs.FS so callers can pass os.DirFS
// (the game) or fstest.MapFS (tests).
func LoadMap(fsys fs.FS, tmxPath string) (*Map, error) {
	raw, err := fs.ReadFile(fsys, tmxPath)
	if err != nil {
		return nil, fmt.Errorf("read TMX %s: %w", tmxPath, err)
	}
	order, err := scanLayerOrder(raw)
	if err != nil {
		return nil, fmt.Errorf("scan TMX %s: %w", tmxPath, err)
	}

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	m := &Map{
		Name:       tmxPath,
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	if levelMap.BackgroundColor != nil {
		bg := color.RGBAModel.Convert(levelMap.BackgroundColor).(color.RGBA)
		m.BackgroundColor = &bg
	}

	for _, ts := range levelMap.Tilesets {
		m.Tilesets = append(m.Tilesets, convertTileset(ts))
	}

	// go-tiled splits tile layers and object groups into separate slices, each
	// in file order. Walk the scanned order to interleave them again.
	var nextLayer, nextGroup int
	for _, kind := range order {
		switch kind {
		case TileLayer:
			if nextLayer >= len(levelMap.Layers) {
				continue
			}
			m.Layers = append(m.Layers, convertTileLayer(levelMap, levelMap.Layers[nextLayer]))
			nextLayer++
		case ObjectLayer:
			if nextGroup >= len(levelMap.ObjectGroups) {
				continue
			}
			m.Layers = append(m.Layers, convertObjectGroup(levelMap, levelMap.ObjectGroups[nextGroup]))
			nextGroup++
		}
	}

	return m, nil
}

// scanLayerOrder returns the kinds of the map's top-level layers in file order.
func scanLayerOrder(raw []byte) ([]LayerKind, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	var order []LayerKind
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return order, nil
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 {
				continue
			}
			switch t.Name.Local {
			case "layer":
				order = append(order, TileLayer)
			case "objectgroup":
				order = append(order, ObjectLayer)
			}
		case xml.EndElement:
			depth--
		}
	}
}

func convertTileset(ts *tiled.Tileset) Tileset {
	out := Tileset{
		Name:       ts.Name,
		TileWidth:  ts.TileWidth,
		TileHeight: ts.TileHeight,
		Columns:    ts.Columns,
		Spacing:    ts.Spacing,
		Margin:     ts.Margin,
	}
	if ts.Image != nil && ts.Image.Source != "" {
		out.ImagePath = path.Clean(ts.GetFileFullPath(ts.Image.Source))
	}
	return out
}

func convertTileLayer(levelMap *tiled.Map, layer *tiled.Layer) Layer {
	out := Layer{
		Name:    layer.Name,
		Kind:    TileLayer,
		Visible: layer.Visible,
		Opacity: float64(layer.Opacity),
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			idx := y*levelMap.Width + x
			if idx >= len(layer.Tiles) {
				break
			}
			tile := layer.Tiles[idx]
			if tile.IsNil() {
				continue
			}

			var motion Motion
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				motion = readMotion(tilesetTile.Properties)
			}

			out.Tiles = append(out.Tiles, Tile{
				Rect:   gamemath.Rect{X: float64(x) * tileW, Y: float64(y) * tileH, W: tileW, H: tileH},
				Ref:    tileRef(levelMap, tile),
				Motion: motion,
			})
		}
	}
	return out
}

func convertObjectGroup(levelMap *tiled.Map, og *tiled.ObjectGroup) Layer {
	out := Layer{
		Name:    og.Name,
		Kind:    ObjectLayer,
		Visible: og.Visible,
		Opacity: float64(og.Opacity),
	}

	for _, o := range og.Objects {
		rect := gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
		ref := TileRef{Tileset: -1}
		var motion Motion

		if o.GID != 0 {
			if tile, err := levelMap.TileGIDToTile(o.GID); err == nil {
				ref = tileRef(levelMap, tile)
				if rect.W == 0 || rect.H == 0 {
					rect.W = float64(tile.Tileset.TileWidth)
					rect.H = float64(tile.Tileset.TileHeight)
				}
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					motion = readMotion(tilesetTile.Properties)
				}
			}
			// Tile objects are anchored at their bottom-left corner.
			rect.Y -= rect.H
		}

		// Object properties win over the tileset defaults.
		motion = mergeMotion(motion, readMotion(o.Properties))

		out.Tiles = append(out.Tiles, Tile{Rect: rect, Ref: ref, Motion: motion})
	}
	return out
}

func tileRef(levelMap *tiled.Map, tile *tiled.LayerTile) TileRef {
	ref := TileRef{
		Tileset: -1,
		ID:      tile.ID,
		FlipH:   tile.HorizontalFlip,
		FlipV:   tile.VerticalFlip,
	}
	for i, ts := range levelMap.Tilesets {
		if ts == tile.Tileset {
			ref.Tileset = i
			break
		}
	}
	return ref
}

func readMotion(props tiled.Properties) Motion {
	var m Motion
	for _, p := range props {
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		switch p.Name {
		case PropChangeX:
			m.ChangeX = v
		case PropChangeY:
			m.ChangeY = v
		case PropBoundaryLeft:
			m.BoundaryLeft, m.HasLeft = v, true
		case PropBoundaryRight:
			m.BoundaryRight, m.HasRight = v, true
		case PropBoundaryTop:
			m.BoundaryTop, m.HasTop = v, true
		case PropBoundaryBottom:
			m.BoundaryBottom, m.HasBottom = v, true
		}
	}
	return m
}

func mergeMotion(base, over Motion) Motion {
	if over.ChangeX != 0 {
		base.ChangeX = over.ChangeX
	}
	if over.ChangeY != 0 {
		base.ChangeY = over.ChangeY
	}
	if over.HasLeft {
		base.BoundaryLeft, base.HasLeft = over.BoundaryLeft, true
	}
	if over.HasRight {
		base.BoundaryRight, base.HasRight = over.BoundaryRight, true
	}
	if over.HasTop {
		base.BoundaryTop, base.HasTop = over.BoundaryTop, true
	}
	if over.HasBottom {
		base.BoundaryBottom, base.HasBottom = over.BoundaryBottom, true
	}
	return base
}

// MapPath builds the map file name for a level from a format such as "sigmamap%d.tmx".
func MapPath(format string, level int) string {
	return fmt.Sprintf(format, level)
}

var levelFilePattern = regexp.MustCompile(`^sigmamap(\d+)\.tmx$`)

// ListLevels returns the level numbers of every sigmamap<N>.tmx at the root of fsys, sorted.
func ListLevels(fsys fs.FS) ([]int, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var levels []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := levelFilePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		levels = append(levels, n)
	}
	sort.Ints(levels)
	return levels, nil
}
