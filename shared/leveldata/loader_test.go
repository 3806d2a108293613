package leveldata

import (
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/sigmaplatformer/shared/gamemath"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="128" tileheight="128" infinite="0" backgroundcolor="#ff8000" nextlayerid="5" nextobjectid="3">
 <tileset firstgid="1" name="tiles" tilewidth="128" tileheight="128" tilecount="4" columns="2">
  <image source="tiles.png" width="256" height="256"/>
  <tile id="1">
   <properties>
    <property name="change_x" type="float" value="2"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="Background" width="3" height="2">
  <data encoding="csv">
1,0,0,
0,0,0
</data>
 </layer>
 <objectgroup id="2" name="Moving Platforms">
  <object id="1" gid="2" x="128" y="256" width="128" height="128">
   <properties>
    <property name="change_x" type="float" value="3"/>
    <property name="boundary_left" type="float" value="10"/>
    <property name="boundary_right" type="float" value="300"/>
   </properties>
  </object>
 </objectgroup>
 <layer id="3" name="Platform" width="3" height="2">
  <data encoding="csv">
1,0,2,
0,0,1
</data>
 </layer>
 <objectgroup id="4" name="Don't Touch">
  <object id="2" x="0" y="200" width="384" height="56"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"sigmamap1.tmx":  {Data: []byte(testTMX)},
		"sigmamap2.tmx":  {Data: []byte(testTMX)},
		"sigmamap10.tmx": {Data: []byte(testTMX)},
		"notes.txt":      {Data: []byte("not a map")},
		"sigmamapX.tmx":  {Data: []byte(testTMX)},
	}
}

func TestLoadMapKeepsLayerOrder(t *testing.T) {
	m, err := LoadMap(testFS(), "sigmamap1.tmx")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}

	want := []string{"Background", "Moving Platforms", "Platform", "Don't Touch"}
	got := m.LayerNames()
	if len(got) != len(want) {
		t.Fatalf("layers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("layer %d = %q, want %q", i, got[i], want[i])
		}
	}

	if m.Width != 3 || m.Height != 2 || m.TileWidth != 128 || m.TileHeight != 128 {
		t.Errorf("dimensions = %dx%d tiles of %dx%d", m.Width, m.Height, m.TileWidth, m.TileHeight)
	}
}

func TestLoadMapBackgroundColor(t *testing.T) {
	m, err := LoadMap(testFS(), "sigmamap1.tmx")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if m.BackgroundColor == nil {
		t.Fatal("expected a background color")
	}
	bg := *m.BackgroundColor
	if bg.R != 0xff || bg.G != 0x80 || bg.B != 0x00 {
		t.Errorf("background = %+v, want #ff8000", bg)
	}
}

func TestLoadMapTileLayer(t *testing.T) {
	m, err := LoadMap(testFS(), "sigmamap1.tmx")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	platform, ok := m.Layer("Platform")
	if !ok {
		t.Fatal("missing Platform layer")
	}
	if platform.Kind != TileLayer {
		t.Errorf("kind = %v, want tiles", platform.Kind)
	}
	if len(platform.Tiles) != 3 {
		t.Fatalf("got %d tiles, want 3", len(platform.Tiles))
	}

	wantRects := []gamemath.Rect{
		{X: 0, Y: 0, W: 128, H: 128},
		{X: 256, Y: 0, W: 128, H: 128},
		{X: 256, Y: 128, W: 128, H: 128},
	}
	for i, want := range wantRects {
		if platform.Tiles[i].Rect != want {
			t.Errorf("tile %d rect = %+v, want %+v", i, platform.Tiles[i].Rect, want)
		}
		if platform.Tiles[i].Ref.Tileset != 0 {
			t.Errorf("tile %d tileset = %d, want 0", i, platform.Tiles[i].Ref.Tileset)
		}
	}

	if platform.Tiles[1].Ref.ID != 1 || platform.Tiles[1].Motion.ChangeX != 2 {
		t.Errorf("tile 1 = %+v, want id 1 with change_x 2", platform.Tiles[1])
	}
	if platform.Tiles[0].Motion.Moves() {
		t.Error("tile 0 should not move")
	}
}

func TestLoadMapObjectLayers(t *testing.T) {
	m, err := LoadMap(testFS(), "sigmamap1.tmx")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}

	moving, ok := m.Layer("Moving Platforms")
	if !ok || len(moving.Tiles) != 1 {
		t.Fatalf("Moving Platforms = %+v", moving)
	}
	tile := moving.Tiles[0]
	if want := (gamemath.Rect{X: 128, Y: 128, W: 128, H: 128}); tile.Rect != want {
		t.Errorf("tile object rect = %+v, want %+v", tile.Rect, want)
	}
	if tile.Ref.Tileset != 0 || tile.Ref.ID != 1 {
		t.Errorf("tile object ref = %+v", tile.Ref)
	}
	motion := tile.Motion
	if motion.ChangeX != 3 {
		t.Errorf("change_x = %v, want the object override 3", motion.ChangeX)
	}
	if !motion.HasLeft || motion.BoundaryLeft != 10 || !motion.HasRight || motion.BoundaryRight != 300 {
		t.Errorf("boundaries = %+v", motion)
	}
	if motion.HasTop || motion.HasBottom {
		t.Errorf("unexpected vertical boundaries: %+v", motion)
	}

	hazards, ok := m.Layer("Don't Touch")
	if !ok || len(hazards.Tiles) != 1 {
		t.Fatalf("Don't Touch = %+v", hazards)
	}
	if hazards.Tiles[0].Ref.Tileset != -1 {
		t.Errorf("rectangle object should have no tileset, got %d", hazards.Tiles[0].Ref.Tileset)
	}
	if want := (gamemath.Rect{X: 0, Y: 200, W: 384, H: 56}); hazards.Tiles[0].Rect != want {
		t.Errorf("hazard rect = %+v, want %+v", hazards.Tiles[0].Rect, want)
	}
}

func TestLoadMapTilesets(t *testing.T) {
	m, err := LoadMap(testFS(), "sigmamap1.tmx")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if len(m.Tilesets) != 1 {
		t.Fatalf("got %d tilesets, want 1", len(m.Tilesets))
	}
	ts := m.Tilesets[0]
	if !strings.HasSuffix(ts.ImagePath, "tiles.png") {
		t.Errorf("image path = %q", ts.ImagePath)
	}
	if ts.Columns != 2 || ts.TileWidth != 128 {
		t.Errorf("tileset = %+v", ts)
	}
	if r := ts.TileRect(3); r.Min.X != 128 || r.Min.Y != 128 || r.Dx() != 128 {
		t.Errorf("TileRect(3) = %v", r)
	}
}

func TestLoadMapMissingFile(t *testing.T) {
	if _, err := LoadMap(testFS(), "sigmamap99.tmx"); err == nil {
		t.Fatal("expected an error for a missing map")
	}
}

func TestWorldRectFlipsAndScales(t *testing.T) {
	m := &Map{Width: 3, Height: 2, TileWidth: 128, TileHeight: 128}
	got := m.WorldRect(gamemath.Rect{X: 128, Y: 0, W: 128, H: 128}, 0.5)
	want := gamemath.Rect{X: 64, Y: 64, W: 64, H: 64}
	if got != want {
		t.Errorf("WorldRect = %+v, want %+v", got, want)
	}
	if end := m.EndOfMap(51.2); math.Abs(end-153.6) > 1e-9 {
		t.Errorf("EndOfMap = %v", end)
	}
}

func TestListLevels(t *testing.T) {
	levels, err := ListLevels(testFS())
	if err != nil {
		t.Fatalf("ListLevels: %v", err)
	}
	want := []int{1, 2, 10}
	if len(levels) != len(want) {
		t.Fatalf("levels = %v, want %v", levels, want)
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("levels[%d] = %d, want %d", i, levels[i], want[i])
		}
	}
	if got := MapPath("sigmamap%d.tmx", 3); got != "sigmamap3.tmx" {
		t.Errorf("MapPath = %q", got)
	}
}
