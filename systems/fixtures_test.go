package systems

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/physics"
	"github.com/yohamta/donburi"
)

// Test maps are 40x10 tiles of 128px. With the default 0.4 scaling one cell
// is 51.2 world units, the floor (bottom row) tops out at y=51.2 and the map
// ends at x=2048.
const (
	mapCols  = 40
	mapRows  = 10
	floorTop = 51.2
	mapEnd   = 2048.0
)

type cell struct{ col, row int }

func tileLayer(name string, cells ...cell) string {
	grid := make([][]string, mapRows)
	for r := range grid {
		grid[r] = make([]string, mapCols)
		for c := range grid[r] {
			grid[r][c] = "0"
		}
	}
	for _, c := range cells {
		grid[c.row][c.col] = "1"
	}
	rows := make([]string, mapRows)
	for r := range grid {
		rows[r] = strings.Join(grid[r], ",")
	}
	return fmt.Sprintf(`<layer name=%q width="%d" height="%d"><data encoding="csv">%s</data></layer>`,
		name, mapCols, mapRows, strings.Join(rows, ",\n"))
}

func floorRow() []cell {
	cells := make([]cell, mapCols)
	for c := range cells {
		cells[c] = cell{col: c, row: mapRows - 1}
	}
	return cells
}

func buildTMX(attrs string, layers ...string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="%d" height="%d" tilewidth="128" tileheight="128" infinite="0"%s>
 <tileset firstgid="1" name="tiles" tilewidth="128" tileheight="128" tilecount="1" columns="1">
  <image source="tiles.png" width="128" height="128"/>
 </tileset>
 %s
</map>
`, mapCols, mapRows, attrs, strings.Join(layers, "\n "))
}

func testMaps() fstest.MapFS {
	level1 := buildTMX(` backgroundcolor="#112233"`,
		tileLayer(cfg.LayerNameBackground, cell{0, 0}),
		tileLayer(cfg.LayerNamePlatforms, floorRow()...),
		tileLayer(cfg.LayerNameCoins, cell{10, 8}),
		tileLayer(cfg.LayerNameForeground, cell{5, 0}),
		`<objectgroup name="Don't Touch"><object id="1" x="2560" y="1024" width="256" height="128"/></objectgroup>`,
	)

	level2 := buildTMX("",
		tileLayer(cfg.LayerNamePlatformsAlt, floorRow()...),
		`<objectgroup name="Moving Platforms">
  <object id="1" gid="1" x="1536" y="896" width="128" height="128">
   <properties>
    <property name="change_x" type="float" value="2"/>
    <property name="boundary_left" type="float" value="1400"/>
    <property name="boundary_right" type="float" value="2200"/>
   </properties>
  </object>
 </objectgroup>`,
	)

	level5 := buildTMX("",
		tileLayer(cfg.LayerNamePlatforms, floorRow()...),
		tileLayer(cfg.LayerNameLadders, cell{20, 5}, cell{20, 6}, cell{20, 7}, cell{20, 8}),
	)

	return fstest.MapFS{
		"sigmamap1.tmx": {Data: []byte(level1)},
		"sigmamap2.tmx": {Data: []byte(level2)},
		"sigmamap5.tmx": {Data: []byte(level5)},
	}
}

func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	if err := StartGame(w, testMaps()); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	return w
}

func mustLevel(t *testing.T, w donburi.World) *components.LevelData {
	t.Helper()
	level, ok := levelData(w)
	if !ok {
		t.Fatal("no level loaded")
	}
	return level
}

func mustSession(t *testing.T, w donburi.World) *components.SessionData {
	t.Helper()
	session, ok := sessionData(w)
	if !ok {
		t.Fatal("no session")
	}
	return session
}

func mustPlayer(t *testing.T, w donburi.World) (*components.PlayerData, *physics.Body) {
	t.Helper()
	entry, body, ok := playerState(w)
	if !ok {
		t.Fatal("no player")
	}
	return components.Player.Get(entry), body
}

func mustUpdate(t *testing.T, w donburi.World) {
	t.Helper()
	if err := UpdateGame(w); err != nil {
		t.Fatalf("UpdateGame: %v", err)
	}
}

// settle runs frames until the player rests on something.
func settle(t *testing.T, w donburi.World) {
	t.Helper()
	level := mustLevel(t, w)
	_, body := mustPlayer(t, w)
	for i := 0; i < 120; i++ {
		mustUpdate(t, w)
		if level.Engine.CanJump() && body.ChangeY == 0 {
			return
		}
	}
	t.Fatal("player never came to rest")
}

func assertAtSpawn(t *testing.T, body *physics.Body) {
	t.Helper()
	if x, y := body.Center(); x != cfg.Player.StartX || y != cfg.Player.StartY {
		t.Errorf("player at (%v, %v), want spawn (%v, %v)", x, y, cfg.Player.StartX, cfg.Player.StartY)
	}
	if body.ChangeX != 0 || body.ChangeY != 0 {
		t.Errorf("velocity = (%v, %v), want (0, 0)", body.ChangeX, body.ChangeY)
	}
}

func withSettings(t *testing.T, mutate func()) {
	t.Helper()
	saved := cfg.CurrentSettings()
	t.Cleanup(saved.Apply)
	mutate()
}
