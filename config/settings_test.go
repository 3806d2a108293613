package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSettingsKeepsUnsetValues(t *testing.T) {
	base := CurrentSettings()
	data := []byte(`
player:
  jump_speed: 25
physics:
  gravity: 0.5
map:
  layer_options:
    Lava:
      use_spatial_hash: true
`)

	s, err := ParseSettings(data, base)
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}

	if s.Player.JumpSpeed != 25 {
		t.Errorf("JumpSpeed = %v, want 25", s.Player.JumpSpeed)
	}
	if s.Player.MovementSpeed != base.Player.MovementSpeed {
		t.Errorf("MovementSpeed = %v, want untouched %v", s.Player.MovementSpeed, base.Player.MovementSpeed)
	}
	if s.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, want 0.5", s.Physics.Gravity)
	}
	if s.Game.Width != 1000 || s.Game.Height != 650 {
		t.Errorf("window = %dx%d, want 1000x650", s.Game.Width, s.Game.Height)
	}
	if !s.Map.Options("Lava").UseSpatialHash {
		t.Error("expected Lava layer to be hashed")
	}
	if !s.Map.Options(LayerNamePlatforms).UseSpatialHash {
		t.Error("existing layer options were lost")
	}
	if _, ok := base.Map.LayerOptions["Lava"]; ok {
		t.Error("ParseSettings mutated the base layer options")
	}
}

func TestParseSettingsRejectsBadYAML(t *testing.T) {
	base := CurrentSettings()
	if _, err := ParseSettings([]byte("player: [1, 2"), base); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoadSettingsCustomPath(t *testing.T) {
	saved := CurrentSettings()
	t.Cleanup(saved.Apply)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("game:\n  start_level: 2\n  hot_reload: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadSettings(path); err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if C.StartLevel != 2 || !C.HotReload {
		t.Errorf("got StartLevel=%d HotReload=%v", C.StartLevel, C.HotReload)
	}
	if C.Title != "Platformer" {
		t.Errorf("Title = %q, want default", C.Title)
	}
}

func TestLoadSettingsMissingCustomPath(t *testing.T) {
	if err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing custom settings file")
	}
}

func TestMapConfigHelpers(t *testing.T) {
	if got := Map.Path(2); got != "sigmamap2.tmx" {
		t.Errorf("Path(2) = %q", got)
	}
	if got := Map.GridPixelSize(); got != 51.2 {
		t.Errorf("GridPixelSize = %v, want 51.2", got)
	}
	if Map.Options(LayerNameMovingPlatforms).UseSpatialHash {
		t.Error("moving platforms must not be hashed")
	}
	if Map.Options(LayerNameForeground).UseSpatialHash {
		t.Error("decorative layers default to no hashing")
	}
}
