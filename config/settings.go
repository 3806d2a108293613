package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// SettingsFileName is looked up in ~/.sigma and in the working directory.
const SettingsFileName = "settings.yaml"

// Settings groups every overridable configuration section.
type Settings struct {
	Game    Config        `yaml:"game"`
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Map     MapConfig     `yaml:"map"`
}

// CurrentSettings snapshots the global configuration.
func CurrentSettings() Settings {
	m := Map
	m.LayerOptions = maps.Clone(Map.LayerOptions)
	return Settings{
		Game:    *C,
		Player:  Player,
		Physics: Physics,
		Map:     m,
	}
}

// Apply replaces the global configuration with s.
func (s Settings) Apply() {
	game := s.Game
	C = &game
	Player = s.Player
	Physics = s.Physics
	Map = s.Map
}

// ParseSettings overlays YAML data on base. Keys missing from data keep the base value.
func ParseSettings(data []byte, base Settings) (Settings, error) {
	s := base
	s.Map.LayerOptions = maps.Clone(base.Map.LayerOptions)
	if err := yaml.Unmarshal(data, &s); err != nil {
		return base, err
	}
	return s, nil
}

// LoadSettings applies YAML overrides to the global configuration.
// Search order: customPath -> ~/.sigma/settings.yaml -> ./settings.yaml -> built-in defaults
func LoadSettings(customPath string) error {
	base := CurrentSettings()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read settings %s: %w", customPath, err)
		}
		s, err := ParseSettings(data, base)
		if err != nil {
			return fmt.Errorf("failed to parse settings %s: %w", customPath, err)
		}
		s.Apply()
		return nil
	}

	for _, path := range []string{userSettingsPath(), SettingsFileName} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		s, err := ParseSettings(data, base)
		if err != nil {
			log.Warn("ignoring malformed settings", "path", path, "err", err)
			continue
		}
		s.Apply()
		log.Info("loaded settings", "path", path)
		return nil
	}
	return nil
}

// userSettingsPath returns the per-user settings file, or empty if home is unavailable.
func userSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sigma", SettingsFileName)
}
