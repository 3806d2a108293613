package config

import (
	"fmt"
	"image/color"
)

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// LevelsDir overrides where sigmamap<N>.tmx files are read from.
	// Empty means the executable's directory, then the working directory.
	LevelsDir  string `yaml:"levels_dir"`
	StartLevel int    `yaml:"start_level"`
	HotReload  bool   `yaml:"hot_reload"`
	DebugDraw  bool   `yaml:"debug_draw"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per frame)
	MovementSpeed float64 `yaml:"movement_speed"`
	JumpSpeed     float64 `yaml:"jump_speed"`

	// Spawn coordinate (centre of the sprite, y-up world units)
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`

	// Dimensions
	Scaling         float64 `yaml:"scaling"`
	FrameWidth      int     `yaml:"frame_width"`
	FrameHeight     int     `yaml:"frame_height"`
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	// Animation
	WalkFrames  int `yaml:"walk_frames"`
	ClimbFrames int `yaml:"climb_frames"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	JumpCheckDistance float64 `yaml:"jump_check_distance"` // How far below the feet counts as standing
	DeathThreshold    float64 `yaml:"death_threshold"`     // Falling below this y respawns the player
	MaxStep           float64 `yaml:"max_step"`            // Largest single sweep step in pixels
	LadderSpeed       float64 `yaml:"ladder_speed"`
	SpaceCellSize     int     `yaml:"space_cell_size"` // resolv spatial hash cell size
}

// LayerOptions are per-layer loading hints, keyed by layer name.
type LayerOptions struct {
	UseSpatialHash bool `yaml:"use_spatial_hash"`
}

// MapConfig describes how tile maps are located and scaled
type MapConfig struct {
	TileScaling     float64                 `yaml:"tile_scaling"`
	SpritePixelSize float64                 `yaml:"sprite_pixel_size"`
	PathFormat      string                  `yaml:"path_format"`
	LayerOptions    map[string]LayerOptions `yaml:"layer_options"`
}

// GridPixelSize is the on-screen size of one map cell.
func (m MapConfig) GridPixelSize() float64 {
	return m.SpritePixelSize * m.TileScaling
}

// Path returns the map file name for a level.
func (m MapConfig) Path(level int) string {
	return fmt.Sprintf(m.PathFormat, level)
}

// Options returns the loading hints for a layer; unknown layers get the zero value.
func (m MapConfig) Options(layer string) LayerOptions {
	return m.LayerOptions[layer]
}

// Layer names from the tile maps
const (
	LayerNameMovingPlatforms = "Moving Platforms"
	LayerNamePlatforms       = "Platform"
	LayerNamePlatformsAlt    = "Platforms"
	LayerNameCoins           = "Coins"
	LayerNameForeground      = "Foreground"
	LayerNameBackground      = "Background"
	LayerNameDontTouch       = "Don't Touch"
	LayerNameLadders         = "Ladders"
	LayerNamePlayer          = "Player"
)

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Map MapConfig

// BackgroundColor is used until a map declares its own.
var BackgroundColor = CornflowerBlue

// Shared RGBA color constants
var (
	CornflowerBlue = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	White          = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow   = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightRed       = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	SaddleBrown    = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	DarkGreen      = color.RGBA{R: 30, G: 110, B: 40, A: 255}
	SlateGray      = color.RGBA{R: 112, G: 128, B: 144, A: 200}
	Orange         = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BlackOverlay   = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:      1000,
		Height:     650,
		Title:      "Platformer",
		StartLevel: 1,
	}

	Player = PlayerConfig{
		MovementSpeed: 5,
		JumpSpeed:     20,

		StartX: 64,
		StartY: 300,

		Scaling:         0.5,
		FrameWidth:      96,
		FrameHeight:     128,
		CollisionWidth:  40,
		CollisionHeight: 60,

		WalkFrames:  8,
		ClimbFrames: 2,
	}

	Physics = PhysicsConfig{
		Gravity:           1,
		JumpCheckDistance: 5,
		DeathThreshold:    -100,
		MaxStep:           8,
		LadderSpeed:       5,
		SpaceCellSize:     32,
	}

	Map = MapConfig{
		TileScaling:     0.4,
		SpritePixelSize: 128,
		PathFormat:      "sigmamap%d.tmx",
		LayerOptions: map[string]LayerOptions{
			LayerNamePlatforms:       {UseSpatialHash: true},
			LayerNamePlatformsAlt:    {UseSpatialHash: true},
			LayerNameCoins:           {UseSpatialHash: true},
			LayerNameMovingPlatforms: {UseSpatialHash: false}, // members move every frame
			LayerNameDontTouch:       {UseSpatialHash: true},
			LayerNameLadders:         {UseSpatialHash: true},
		},
	}
}
