package config

import "image/color"

// GridConfig describes how grid cells map to world coordinates. World y grows
// upward; OffsetX/OffsetY is the world position of the center of cell (0,0).
type GridConfig struct {
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
}

// CharacterConfig contains per-character movement and footprint values
type CharacterConfig struct {
	HorizontalSpeed float64 `yaml:"horizontal_speed"` // world units per second
	ClimbSpeed      float64 `yaml:"climb_speed"`      // world units per second
	OverlapWidth    float64 `yaml:"overlap_width"`
	OverlapHeight   float64 `yaml:"overlap_height"`
}

// MovementConfig contains values shared by every moving character
type MovementConfig struct {
	FallSpeed float64 `yaml:"fall_speed"`
}

// BurnConfig holds the burn timeline, measured from the moment Burning begins.
type BurnConfig struct {
	BurntAfter      float64 `yaml:"burnt_after"`
	RebuildingAfter float64 `yaml:"rebuilding_after"`
	RestoredAfter   float64 `yaml:"restored_after"`
}

// GuardConfig contains guard AI configuration
type GuardConfig struct {
	RepathInterval  float64 `yaml:"repath_interval"`
	WaypointEpsilon float64 `yaml:"waypoint_epsilon"`
	RespawnDelay    float64 `yaml:"respawn_delay"`
}

// NavConfig controls navmesh construction
type NavConfig struct {
	// RequireFooting only links an empty cell sideways when something below
	// can carry a character (blocker or ladder).
	RequireFooting bool `yaml:"require_footing"`
}

// TreasureConfig contains pickup footprint values
type TreasureConfig struct {
	OverlapWidth  float64 `yaml:"overlap_width"`
	OverlapHeight float64 `yaml:"overlap_height"`
}

// SimulationConfig contains tick and RNG settings
type SimulationConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"`
}

// ViewerConfig contains debug viewer configuration values
type ViewerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`

	ShowPaths bool `yaml:"show_paths"`

	// TransitionDelay is how long the viewer lingers after a death or a
	// completed level before restarting or advancing, in seconds.
	TransitionDelay float64 `yaml:"transition_delay"`

	BackgroundColor color.RGBA            `yaml:"-"`
	KindColors      map[string]color.RGBA `yaml:"-"`
	RunnerColor     color.RGBA            `yaml:"-"`
	GuardColor      color.RGBA            `yaml:"-"`
	TreasureColor   color.RGBA            `yaml:"-"`
	PathColor       color.RGBA            `yaml:"-"`
	OverlayColor    color.RGBA            `yaml:"-"`
}

// BannerConfig controls the announcement banner in the viewer. Durations
// are in seconds.
type BannerConfig struct {
	FadeIn     float32 `yaml:"fade_in"`
	Hold       float32 `yaml:"hold"`
	FadeOut    float32 `yaml:"fade_out"`
	TopMargin  float32 `yaml:"top_margin"`
	BoxPadding float32 `yaml:"box_padding"`

	BoxColor color.RGBA `yaml:"-"`
}

// Global configuration instances
var Grid GridConfig
var Movement MovementConfig
var Runner CharacterConfig
var Guard CharacterConfig
var GuardAI GuardConfig
var Burn BurnConfig
var Nav NavConfig
var Treasure TreasureConfig
var Simulation SimulationConfig
var Viewer ViewerConfig
var Banner BannerConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Brick     = color.RGBA{R: 160, G: 70, B: 40, A: 255}
	Gold      = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray      = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 60, A: 160}
)

func init() {
	Reset()
}

// Reset restores every configuration value to its built-in default.
func Reset() {
	Grid = GridConfig{
		TileWidth:  22,
		TileHeight: 20,
		OffsetX:    11,
		OffsetY:    10,
	}

	Movement = MovementConfig{
		FallSpeed: 20 * 7, // seven tiles a second
	}

	Runner = CharacterConfig{
		HorizontalSpeed: 22 * 5,
		ClimbSpeed:      20 * 5,
		OverlapWidth:    11,
		OverlapHeight:   10,
	}

	Guard = CharacterConfig{
		HorizontalSpeed: 22 * 3.5,
		ClimbSpeed:      20 * 3.5,
		OverlapWidth:    11,
		OverlapHeight:   10,
	}

	GuardAI = GuardConfig{
		RepathInterval:  0.2,
		WaypointEpsilon: 5,
		RespawnDelay:    2,
	}

	Burn = BurnConfig{
		BurntAfter:      0.5,
		RebuildingAfter: 4.5,
		RestoredAfter:   5.0,
	}

	Nav = NavConfig{
		RequireFooting: true,
	}

	Treasure = TreasureConfig{
		OverlapWidth:  11,
		OverlapHeight: 10,
	}

	Simulation = SimulationConfig{
		TickRate: 60,
		Seed:     42,
	}

	Viewer = ViewerConfig{
		Width:           640,
		Height:          360,
		Scale:           1,
		TransitionDelay: 1.5,
		BackgroundColor: Black,
		KindColors: map[string]color.RGBA{
			"blocker": Brick,
			"ladder":  White,
			"rope":    Gray,
		},
		RunnerColor:   LightBlue,
		GuardColor:    Red,
		TreasureColor: Gold,
		PathColor:     Green,
		OverlayColor:  color.RGBA{R: 0, G: 0, B: 0, A: 140},
	}

	Banner = BannerConfig{
		FadeIn:     0.15,
		Hold:       1.2,
		FadeOut:    0.4,
		TopMargin:  24,
		BoxPadding: 8,
		BoxColor:   color.RGBA{R: 0, G: 0, B: 0, A: 180},
	}
}
