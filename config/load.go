package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overlay mirrors the global configuration for YAML decoding. Sections and
// keys missing from the document keep their current values.
type overlay struct {
	Grid       GridConfig       `yaml:"grid"`
	Movement   MovementConfig   `yaml:"movement"`
	Runner     CharacterConfig  `yaml:"runner"`
	Guard      CharacterConfig  `yaml:"guard"`
	GuardAI    GuardConfig      `yaml:"guard_ai"`
	Burn       BurnConfig       `yaml:"burn"`
	Nav        NavConfig        `yaml:"nav"`
	Treasure   TreasureConfig   `yaml:"treasure"`
	Simulation SimulationConfig `yaml:"simulation"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Banner     BannerConfig     `yaml:"banner"`
}

// LoadFile overlays the YAML file at path onto the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Apply overlays a YAML document onto the current configuration. Unknown keys
// are rejected. On error the configuration is left untouched.
func Apply(data []byte) error {
	o := overlay{
		Grid:       Grid,
		Movement:   Movement,
		Runner:     Runner,
		Guard:      Guard,
		GuardAI:    GuardAI,
		Burn:       Burn,
		Nav:        Nav,
		Treasure:   Treasure,
		Simulation: Simulation,
		Viewer:     Viewer,
		Banner:     Banner,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := o.validate(); err != nil {
		return err
	}

	Grid = o.Grid
	Movement = o.Movement
	Runner = o.Runner
	Guard = o.Guard
	GuardAI = o.GuardAI
	Burn = o.Burn
	Nav = o.Nav
	Treasure = o.Treasure
	Simulation = o.Simulation
	Viewer = o.Viewer
	Banner = o.Banner
	return nil
}

func (o *overlay) validate() error {
	if o.Grid.TileWidth <= 0 || o.Grid.TileHeight <= 0 {
		return fmt.Errorf("grid: tile size must be positive, got %vx%v", o.Grid.TileWidth, o.Grid.TileHeight)
	}
	if !(o.Burn.BurntAfter <= o.Burn.RebuildingAfter && o.Burn.RebuildingAfter <= o.Burn.RestoredAfter) {
		return fmt.Errorf("burn: timeline must be ascending, got %v/%v/%v", o.Burn.BurntAfter, o.Burn.RebuildingAfter, o.Burn.RestoredAfter)
	}
	if o.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation: tick rate must be positive, got %d", o.Simulation.TickRate)
	}
	if o.Banner.FadeIn < 0 || o.Banner.Hold < 0 || o.Banner.FadeOut < 0 {
		return fmt.Errorf("banner: durations must not be negative")
	}
	return nil
}
