// Package config loads the importer's run configuration from an optional TOML
// file overlaid with FIGBRIDGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/phanxgames/figbridge"
)

// Config holds all run configuration.
type Config struct {
	Import     ImportConfig     `toml:"import"`
	Frames     FramesConfig     `toml:"frames"`
	Components ComponentsConfig `toml:"components"`
	Logging    LogConfig        `toml:"logging"`
}

// ImportConfig controls the build itself.
type ImportConfig struct {
	PositionScale     float64 `toml:"position_scale" envconfig:"FIGBRIDGE_POSITION_SCALE"`
	Target            string  `toml:"target" envconfig:"FIGBRIDGE_TARGET"`
	FramesFolder      string  `toml:"frames_folder" envconfig:"FIGBRIDGE_FRAMES_FOLDER"`
	EnforceVisibility bool    `toml:"enforce_visibility" envconfig:"FIGBRIDGE_ENFORCE_VISIBILITY"`
	PostProcess       bool    `toml:"post_process" envconfig:"FIGBRIDGE_POST_PROCESS"`
}

// FramesConfig describes the expected top-level frames.
type FramesConfig struct {
	Width         float64  `toml:"width" envconfig:"FIGBRIDGE_FRAME_WIDTH"`
	Height        float64  `toml:"height" envconfig:"FIGBRIDGE_FRAME_HEIGHT"`
	SizeTolerance float64  `toml:"size_tolerance" envconfig:"FIGBRIDGE_FRAME_SIZE_TOLERANCE"`
	Focus         []string `toml:"focus" envconfig:"FIGBRIDGE_FOCUS_FRAMES"`
	// Background names a prefab placed behind focused frames. Empty disables it.
	Background string `toml:"background" envconfig:"FIGBRIDGE_FRAME_BACKGROUND"`
}

// ComponentsConfig locates the component map and the backplate role.
type ComponentsConfig struct {
	MapPath        string   `toml:"map" envconfig:"FIGBRIDGE_COMPONENT_MAP"`
	BackplateNames []string `toml:"backplates" envconfig:"FIGBRIDGE_BACKPLATES"`
	BackplateDepth float64  `toml:"backplate_depth" envconfig:"FIGBRIDGE_BACKPLATE_DEPTH"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `toml:"level" envconfig:"FIGBRIDGE_LOG_LEVEL"`
	Development bool   `toml:"development" envconfig:"FIGBRIDGE_LOG_DEV"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			PositionScale: figbridge.DefaultPositionScale,
			Target:        "Document",
			FramesFolder:  figbridge.DefaultFramesFolderName,
		},
		Frames: FramesConfig{
			Width:         1440,
			Height:        1024,
			SizeTolerance: 0.01,
		},
		Components: ComponentsConfig{
			BackplateNames: []string{figbridge.DefaultBackplateName},
			BackplateDepth: figbridge.DefaultBackplateDepth,
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}

// Load starts from Default, applies the TOML file at path when path is not
// empty, then applies environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := envconfig.Process("figbridge", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load("")
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate rejects values the builder cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Import.PositionScale <= 0 {
		errs = append(errs, fmt.Errorf("position_scale must be positive, got %g", c.Import.PositionScale))
	}
	if c.Import.Target == "" {
		errs = append(errs, errors.New("target must not be empty"))
	}
	if c.Frames.Width < 0 || c.Frames.Height < 0 {
		errs = append(errs, fmt.Errorf("frame size must not be negative, got %gx%g", c.Frames.Width, c.Frames.Height))
	}
	if c.Frames.SizeTolerance < 0 {
		errs = append(errs, fmt.Errorf("size_tolerance must not be negative, got %g", c.Frames.SizeTolerance))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Engine converts the configuration into the builder's run configuration.
// With no focus names configured every frame starts inactive.
func (c *Config) Engine() figbridge.Config {
	ec := figbridge.DefaultConfig()
	ec.PositionScale = c.Import.PositionScale
	ec.FrameSize = figbridge.Vec2{X: c.Frames.Width, Y: c.Frames.Height}
	ec.SizeTolerance = c.Frames.SizeTolerance
	ec.EnforceVisibility = c.Import.EnforceVisibility
	ec.BackplateNames = append([]string(nil), c.Components.BackplateNames...)
	ec.BackplateDepth = c.Components.BackplateDepth
	if len(c.Frames.Focus) > 0 {
		ec.Focus = figbridge.FocusByName(c.Frames.Focus...)
	} else {
		ec.Focus = figbridge.FocusNone
	}
	return ec
}
