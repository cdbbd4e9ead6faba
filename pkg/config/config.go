package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Window contains the viewer window settings.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Race contains race replay playback settings.
type Race struct {
	DurationMs   int     `toml:"duration_ms"`
	LaneStep     float64 `toml:"lane_step"`
	VisibleRatio float64 `toml:"visible_ratio"`
}

// Points contains season progression playback settings.
type Points struct {
	DurationMs   int     `toml:"duration_ms"`
	VisibleRatio float64 `toml:"visible_ratio"`
}

// Display contains presentation settings owned by the caller, including
// the authenticated-display photo rule.
type Display struct {
	ShowPhotos bool   `toml:"show_photos"`
	AvatarDir  string `toml:"avatar_dir"`
}

// Config is the viewer configuration.
type Config struct {
	Window  Window  `toml:"window"`
	Race    Race    `toml:"race"`
	Points  Points  `toml:"points"`
	Display Display `toml:"display"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:  Window{Width: 1024, Height: 640, Title: "gridreplay"},
		Race:    Race{DurationMs: 8000, LaneStep: 0.05, VisibleRatio: 0.3},
		Points:  Points{DurationMs: 6000, VisibleRatio: 0.3},
		Display: Display{ShowPhotos: false, AvatarDir: "assets/avatars"},
	}
}

// Load reads a TOML config file over the defaults. A missing file is
// not an error: the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window dimensions must be positive")
	}
	if c.Race.DurationMs <= 0 || c.Points.DurationMs <= 0 {
		return errors.New("playback durations must be positive")
	}
	if c.Race.LaneStep <= 0 {
		return errors.New("race lane_step must be positive")
	}
	if c.Race.VisibleRatio <= 0 || c.Race.VisibleRatio > 1 {
		return errors.New("race visible_ratio must be in (0, 1]")
	}
	if c.Points.VisibleRatio <= 0 || c.Points.VisibleRatio > 1 {
		return errors.New("points visible_ratio must be in (0, 1]")
	}
	return nil
}

// Sample returns the embedded sample configuration text.
func Sample() string {
	return sampleConfig
}

// WriteSample writes the sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}
