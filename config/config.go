package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Screen  ScreenConfig  `toml:"screen"`
	Frame   FrameConfig   `toml:"frame"`
	Camera  CameraConfig  `toml:"camera"`
	Overlay OverlayConfig `toml:"overlay"`
	World   WorldConfig   `toml:"world"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

// ScreenConfig holds the logical dimensions game logic sees, in overlay pixels
type ScreenConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type FrameConfig struct {
	FPS int `toml:"fps"`
}

type CameraConfig struct {
	Zoom     float64 `toml:"zoom"`      // cells per world unit, vertically
	MaxNodes int     `toml:"max_nodes"` // 0 = unlimited
}

type OverlayConfig struct {
	CellWidthPx  float64 `toml:"cell_width_px"`
	CellHeightPx float64 `toml:"cell_height_px"`
}

type WorldConfig struct {
	Width        int           `toml:"width"`
	Height       int           `toml:"height"`
	WoodBlocks   int           `toml:"wood_blocks"`
	Enemies      int           `toml:"enemies"`
	Seed         int64         `toml:"seed"` // 0 = time based
	LogExpiry    time.Duration `toml:"log_expiry"`
	FocusDelay   time.Duration `toml:"focus_delay"`
	FocusTween   time.Duration `toml:"focus_tween"`
	FocusTrigger float64       `toml:"focus_trigger"` // distance that starts a camera follow
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = no log output unless -debug
}

// Load reads a TOML file over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// FrameInterval returns the ticker period for the configured FPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Frame.FPS)
}

func (c *Config) validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Frame.FPS <= 0 || c.Frame.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps %d out of range 1-240", c.Frame.FPS))
	}
	if c.Camera.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("camera zoom %v must be positive", c.Camera.Zoom))
	}
	if c.Camera.MaxNodes < 0 {
		errs = append(errs, fmt.Errorf("camera max_nodes %d must not be negative", c.Camera.MaxNodes))
	}
	if c.Overlay.CellWidthPx <= 0 || c.Overlay.CellHeightPx <= 0 {
		errs = append(errs, errors.New("overlay cell size must be positive"))
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size %dx%d must be positive", c.World.Width, c.World.Height))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %v out of range 0-1", c.Audio.Volume))
	}
	return errors.Join(errs...)
}

func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  1000,
			Height: 1000,
		},
		Frame: FrameConfig{
			FPS: 30,
		},
		Camera: CameraConfig{
			Zoom:     1.5,
			MaxNodes: 4096,
		},
		Overlay: OverlayConfig{
			CellWidthPx:  10,
			CellHeightPx: 20,
		},
		World: WorldConfig{
			Width:        200,
			Height:       200,
			WoodBlocks:   50,
			Enemies:      3,
			LogExpiry:    5 * time.Second,
			FocusDelay:   200 * time.Millisecond,
			FocusTween:   600 * time.Millisecond,
			FocusTrigger: 10,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
