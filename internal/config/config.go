// Package config handles renderer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Camera   CameraConfig   `yaml:"camera"`
	View     ViewConfig     `yaml:"view"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and presentation settings.
type GraphicsConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	MaxWidth int    `yaml:"max_width"` // framebuffer width cap; height follows the aspect ratio
	FPSLimit int    `yaml:"fps_limit"`
	ShowFPS  bool   `yaml:"show_fps"`
	Title    string `yaml:"title"`
}

// TerrainConfig describes the map size and where its images come from.
// Leaving both map paths empty selects the procedural generator.
type TerrainConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	ColorMap  string `yaml:"color_map"`
	HeightMap string `yaml:"height_map"`
	Seed      int64  `yaml:"seed"`
}

// CameraConfig holds the starting pose and motion tuning.
type CameraConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Heading    float64 `yaml:"heading"`
	EyeHeight  float64 `yaml:"eye_height"`
	Speed      float64 `yaml:"speed"`
	TurnGain   float64 `yaml:"turn_gain"`
	TimeScale  float64 `yaml:"time_scale"`
	TurnFactor float64 `yaml:"turn_factor"`
}

// ViewConfig holds projection parameters handed to the rasterizer.
type ViewConfig struct {
	Horizon     float64 `yaml:"horizon"`
	ScaleHeight float64 `yaml:"scale_height"`
	Distance    int     `yaml:"distance"`
	FOV         float64 `yaml:"fov"`
	Background  uint32  `yaml:"background"` // 0xRRGGBB
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference renderer values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    800,
			Height:   600,
			MaxWidth: 800,
			FPSLimit: 60,
			ShowFPS:  true,
			Title:    "voxelspace",
		},
		Terrain: TerrainConfig{
			Width:  1024,
			Height: 1024,
			Seed:   1,
		},
		Camera: CameraConfig{
			X:          512,
			Y:          512,
			EyeHeight:  100,
			Speed:      3,
			TurnGain:   0.1,
			TimeScale:  0.03,
			TurnFactor: 2,
		},
		View: ViewConfig{
			Horizon:     120,
			ScaleHeight: 200,
			Distance:    500,
			FOV:         math.Pi / 2,
			Background:  0x006688,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects settings the renderer cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Graphics.MaxWidth < 0:
		return fmt.Errorf("%w: max_width %d", ErrInvalid, c.Graphics.MaxWidth)
	case c.Terrain.Width <= 0 || c.Terrain.Height <= 0:
		return fmt.Errorf("%w: terrain size %dx%d", ErrInvalid, c.Terrain.Width, c.Terrain.Height)
	case (c.Terrain.ColorMap == "") != (c.Terrain.HeightMap == ""):
		return fmt.Errorf("%w: color_map and height_map must be set together", ErrInvalid)
	case c.View.Distance < 2:
		return fmt.Errorf("%w: distance %d", ErrInvalid, c.View.Distance)
	case c.View.FOV <= 0 || c.View.FOV >= 2*math.Pi:
		return fmt.Errorf("%w: fov %v", ErrInvalid, c.View.FOV)
	case c.View.ScaleHeight <= 0:
		return fmt.Errorf("%w: scale_height %v", ErrInvalid, c.View.ScaleHeight)
	}
	return nil
}
