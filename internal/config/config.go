// Package config handles loading and validating demo settings.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/invoker/internal/engine/lighting"
)

// Supported window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Assets   AssetsConfig   `yaml:"assets"`
	Controls ControlsConfig `yaml:"controls"`
	Scene    SceneConfig    `yaml:"scene"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	Backend    string  `yaml:"backend"` // "sdl" or "glfw"
	FOV        float32 `yaml:"fov"`     // initial vertical field of view, degrees
}

// AudioConfig holds sound effect settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// AssetsConfig controls where scene files are read from.
type AssetsConfig struct {
	Root      string `yaml:"root"`
	ShaderDir string `yaml:"shader_dir"` // empty: use embedded shaders
	Strict    bool   `yaml:"strict"`     // texture failures abort startup
}

// ControlsConfig holds camera control tuning.
type ControlsConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"`
	BoostSpeed       float32 `yaml:"boost_speed"`
}

// SceneConfig holds initial scene state.
type SceneConfig struct {
	OrbitRadius float32 `yaml:"orbit_radius"`
}

// GameConfig holds presentation toggles.
type GameConfig struct {
	ShowFPS     bool `yaml:"show_fps"`
	ErrorDialog bool `yaml:"error_dialog"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the reference scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:   800,
			Height:  600,
			VSync:   true,
			Backend: BackendSDL,
			FOV:     45,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			SFXVolume:    0.8,
		},
		Assets: AssetsConfig{
			Root: "assets",
		},
		Controls: ControlsConfig{
			MouseSensitivity: 0.1,
			MoveSpeed:        2.5,
			BoostSpeed:       10,
		},
		Scene: SceneConfig{
			OrbitRadius: lighting.DefaultOrbitRadius,
		},
		Game: GameConfig{
			ErrorDialog: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks settings that would otherwise surface as obscure GL or scene errors.
func (c *Config) Validate() error {
	switch c.Graphics.Backend {
	case BackendSDL, BackendGLFW:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Graphics.Backend)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FOV < 1 || c.Graphics.FOV > 45 {
		return fmt.Errorf("%w: fov %.1f outside [1,45]", ErrInvalidConfig, c.Graphics.FOV)
	}
	if c.Scene.OrbitRadius < lighting.MinOrbitRadius || c.Scene.OrbitRadius > lighting.MaxOrbitRadius {
		return fmt.Errorf("%w: orbit radius %.2f outside [%g,%g]", ErrInvalidConfig,
			c.Scene.OrbitRadius, lighting.MinOrbitRadius, lighting.MaxOrbitRadius)
	}
	if c.Controls.MoveSpeed <= 0 || c.Controls.BoostSpeed <= 0 {
		return fmt.Errorf("%w: move speeds must be positive", ErrInvalidConfig)
	}
	if c.Assets.Root == "" {
		return fmt.Errorf("%w: empty assets root", ErrInvalidConfig)
	}
	return nil
}
