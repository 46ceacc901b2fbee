package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/invoker/internal/engine/lighting"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Backend != BackendSDL {
		t.Errorf("expected sdl backend, got %s", cfg.Graphics.Backend)
	}
	if cfg.Graphics.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Graphics.FOV)
	}
	if cfg.Scene.OrbitRadius != 1.25 {
		t.Errorf("expected orbit radius 1.25, got %f", cfg.Scene.OrbitRadius)
	}
	if cfg.Controls.MoveSpeed != 2.5 || cfg.Controls.BoostSpeed != 10 {
		t.Errorf("unexpected move speeds %f/%f", cfg.Controls.MoveSpeed, cfg.Controls.BoostSpeed)
	}
	if cfg.Assets.Root != "assets" {
		t.Errorf("expected assets root 'assets', got %s", cfg.Assets.Root)
	}
	if cfg.Assets.Strict {
		t.Error("expected strict to be false by default")
	}
	if !cfg.Game.ErrorDialog {
		t.Error("expected error dialog enabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Graphics.Backend = "vulkan" }},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative height", func(c *Config) { c.Graphics.Height = -1 }},
		{"fov too wide", func(c *Config) { c.Graphics.FOV = 90 }},
		{"radius below range", func(c *Config) { c.Scene.OrbitRadius = lighting.MinOrbitRadius - 0.5 }},
		{"radius above range", func(c *Config) { c.Scene.OrbitRadius = lighting.MaxOrbitRadius + 1 }},
		{"zero move speed", func(c *Config) { c.Controls.MoveSpeed = 0 }},
		{"empty assets root", func(c *Config) { c.Assets.Root = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidateOrbitLimitsInclusive(t *testing.T) {
	for _, r := range []float32{lighting.MinOrbitRadius, lighting.MaxOrbitRadius} {
		cfg := Default()
		cfg.Scene.OrbitRadius = r
		if err := cfg.Validate(); err != nil {
			t.Errorf("radius %v rejected: %v", r, err)
		}
	}
	if Default().Scene.OrbitRadius != lighting.DefaultOrbitRadius {
		t.Errorf("default radius = %v", Default().Scene.OrbitRadius)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  backend: glfw

audio:
  enabled: false
  sfx_volume: 0.5

assets:
  root: /opt/invoker/assets
  shader_dir: shaders
  strict: true

scene:
  orbit_radius: 4

logging:
  level: "debug"
  log_file: "invoker.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := decodeFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.Backend != BackendGLFW {
		t.Errorf("expected glfw backend, got %s", cfg.Graphics.Backend)
	}
	if cfg.Audio.Enabled {
		t.Error("expected audio disabled")
	}
	if cfg.Audio.SFXVolume != 0.5 {
		t.Errorf("expected sfx volume 0.5, got %f", cfg.Audio.SFXVolume)
	}
	// Unset keys keep their defaults.
	if cfg.Audio.MasterVolume != 0.8 {
		t.Errorf("expected master volume default 0.8, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Assets.Root != "/opt/invoker/assets" || cfg.Assets.ShaderDir != "shaders" || !cfg.Assets.Strict {
		t.Errorf("unexpected assets config %+v", cfg.Assets)
	}
	if cfg.Scene.OrbitRadius != 4 {
		t.Errorf("expected orbit radius 4, got %f", cfg.Scene.OrbitRadius)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "invoker.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := decodeFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := decodeFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Fatal("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestLookupOrder(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)
	t.Setenv(EnvConfig, "")
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	write := func(path string) string {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("graphics:\n  width: 1024\n"), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if src, err := lookup(); err != nil || src.path != "" {
		t.Fatalf("lookup() = %+v, %v, want nothing found", src, err)
	}

	user := write(filepath.Join(ConfigDir(), "config.yaml"))
	if src, _ := lookup(); src.path != user || src.origin != "user" {
		t.Errorf("lookup() = %+v, want user config", src)
	}

	write(LocalConfigFile)
	if src, _ := lookup(); src.origin != "local" {
		t.Errorf("lookup() = %+v, want local config over user config", src)
	}

	env := write(filepath.Join(tmpDir, "env.yaml"))
	t.Setenv(EnvConfig, env)
	if src, _ := lookup(); src.path != env || src.origin != "env" {
		t.Errorf("lookup() = %+v, want env config", src)
	}

	t.Setenv(EnvConfig, filepath.Join(tmpDir, "missing.yaml"))
	if _, err := lookup(); err == nil {
		t.Error("missing env config should be an error")
	}
}

func TestDecodeFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(path, []byte("graphics:\n  widht: 1024\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := decodeFile(Default(), path); err == nil {
		t.Error("misspelled key accepted")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := decodeFile(Default(), empty); err != nil {
		t.Errorf("empty file rejected: %v", err)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Game.ShowFPS {
					t.Error("expected show_fps with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name:  "backend and assets flags",
			setup: func() { *flagBackend = "glfw"; *flagAssets = "/data/assets" },
			verify: func(cfg *Config) {
				if cfg.Graphics.Backend != "glfw" {
					t.Errorf("expected glfw backend, got %s", cfg.Graphics.Backend)
				}
				if cfg.Assets.Root != "/data/assets" {
					t.Errorf("expected assets root override, got %s", cfg.Assets.Root)
				}
			},
			teardown: func() { *flagBackend = ""; *flagAssets = "" },
		},
		{
			name:  "strict mute nodialog",
			setup: func() { *flagStrict = true; *flagMute = true; *flagNoDialog = true },
			verify: func(cfg *Config) {
				if !cfg.Assets.Strict || !cfg.Audio.Muted || cfg.Game.ErrorDialog {
					t.Errorf("flags not applied: assets=%+v audio=%+v game=%+v", cfg.Assets, cfg.Audio, cfg.Game)
				}
			},
			teardown: func() { *flagStrict = false; *flagMute = false; *flagNoDialog = false },
		},
		{
			name:  "width and height flags",
			setup: func() { *flagWidth = 2560; *flagHeight = 1440 },
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() { *flagWidth = 0; *flagHeight = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  orbit_radius: 20\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Backend = BackendGLFW
	cfg.Scene.OrbitRadius = 3
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := decodeFile(loaded, path); err != nil {
		t.Fatalf("decodeFile: %v", err)
	}
	if loaded.Graphics.Backend != BackendGLFW || loaded.Scene.OrbitRadius != 3 {
		t.Errorf("saved values not restored: %+v %+v", loaded.Graphics, loaded.Scene)
	}
}
