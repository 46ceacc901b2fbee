package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file, overriding $INVOKER_CONFIG")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and FPS display")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagBackend    = flag.String("backend", "", "Window backend: sdl or glfw")
	flagAssets     = flag.String("assets", "", "Asset root directory")
	flagStrict     = flag.Bool("strict", false, "Abort on any texture load failure")
	flagMute       = flag.Bool("mute", false, "Disable sound effects")
	flagNoDialog   = flag.Bool("nodialog", false, "Do not show a dialog on fatal errors")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagBackend != "" {
		cfg.Graphics.Backend = *flagBackend
	}
	if *flagAssets != "" {
		cfg.Assets.Root = *flagAssets
	}
	if *flagStrict {
		cfg.Assets.Strict = true
	}
	if *flagMute {
		cfg.Audio.Muted = true
	}
	if *flagNoDialog {
		cfg.Game.ErrorDialog = false
	}
}
