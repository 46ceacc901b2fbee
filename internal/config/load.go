package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable that may hold a config file path.
const EnvConfig = "INVOKER_CONFIG"

// LocalConfigFile is the config file looked up in the working directory.
const LocalConfigFile = "invoker.yaml"

// source is one place a config file may come from.
type source struct {
	origin   string
	path     string
	explicit bool
}

// Load builds the config in layers: defaults, then the first file found by
// lookup, then command-line flags. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	src, err := lookup()
	if err != nil {
		return nil, err
	}
	if src.path != "" {
		if err := decodeFile(cfg, src.path); err != nil {
			return nil, fmt.Errorf("%s config %s: %w", src.origin, src.path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// lookup returns the first config file of: the -config flag, $INVOKER_CONFIG,
// ./invoker.yaml and the user config directory. Paths named explicitly must
// exist; the searched locations are optional.
func lookup() (source, error) {
	sources := []source{
		{origin: "flag", path: ConfigPath(), explicit: true},
		{origin: "env", path: os.Getenv(EnvConfig), explicit: true},
		{origin: "local", path: LocalConfigFile},
		{origin: "user", path: filepath.Join(ConfigDir(), "config.yaml")},
	}
	for _, s := range sources {
		if s.path == "" {
			continue
		}
		info, err := os.Stat(s.path)
		if err == nil && info.Mode().IsRegular() {
			return s, nil
		}
		if s.explicit {
			if err == nil {
				err = errors.New("not a regular file")
			}
			return source{}, fmt.Errorf("%s config %s: %w", s.origin, s.path, err)
		}
	}
	return source{}, nil
}

// ConfigDir returns the per-user config directory, or the working directory
// when the platform reports none.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		if base, err = os.Getwd(); err != nil {
			base = os.TempDir()
		}
	}
	return filepath.Join(base, "invoker")
}

// decodeFile merges a YAML file over cfg. Unknown keys are rejected so a
// misspelled setting is reported instead of silently ignored.
func decodeFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
