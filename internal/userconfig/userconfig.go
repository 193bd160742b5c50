// Package userconfig manages persistent matrixgen settings.
// Configuration is stored in $MATRIXGEN_HOME/config.toml (default
// ~/.matrixgen/config.toml) and can be modified with 'matrixgen config'.
package userconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvHome overrides the directory holding the config file.
const EnvHome = "MATRIXGEN_HOME"

// Config holds user-tunable defaults for matrix generation. CLI flags
// take precedence over these, which take precedence over the built-ins.
type Config struct {
	// BuildCommand is the base build command parametrized per target.
	BuildCommand string `toml:"build_command"`

	// Manifest is the default manifest path, relative to the working
	// directory unless absolute.
	Manifest string `toml:"manifest"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		BuildCommand: "pnpm build",
		Manifest:     "package.json",
	}
}

// Path returns the config file location, honoring MATRIXGEN_HOME.
func Path() (string, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		home = filepath.Join(userHome, ".matrixgen")
	}
	return filepath.Join(home, "config.toml"), nil
}

// Load reads the config at path. A missing file is not an error; it
// yields the defaults. Unset fields also fall back to their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.BuildCommand == "" {
		cfg.BuildCommand = Default().BuildCommand
	}
	if cfg.Manifest == "" {
		cfg.Manifest = Default().Manifest
	}

	return cfg, nil
}

// Get returns the value of a configuration key.
// The second return value is false for unknown keys.
func (c *Config) Get(key string) (string, bool) {
	switch key {
	case "build_command":
		return c.BuildCommand, true
	case "manifest":
		return c.Manifest, true
	}
	return "", false
}

// Set assigns a configuration key. Returns an error for unknown keys.
func (c *Config) Set(key, value string) error {
	switch key {
	case "build_command":
		c.BuildCommand = value
	case "manifest":
		c.Manifest = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// AvailableKeys returns the configuration keys and their descriptions.
func AvailableKeys() map[string]string {
	return map[string]string{
		"build_command": "Base build command parametrized per target",
		"manifest":      "Default package manifest path",
	}
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
