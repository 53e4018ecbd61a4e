package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the CLI defaults. Flags override every field.
type Config struct {
	Input     string   `toml:"input"`     // schedule text file
	Employees []string `toml:"employees"` // default selection
	CSV       string   `toml:"csv"`       // export path, empty disables export
}

func defaultConfig() *Config {
	return &Config{}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shiftoverlap.toml"
	}

	return filepath.Join(home, ".config", "shiftoverlap", "config.toml")
}

func loadConfig() (*Config, error) {
	return loadConfigFrom(defaultConfigPath())
}

// loadConfigFrom reads the TOML config at path, falling back to defaults
// when no file exists.
func loadConfigFrom(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
