package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwalczak/clipmark"
	"gopkg.in/yaml.v3"
)

// loadConfig reads the YAML config at path, layered over the defaults.
// An empty path falls back to CLIPMARK_CONFIG and then the home directory;
// a missing default file just yields the defaults.
func loadConfig(path string) (clipmark.Config, error) {
	cfg := clipmark.DefaultConfig()

	explicit := path != ""
	if path == "" {
		path = defaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config at %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config at %q: %w", path, err)
	}

	return cfg, nil
}

func defaultConfigPath() string {
	if path := os.Getenv("CLIPMARK_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "clipmark.yml"
	}
	return filepath.Join(home, ".clipmark", "config.yml")
}
