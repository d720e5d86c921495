package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const localConfigPath = "configs/t2048.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.slide2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// An explicit path must exist and be valid; the other locations are skipped
// when missing or broken.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	return loadFirst(userConfigPath(), localConfigPath), nil
}

// loadFirst returns the first readable, valid config among paths, then
// the embedded default, then the hardcoded default.
func loadFirst(paths ...string) Config {
	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg
		}
	}

	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg
	}
	return Default()
}

// Parse decodes YAML on top of the defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slide2048", "config.yaml")
}
