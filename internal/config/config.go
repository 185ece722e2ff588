package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is read from an optional config.toml; every field has a working
// default and an environment override, so a fresh install needs no file.
type Config struct {
	DataDir string `toml:"data_dir"` // directory holding tasks.json
	Theme   string `toml:"theme"`    // "classic" | "mono"
}

// standardPaths lists config file locations in priority order.
func standardPaths() []string {
	paths := []string{"taskpad.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "taskpad", "config.toml"))
	}
	return paths
}

// Load resolves the effective configuration: defaults, then the first
// config file found, then environment overrides. A missing file is not
// an error.
func Load() (Config, error) {
	cfg := Config{Theme: "classic"}

	for _, p := range standardPaths() {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(p, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", p, err)
		}
		break
	}

	if v := strings.TrimSpace(os.Getenv("TASKPAD_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKPAD_THEME")); v != "" {
		cfg.Theme = v
	}

	if cfg.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = dir
	}
	return cfg, nil
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".local", "share", "taskpad"), nil
}

// LoadFile reads one specific config file, skipping path resolution
// and environment overrides.
func LoadFile(path string) (Config, error) {
	cfg := Config{Theme: "classic"}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config file not found: %s", path)
		}
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
