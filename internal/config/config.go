package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	OutputDir       string  `toml:"output_dir"`
	DBPath          string  `toml:"db_path"`
	WindowDuration  float64 `toml:"window_duration"`
	MaxKeywords     int     `toml:"max_keywords"`
	TitleMaxPhrases int     `toml:"title_max_phrases"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	cfgPath := filepath.Join(home, ".config", "chapgen", "config.toml")
	return loadFrom(cfgPath, home)
}

func loadFrom(cfgPath, home string) (*Config, error) {
	cfg := &Config{
		OutputDir:       "output",
		DBPath:          filepath.Join(home, ".config", "chapgen", "chapgen.db"),
		WindowDuration:  90,
		MaxKeywords:     5,
		TitleMaxPhrases: 3,
	}

	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.OutputDir = expandHome(cfg.OutputDir, home)
	cfg.DBPath = expandHome(cfg.DBPath, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
