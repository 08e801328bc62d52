package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Width       int           `envconfig:"WIDTH" default:"800"`
	Height      int           `envconfig:"HEIGHT" default:"600"`
	OutputDir   string        `envconfig:"OUTPUT_DIR" default:"."`
	PromptDelay time.Duration `envconfig:"PROMPT_DELAY" default:"0s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	Seed        uint64        `envconfig:"SEED" default:"0"`
}

// Load reads PATTERN_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("pattern", &cfg); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("surface size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	return &cfg, nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
