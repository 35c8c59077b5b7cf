package config

import (
	"errors"
	"fmt"
	"time"

	"morandi-studio/internal/logger"

	"github.com/caarlos0/env/v11"
)

// Environment prefixes of the two applications.
const (
	MorandiPrefix = "MORANDI_"
	GlassPrefix   = "GLASS_"
)

// Config holds the runtime settings read from the environment. Fields without a
// matching variable keep the values of the defaults passed to Load.
type Config struct {
	LogLevel     string        `env:"LOG_LEVEL"`
	JSONLogs     bool          `env:"JSON_LOGS"`
	GIFPath      string        `env:"GIF_PATH"`
	GIFDir       string        `env:"GIF_DIR"`
	GIFRotate    time.Duration `env:"GIF_ROTATE"`
	GIFSize      int           `env:"GIF_SIZE"`
	WindowWidth  int           `env:"WINDOW_WIDTH"`
	WindowHeight int           `env:"WINDOW_HEIGHT"`
}

// MorandiDefaults are the settings of the image studio.
func MorandiDefaults() Config {
	return Config{
		LogLevel:     "info",
		GIFPath:      "assets/header.gif",
		GIFRotate:    5 * time.Second,
		GIFSize:      50,
		WindowWidth:  1100,
		WindowHeight: 750,
	}
}

// GlassDefaults are the settings of the liquid glass shell.
func GlassDefaults() Config {
	return Config{
		LogLevel:     "info",
		GIFPath:      "assets/decoration.gif",
		GIFDir:       "assets/gifs",
		GIFRotate:    5 * time.Second,
		GIFSize:      64,
		WindowWidth:  1200,
		WindowHeight: 800,
	}
}

// Validate checks the parsed values.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.GIFRotate <= 0 {
		return errors.New("GIF rotation interval must be positive")
	}
	if c.GIFSize <= 0 {
		return fmt.Errorf("invalid GIF size %d", c.GIFSize)
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() logger.LogLevel {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}

// Load reads the variables with the given prefix over defaults and validates
// the result.
func Load(prefix string, defaults Config) (*Config, error) {
	return load(defaults, env.Options{Prefix: prefix})
}

func load(defaults Config, opts env.Options) (*Config, error) {
	cfg := defaults
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
