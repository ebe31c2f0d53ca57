package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable, e.g. FNPLOT_SCALE
const Prefix = "fnplot"

// DefaultWatchDebounce is the settle time before a changed preset is reloaded
const DefaultWatchDebounce = 500 * time.Millisecond

type Config struct {
	Width         int           `envconfig:"WIDTH" default:"800"`
	Height        int           `envconfig:"HEIGHT" default:"600"`
	Scale         float64       `envconfig:"SCALE" default:"2"`
	Preset        string        `envconfig:"PRESET"`
	Watch         bool          `envconfig:"WATCH" default:"false"`
	WatchDebounce time.Duration `envconfig:"WATCH_DEBOUNCE" default:"500ms"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// NewLogger creates the text logger used by all binaries
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}
