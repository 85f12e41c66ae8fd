package internal

import (
	"errors"
	"fmt"
	"time"

	"go-simpler.org/env"
)

// Settings holds the knobs read from the environment. Command-line flags
// take precedence over these values.
type Settings struct {
	ConfigDir  string        `env:"PLAYTIME_CONFIG_DIR"`
	MinSession time.Duration `env:"PLAYTIME_MIN_SESSION" default:"1s"`
	RecentDays int           `env:"PLAYTIME_RECENT_DAYS" default:"7"`
	LogLevel   string        `env:"PLAYTIME_LOG_LEVEL" default:"info"`
}

// LoadSettings reads Settings from the process environment
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := env.Load(&s, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.MinSession < 0 {
		return errors.New("PLAYTIME_MIN_SESSION must not be negative")
	}
	if s.RecentDays < 1 {
		return fmt.Errorf("PLAYTIME_RECENT_DAYS must be at least 1, got %d", s.RecentDays)
	}
	return nil
}

// Store returns the config store selected by the settings
func (s *Settings) Store() (*Store, error) {
	if s.ConfigDir != "" {
		return NewStore(s.ConfigDir), nil
	}
	return DefaultStore()
}
