package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Duration is a time.Duration that reads and writes JSON as text, e.g. "2s"
type Duration time.Duration

// MarshalJSON encodes the duration as a string such as "1.5s"
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts either a duration string ("2s") or a number of nanoseconds
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "[Duration] invalid duration: %q", value)
		}
		*d = Duration(parsed)
	default:
		return errors.Errorf("[Duration] invalid duration: %s", data)
	}
	return nil
}

// Config holds the configuration for the simulation window and board
type Config struct {
	WindowWidth     int      `json:"window_width"`
	WindowHeight    int      `json:"window_height"`
	BoardWidth      int      `json:"board_width"`
	BoardHeight     int      `json:"board_height"`
	UpdateInterval  Duration `json:"update_interval"`
	TPS             int      `json:"tps"`
	Title           string   `json:"title"`
	LiveProbability float64  `json:"live_probability"`
	Seed            int64    `json:"seed"` // 0 seeds from the wall clock
	UseParallel     bool     `json:"use_parallel"`
	UseMemoryPool   bool     `json:"use_memory_pool"`
	ShowHUD         bool     `json:"show_hud"`
}

// DefaultConfig returns a 50x50 board in a 1000x1000 window, advancing every 2 seconds at 60 FPS
func DefaultConfig() Config {
	return Config{
		WindowWidth:     1000,
		WindowHeight:    1000,
		BoardWidth:      50,
		BoardHeight:     50,
		UpdateInterval:  Duration(2 * time.Second),
		TPS:             60,
		Title:           "Game of Life",
		LiveProbability: 0.25,
		Seed:            0,
		UseParallel:     false,
		UseMemoryPool:   true,
		ShowHUD:         false,
	}
}

// Interval returns the update interval as a time.Duration
func (c Config) Interval() time.Duration {
	return time.Duration(c.UpdateInterval)
}

// Validate checks that the configuration describes a drawable board
func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return errors.Errorf("[Validate] window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	case c.BoardWidth <= 0 || c.BoardHeight <= 0:
		return errors.Errorf("[Validate] board size must be positive, got %dx%d", c.BoardWidth, c.BoardHeight)
	case c.UpdateInterval <= 0:
		return errors.Errorf("[Validate] update interval must be positive, got %s", c.Interval())
	case c.TPS <= 0:
		return errors.Errorf("[Validate] tps must be positive, got %d", c.TPS)
	case c.LiveProbability < 0 || c.LiveProbability > 1:
		return errors.Errorf("[Validate] live probability must be within [0, 1], got %v", c.LiveProbability)
	}
	return nil
}

// LoadConfig loads configuration from JSON file over the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}
