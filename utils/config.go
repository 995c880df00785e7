package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a game run
type Config struct {
	InputFile           string        `json:"input_file"`
	MaxGenerations      int           `json:"max_generations"`
	FrameRate           time.Duration `json:"frame_rate"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	ClearScreen         bool          `json:"clear_screen"`
	LogLevel            string        `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		InputFile:           "generation0.txt",
		MaxGenerations:      1000,
		FrameRate:           0,
		Workers:             0, // 0 means one worker per CPU
		UseMemoryPool:       true,
		StagnationThreshold: 5,
		ClearScreen:         false,
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from JSON file
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

// Validate rejects settings the driver cannot run with. Zero limits mean unlimited.
func (c Config) Validate() error {
	switch {
	case c.InputFile == "":
		return errors.Wrap(ErrInvalidConfig, "input_file must be set")
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %v", c.FrameRate)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	}
	return nil
}
