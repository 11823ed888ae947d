package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the run configuration
type Config struct {
	Width          int  `json:"width"`
	Height         int  `json:"height"`
	UseParallel    bool `json:"use_parallel"`
	UseBoundedGrid bool `json:"use_bounded_grid"`
	UseMemoryPool  bool `json:"use_memory_pool"`
	StopWhenStill  bool `json:"stop_when_still"`
	ClearScreen    bool `json:"clear_screen"`
}

// DefaultConfig returns the classic 80x24 terminal grid
func DefaultConfig() Config {
	return Config{
		Width:          80,
		Height:         24,
		UseParallel:    true,
		UseBoundedGrid: false,
		UseMemoryPool:  true,
		StopWhenStill:  true,
		ClearScreen:    false,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, config.Validate()
}

// Validate rejects grids that cannot hold a pattern
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Config.Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	return nil
}
