package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a simulation run
type Config struct {
	Size                int           `json:"size" yaml:"size"`
	Steps               int           `json:"steps" yaml:"steps"`
	Seed                int64         `json:"seed" yaml:"seed"`
	Pattern             string        `json:"pattern" yaml:"pattern"`
	RandomDensity       float64       `json:"random_density" yaml:"random_density"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	StopOnStagnant      bool          `json:"stop_on_stagnant" yaml:"stop_on_stagnant"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	AliveColor          string        `json:"alive_color" yaml:"alive_color"`
	DeadColor           string        `json:"dead_color" yaml:"dead_color"`
	Output              string        `json:"output" yaml:"output"`
	Scale               int           `json:"scale" yaml:"scale"`
	FrameDelay          int           `json:"frame_delay" yaml:"frame_delay"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:                30,
		Steps:               100,
		Pattern:             "random",
		RandomDensity:       0.15,
		FrameRate:           150 * time.Millisecond,
		StopOnStagnant:      false,
		StagnationThreshold: 5,
		AliveColor:          "black",
		DeadColor:           "white",
		Output:              "life.gif",
		Scale:               8,
		FrameDelay:          10,
	}
}

// LoadConfig loads configuration from a JSON or YAML file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting that cannot drive a run
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Errorf("[Validate] size must be positive, got %d", c.Size)
	case c.Steps < 0:
		return errors.Errorf("[Validate] steps must not be negative, got %d", c.Steps)
	case c.Scale < 1:
		return errors.Errorf("[Validate] scale must be at least 1, got %d", c.Scale)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	case c.FrameDelay < 0:
		return errors.Errorf("[Validate] frame delay must not be negative, got %d", c.FrameDelay)
	}
	return nil
}
