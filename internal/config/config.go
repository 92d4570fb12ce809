package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/dataset"
)

const (
	DefaultSize     = 20
	DefaultMinValue = 1
	DefaultMaxValue = 100
	DefaultSpeedMs  = 500
	MaxSize         = 512
)

var (
	ErrInvalidSize  = errors.New("config: size must be between 1 and 512")
	ErrInvalidRange = errors.New("config: max value must be greater than min value")
	ErrInvalidSpeed = errors.New("config: speed must be positive")
	ErrUnknownView  = errors.New("config: unknown view")
)

var Views = []string{"bars", "boxes", "dots"}

type Config struct {
	Size     int    `yaml:"size"`
	MinValue int    `yaml:"min_value"`
	MaxValue int    `yaml:"max_value"`
	SpeedMs  int    `yaml:"speed_ms"`
	Seed     int64  `yaml:"seed"`
	Pattern  string `yaml:"pattern"`
	View     string `yaml:"view"`
	Theme    string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:     DefaultSize,
		MinValue: DefaultMinValue,
		MaxValue: DefaultMaxValue,
		SpeedMs:  DefaultSpeedMs,
		Pattern:  string(dataset.Random),
		View:     "bars",
		Theme:    "classic",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first invalid field. Theme names are resolved by the
// renderer, which falls back to classic.
func (c *Config) Validate() error {
	if c.Size < 1 || c.Size > MaxSize {
		return fmt.Errorf("%w (got %d)", ErrInvalidSize, c.Size)
	}
	if c.MaxValue <= c.MinValue {
		return fmt.Errorf("%w (got %d..%d)", ErrInvalidRange, c.MinValue, c.MaxValue)
	}
	if c.SpeedMs <= 0 {
		return fmt.Errorf("%w (got %dms)", ErrInvalidSpeed, c.SpeedMs)
	}
	if _, err := dataset.ParsePattern(c.Pattern); err != nil {
		return err
	}
	for _, v := range Views {
		if v == c.View {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownView, c.View)
}

func (c *Config) Speed() time.Duration {
	return time.Duration(c.SpeedMs) * time.Millisecond
}

// Array generates a fresh array from the configured size, range and pattern.
func (c *Config) Array() ([]int, error) {
	p, err := dataset.ParsePattern(c.Pattern)
	if err != nil {
		return nil, err
	}
	return dataset.Generate(p, c.Size, c.MinValue, c.MaxValue, dataset.NewRand(c.Seed))
}
