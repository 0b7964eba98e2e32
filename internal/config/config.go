package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bitraster/internal/raster"
)

const (
	// DefaultWidth of 0 derives the bitmap width from the terminal.
	DefaultWidth   = 0
	DefaultOffset  = 0
	DefaultDelayMS = 250
	DefaultTheme   = "mono"
)

// Config holds the viewer settings a run starts from. Flags override
// it field by field.
type Config struct {
	Width   int    `yaml:"width"`
	Offset  int64  `yaml:"offset"`
	DelayMS int    `yaml:"delay_ms"`
	Reverse bool   `yaml:"reverse"`
	Theme   string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Offset:  DefaultOffset,
		DelayMS: DefaultDelayMS,
		Reverse: false,
		Theme:   DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// Validate rejects settings the viewer cannot start from.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Width%8 != 0 {
		return fmt.Errorf("config: width %d is not a non-negative multiple of 8", c.Width)
	}
	if c.Offset < 0 {
		return fmt.Errorf("config: offset %d is negative", c.Offset)
	}
	if c.DelayMS < 0 {
		return fmt.Errorf("config: delay %dms is negative", c.DelayMS)
	}
	return nil
}

// Delay converts the configured milliseconds to a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Order maps the reverse flag onto the raster bit order.
func (c *Config) Order() raster.Order {
	if c.Reverse {
		return raster.LSBFirst
	}
	return raster.MSBFirst
}
