// SPDX-License-Identifier: MIT
// Package: acnet/config
//
// config.go - YAML run configuration for the acnet CLI.
//
// Library packages never read this; the CLI translates it into builder
// options and sweep arguments.

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/acnet/network"
	"github.com/katalvlaran/acnet/sweep"
)

// Defaults applied to unset fields.
const (
	DefaultCount    = 10
	DefaultSeed     = 1
	DefaultMaxValue = 100.0
	DefaultMaxOmega = 1000.0
	DefaultPoints   = 100
	DefaultScale    = "log"
	DefaultSweepMin = 1.0
	DefaultSweepMax = 1e5
	DefaultDepth    = 2
	DefaultFanout   = 3
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete CLI run configuration.
type Config struct {
	Inventory InventoryConfig `yaml:"inventory"`
	// Omega overrides the randomly drawn frequency when set.
	Omega   *float64      `yaml:"omega,omitempty"`
	Network NetworkConfig `yaml:"network"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Output  OutputConfig  `yaml:"output"`
	Verbose bool          `yaml:"verbose"`
}

// InventoryConfig drives builder.GenerateInventory.
type InventoryConfig struct {
	Count    int      `yaml:"count"`
	Seed     int64    `yaml:"seed"`
	MaxValue float64  `yaml:"max_value"`
	MaxOmega float64  `yaml:"max_omega"`
	Kinds    []string `yaml:"kinds,omitempty"`
}

// NetworkConfig shapes the random composite built from the inventory.
type NetworkConfig struct {
	Depth  int `yaml:"depth"`
	Fanout int `yaml:"fanout"`
}

// SweepConfig describes the frequency sweep of the composed network.
type SweepConfig struct {
	Enabled bool        `yaml:"enabled"`
	Range   sweep.Range `yaml:"range"`
	Points  int         `yaml:"points"`
	Scale   string      `yaml:"scale"`
}

// OutputConfig names optional report files; empty means skip.
type OutputConfig struct {
	XLSX string `yaml:"xlsx,omitempty"`
	Plot string `yaml:"plot,omitempty"`
}

// DefaultConfig returns a configuration that runs without a file.
func DefaultConfig() *Config {
	c := &Config{Verbose: true}
	c.Sweep.Enabled = true
	c.applyDefaults()

	return c
}

// LoadFromPath reads and validates the YAML file at path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// applyDefaults fills zero-valued fields.
func (c *Config) applyDefaults() {
	if c.Inventory.Count == 0 {
		c.Inventory.Count = DefaultCount
	}
	if c.Inventory.Seed == 0 {
		c.Inventory.Seed = DefaultSeed
	}
	if c.Inventory.MaxValue == 0 {
		c.Inventory.MaxValue = DefaultMaxValue
	}
	if c.Inventory.MaxOmega == 0 {
		c.Inventory.MaxOmega = DefaultMaxOmega
	}
	if c.Network.Depth == 0 {
		c.Network.Depth = DefaultDepth
	}
	if c.Network.Fanout == 0 {
		c.Network.Fanout = DefaultFanout
	}
	if c.Sweep.Points == 0 {
		c.Sweep.Points = DefaultPoints
	}
	if c.Sweep.Scale == "" {
		c.Sweep.Scale = DefaultScale
	}
	if c.Sweep.Range == (sweep.Range{}) {
		c.Sweep.Range = sweep.Range{Min: DefaultSweepMin, Max: DefaultSweepMax}
	}
}

// Validate reports the first out-of-domain value, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.Inventory.Count < 1:
		return fmt.Errorf("inventory.count=%d: %w", c.Inventory.Count, ErrInvalid)
	case !nonNegative(c.Inventory.MaxValue):
		return fmt.Errorf("inventory.max_value=%g: %w", c.Inventory.MaxValue, ErrInvalid)
	case !nonNegative(c.Inventory.MaxOmega):
		return fmt.Errorf("inventory.max_omega=%g: %w", c.Inventory.MaxOmega, ErrInvalid)
	case c.Omega != nil && math.IsNaN(*c.Omega):
		return fmt.Errorf("omega=NaN: %w", ErrInvalid)
	case c.Network.Depth < 1:
		return fmt.Errorf("network.depth=%d: %w", c.Network.Depth, ErrInvalid)
	case c.Network.Fanout < 1:
		return fmt.Errorf("network.fanout=%d: %w", c.Network.Fanout, ErrInvalid)
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}
	scale, err := c.SweepScale()
	if err != nil {
		return err
	}
	if c.Sweep.Enabled {
		if c.Sweep.Points < sweep.MinPoints {
			return fmt.Errorf("sweep.points=%d: %w", c.Sweep.Points, ErrInvalid)
		}
		if err = c.Sweep.Range.Validate(scale); err != nil {
			return fmt.Errorf("sweep.range: %w: %w", ErrInvalid, err)
		}
	}
	if p := c.Output.Plot; p != "" {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".png", ".svg":
		default:
			return fmt.Errorf("output.plot=%q: want .png or .svg: %w", p, ErrInvalid)
		}
	}

	return nil
}

// Kinds parses Inventory.Kinds; nil means the builder default.
func (c *Config) Kinds() ([]network.Kind, error) {
	if len(c.Inventory.Kinds) == 0 {
		return nil, nil
	}
	out := make([]network.Kind, 0, len(c.Inventory.Kinds))
	for _, s := range c.Inventory.Kinds {
		k, err := network.ParseKind(s)
		if err != nil || !k.IsComponent() {
			return nil, fmt.Errorf("inventory.kinds: %q: %w", s, ErrInvalid)
		}
		out = append(out, k)
	}

	return out, nil
}

// SweepScale parses Sweep.Scale.
func (c *Config) SweepScale() (sweep.Scale, error) {
	s, err := sweep.ParseScale(c.Sweep.Scale)
	if err != nil {
		return s, fmt.Errorf("sweep.scale: %w: %w", ErrInvalid, err)
	}

	return s, nil
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
