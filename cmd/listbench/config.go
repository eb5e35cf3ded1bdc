package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOps         = 1024
	DefaultAppendRatio = 0.7
	DefaultSeed        = 1
)

// Config describes a churn workload. Values from a YAML file are merged
// over the defaults; flags are applied on top by the command layer.
type Config struct {
	Ops             int     `yaml:"ops"`
	AppendRatio     float64 `yaml:"append_ratio"`
	Seed            int64   `yaml:"seed"`
	InitialCapacity int     `yaml:"initial_capacity"`
}

func DefaultConfig() *Config {
	return &Config{
		Ops:         DefaultOps,
		AppendRatio: DefaultAppendRatio,
		Seed:        DefaultSeed,
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Ops <= 0 {
		return fmt.Errorf("ops must be positive, got %d", c.Ops)
	}
	if c.AppendRatio < 0 || c.AppendRatio > 1 {
		return fmt.Errorf("append_ratio must be in [0, 1], got %g", c.AppendRatio)
	}
	if c.InitialCapacity < 0 {
		return fmt.Errorf("initial_capacity must be non-negative, got %d", c.InitialCapacity)
	}
	return nil
}
