package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed describes one item placed into the demo inventory at startup.
type Seed struct {
	Identifier uint32 `yaml:"identifier"`
	Quantity   uint32 `yaml:"quantity"`
	Slot       int    `yaml:"slot"` // -1 means first empty slot
}

// Demo holds all configuration for the invdemo binary.
type Demo struct {
	Capacity int    `yaml:"capacity"`
	Seeds    []Seed `yaml:"seeds"`
}

// DefaultDemo returns the demo config: a capacity-5 inventory with a single
// item placed at slot 2.
func DefaultDemo() Demo {
	return Demo{
		Capacity: 5,
		Seeds: []Seed{
			{Identifier: 10, Quantity: 1, Slot: 2},
		},
	}
}

// LoadDemo loads demo config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadDemo(path string) (Demo, error) {
	cfg := DefaultDemo()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
