package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config maps store names to backing database paths.
//
// Example:
//
//	default: shopping
//	stores:
//	  shopping: /home/me/.local/share/listkeep/shopping.db
//	  chores: /home/me/.local/share/listkeep/chores.db
type Config struct {
	// Default names the store used when --store is not passed.
	Default string `yaml:"default"`

	// Stores maps a store name to its database path.
	Stores map[string]string `yaml:"stores"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if len(cfg.Stores) == 0 {
		return nil, fmt.Errorf("config %s: no stores defined", path)
	}
	if cfg.Default != "" {
		if _, ok := cfg.Stores[cfg.Default]; !ok {
			return nil, fmt.Errorf("config %s: default store %q is not defined", path, cfg.Default)
		}
	}
	for name, storePath := range cfg.Stores {
		if storePath == "" {
			return nil, fmt.Errorf("config %s: store %q has an empty path", path, name)
		}
	}

	return &cfg, nil
}

// Resolve returns the database path for name, falling back to the config's
// default store when name is empty.
func (c *Config) Resolve(name string) (string, error) {
	if name == "" {
		name = c.Default
	}
	if name == "" {
		return "", fmt.Errorf("no store named and config has no default")
	}
	path, ok := c.Stores[name]
	if !ok {
		return "", fmt.Errorf("unknown store %q", name)
	}
	return path, nil
}
