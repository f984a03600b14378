package config

import "fmt"

// StoreConfig defines settings for task persistence.
type StoreConfig struct {
	// Backend selects the store type: "json", "sqlite" or "memory".
	Backend string `json:"backend"`
	// Path is the file location of the task store. Unused for "memory".
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *StoreConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "json"
	}
	if c.Path == "" {
		switch c.Backend {
		case "sqlite":
			c.Path = "tasks.db"
		default:
			c.Path = "tasks.json"
		}
	}
}

// Validate checks mandatory fields.
func (c StoreConfig) Validate() error {
	switch c.Backend {
	case "json", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	if c.Backend != "memory" && c.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}
