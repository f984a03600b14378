package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines default planning parameters loaded from configuration.
type Config struct {
	Hours             float64 `json:"hours" yaml:"hours"`
	Start             string  `json:"start" yaml:"start"`
	AllowSplit        bool    `json:"allow_split" yaml:"allow_split"`
	UrgencyWindowDays int     `json:"urgency_window_days" yaml:"urgency_window_days"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Hours == 0 {
		c.Hours = 8
	}
	if c.Start == "" {
		c.Start = "09:00"
	}
	if c.UrgencyWindowDays == 0 {
		c.UrgencyWindowDays = DefaultUrgencyWindowDays
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if _, err := time.Parse(timeLayout, c.Start); err != nil {
		return fmt.Errorf("start must be HH:MM: %w", err)
	}
	if c.Hours < 0 {
		return fmt.Errorf("hours must not be negative")
	}
	if c.UrgencyWindowDays <= 0 {
		return fmt.Errorf("urgency_window_days must be positive")
	}
	return nil
}

// Options converts the configured defaults into packing options.
func (c Config) Options() Options {
	return Options{
		DailyMinutes:      c.Hours * 60,
		Start:             c.Start,
		AllowSplit:        c.AllowSplit,
		UrgencyWindowDays: c.UrgencyWindowDays,
	}
}

// LoadConfig loads Config from a JSON or YAML file.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var cfg Config
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	default:
		return Config{}, fmt.Errorf("unsupported config format: %s", ext)
	}
	return cfg, err
}

// DecodeConfig reads from r to decode a Config.
func DecodeConfig(r io.Reader, format string) (Config, error) {
	var cfg Config
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
	case "json":
		dec := json.NewDecoder(r)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported format: %s", format)
	}
	return cfg, nil
}
