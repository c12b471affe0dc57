// Package config reads and writes the slideover config file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/slideover/pkg/ui/overlay"
)

const configFile = ".slideover/config.json"

// Config holds overlay defaults. Empty fields fall back to the overlay's
// own defaults.
type Config struct {
	Direction    string                   `json:"direction,omitempty"`
	CloseOutside *bool                    `json:"close_outside,omitempty"`
	Background   string                   `json:"background,omitempty"`
	Durations    map[string]DurationsJSON `json:"durations,omitempty"`
}

// DurationsJSON is one direction's slide times in milliseconds.
type DurationsJSON struct {
	OpenMs  int `json:"open_ms,omitempty"`
	CloseMs int `json:"close_ms,omitempty"`
}

// Path returns the config file location under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := Path(baseDir)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// CloseOutsideOrDefault returns the configured backdrop behavior, true when unset.
func (c *Config) CloseOutsideOrDefault() bool {
	if c.CloseOutside == nil {
		return true
	}
	return *c.CloseOutside
}

// SetCloseOutside stores v.
func (c *Config) SetCloseOutside(v bool) {
	c.CloseOutside = &v
}

// DurationTable converts the millisecond overrides. Unknown direction keys
// are rejected.
func (c *Config) DurationTable() (overlay.DurationTable, error) {
	if len(c.Durations) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(c.Durations))
	for k := range c.Durations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := make(overlay.DurationTable, len(keys))
	for _, k := range keys {
		d, err := overlay.ParseDirection(k)
		if err != nil {
			return nil, fmt.Errorf("durations: %w", err)
		}
		v := c.Durations[k]
		if v.OpenMs < 0 || v.CloseMs < 0 {
			return nil, fmt.Errorf("durations: %q has a negative value", k)
		}
		table[d] = overlay.Durations{
			Open:  time.Duration(v.OpenMs) * time.Millisecond,
			Close: time.Duration(v.CloseMs) * time.Millisecond,
		}
	}
	return table, nil
}

// OverlayOptions translates the config into overlay options. The direction
// is validated here so a bad file fails before any UI starts.
func (c *Config) OverlayOptions() ([]overlay.Option, error) {
	var opts []overlay.Option

	if c.Direction != "" {
		if _, err := overlay.ParseDirection(c.Direction); err != nil {
			return nil, fmt.Errorf("direction: %w", err)
		}
		opts = append(opts, overlay.WithDirection(c.Direction))
	}
	opts = append(opts, overlay.WithCloseOutside(c.CloseOutsideOrDefault()))
	if c.Background != "" {
		opts = append(opts, overlay.WithBackground(lipgloss.Color(c.Background)))
	}

	table, err := c.DurationTable()
	if err != nil {
		return nil, err
	}
	if table != nil {
		opts = append(opts, overlay.WithDurations(table))
	}
	return opts, nil
}
