package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/csheth/partscout/internal/lookup"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Server  ServerConfig `yaml:"server" json:"server"`
	UI      UIConfig     `yaml:"ui" json:"ui"`
	Log     LogConfig    `yaml:"log" json:"log"`
}

// ServerConfig points the client at a lookup backend
type ServerConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint"` // base URL, eg. http://localhost:8000
	Catalog  string        `yaml:"catalog" json:"catalog"`   // wipers|brake-pads
	Timeout  time.Duration `yaml:"timeout" json:"timeout"`   // per request, 0 disables
}

// UIConfig configures the interactive program
type UIConfig struct {
	Examples     []string      `yaml:"examples" json:"examples"`           // placeholder hints
	HintInterval time.Duration `yaml:"hint_interval" json:"hint_interval"` // placeholder rotation period
	CompactWidth int           `yaml:"compact_width" json:"compact_width"` // columns below which the compact layout is used
	AltScreen    bool          `yaml:"alt_screen" json:"alt_screen"`
	WatchConfig  bool          `yaml:"watch_config" json:"watch_config"` // reload examples when the config file changes
}

// LogConfig configures diagnostics output
type LogConfig struct {
	Verbose bool   `yaml:"verbose" json:"verbose"`
	File    string `yaml:"file" json:"file"` // where the interactive program logs; empty discards
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Endpoint: "http://localhost:8000",
			Catalog:  string(lookup.CatalogWipers),
			Timeout:  30 * time.Second,
		},
		UI: UIConfig{
			Examples:     []string{"6R1998002", "5E1", "1S1", "5JB"},
			HintInterval: 3 * time.Second,
			CompactWidth: 60,
			AltScreen:    true,
			WatchConfig:  true,
		},
		Log: LogConfig{
			Verbose: false,
			File:    "",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateServerConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateServerConfig() error {
	endpoint := strings.TrimSpace(c.Server.Endpoint)
	if endpoint == "" {
		return fmt.Errorf("server.endpoint must not be empty")
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid server.endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid server.endpoint: %s (scheme must be http or https)", endpoint)
	}
	if _, err := lookup.ParseCatalog(c.Server.Catalog); err != nil {
		return err
	}
	if c.Server.Timeout < 0 {
		return fmt.Errorf("server.timeout must be non-negative")
	}
	return nil
}

func (c *Config) validateUIConfig() error {
	if len(c.UI.Examples) == 0 {
		return fmt.Errorf("ui.examples must contain at least one entry")
	}
	for _, example := range c.UI.Examples {
		if strings.TrimSpace(example) == "" {
			return fmt.Errorf("ui.examples must not contain blank entries")
		}
	}
	if c.UI.HintInterval <= 0 {
		return fmt.Errorf("ui.hint_interval must be greater than 0")
	}
	if c.UI.CompactWidth < 0 {
		return fmt.Errorf("ui.compact_width must be non-negative")
	}
	return nil
}

// Catalog returns the configured catalog. Validate guarantees it parses.
func (c *Config) Catalog() lookup.Catalog {
	catalog, err := lookup.ParseCatalog(c.Server.Catalog)
	if err != nil {
		return lookup.CatalogWipers
	}
	return catalog
}
