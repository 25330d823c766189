package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.partscout.yaml",               // Project-specific config (highest priority)
	"~/.config/partscout/config.yaml", // User config
}

// EnvFiles are dotenv files loaded before environment overrides are applied.
// Variables already present in the environment win.
var EnvFiles = []string{".env"}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	envFiles    []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFiles:    EnvFiles,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (including .env)
// 3. ./.partscout.yaml
// 4. ~/.config/partscout/config.yaml
// 5. Built-in defaults
//
// The returned path is the highest priority file that was read, or empty.
func (l *Loader) LoadConfig(customPath string) (*Config, string, error) {
	config := DefaultConfig()
	source := ""

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, "", fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, "", fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
		source = customPath
	} else {
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				continue
			}
			source = expandedPath
		}
	}

	if err := l.loadEnvFiles(); err != nil {
		return nil, "", err
	}
	if err := l.applyEnvOverrides(config); err != nil {
		return nil, "", fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, source, nil
}

// loadFromFile decodes YAML over config; keys absent from the file keep their
// current values.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (l *Loader) loadEnvFiles() error {
	existing := make([]string, 0, len(l.envFiles))
	for _, path := range l.envFiles {
		if fileExists(path) {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"PARTSCOUT_ENDPOINT":      func(v string) error { config.Server.Endpoint = v; return nil },
		"PARTSCOUT_CATALOG":       func(v string) error { config.Server.Catalog = v; return nil },
		"PARTSCOUT_TIMEOUT":       func(v string) error { return parseDuration(v, &config.Server.Timeout) },
		"PARTSCOUT_HINT_INTERVAL": func(v string) error { return parseDuration(v, &config.UI.HintInterval) },
		"PARTSCOUT_COMPACT_WIDTH": func(v string) error { return parseInt(v, &config.UI.CompactWidth) },
		"PARTSCOUT_ALT_SCREEN":    func(v string) error { return parseBool(v, &config.UI.AltScreen) },
		"PARTSCOUT_WATCH_CONFIG":  func(v string) error { return parseBool(v, &config.UI.WatchConfig) },
		"PARTSCOUT_VERBOSE":       func(v string) error { return parseBool(v, &config.Log.Verbose) },
		"PARTSCOUT_LOG_FILE":      func(v string) error { config.Log.File = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// Comma-separated list
	if examples := os.Getenv("PARTSCOUT_EXAMPLES"); examples != "" {
		parts := strings.Split(examples, ",")
		config.UI.Examples = config.UI.Examples[:0:0]
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				config.UI.Examples = append(config.UI.Examples, trimmed)
			}
		}
	}
	return nil
}

// Marshal renders the config as YAML.
func Marshal(config *Config) ([]byte, error) {
	return yaml.Marshal(config)
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}
	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
