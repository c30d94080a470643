package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/optrack/internal/logging"
)

// Environment variables that override file settings.
const (
	EnvDBPath   = "OPTRACK_DB"
	EnvLogLevel = "OPTRACK_LOG_LEVEL"
	EnvLogFile  = "OPTRACK_LOG_FILE"
)

// Config represents the complete application configuration
type Config struct {
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
	Display DisplayConfig `json:"display" yaml:"display"`
}

// JournalConfig locates the trade data file
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug|info|warn|error
	File  string `json:"file" yaml:"file"`   // "-" for stderr
}

// DisplayConfig contains terminal output options
type DisplayConfig struct {
	NoColor bool `json:"no_color" yaml:"no_color"`
}

// Load builds the effective configuration: defaults, then the optional file
// at path, then a .env file and the OPTRACK_* environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	// A missing .env is normal.
	_ = godotenv.Load()
	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the OPTRACK_* variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDBPath); v != "" {
		c.Journal.DBPath = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
}

// LoadFromFile loads configuration from a file (JSON or YAML). Settings the
// file leaves out keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Journal.DBPath) == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath: "./options_tracker.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "./optrack.log",
		},
	}
}
