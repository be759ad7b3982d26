package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradelog/storage"
)

// Config represents the complete tradelog configuration
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// StorageConfig selects and locates the key-value backend
type StorageConfig struct {
	Type   string `json:"type" yaml:"type"` // "sqlite" or "file"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Debug bool `json:"debug" yaml:"debug"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

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
	switch c.Storage.Type {
	case "sqlite":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("storage.db_path required for sqlite type")
		}
	case "file":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path required for file type")
		}
	default:
		return fmt.Errorf("storage.type must be 'sqlite' or 'file'")
	}
	return nil
}

// OpenStorage opens the configured key-value backend.
func (c *Config) OpenStorage() (storage.KV, error) {
	switch c.Storage.Type {
	case "sqlite":
		return storage.NewSQLite(c.Storage.DBPath)
	case "file":
		return storage.NewFile(c.Storage.Path)
	default:
		return nil, fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Type:   "sqlite",
			DBPath: "./tradelog.sqlite",
		},
	}
}
