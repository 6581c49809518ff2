package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file.
const (
	EnvDir      = "JOT_DIR"
	EnvAdapter  = "JOT_ADAPTER"
	EnvKey      = "JOT_KEY"
	EnvLogLevel = "JOT_LOG_LEVEL"
)

// Config is the on-disk configuration of the jot CLI.
type Config struct {
	File string `yaml:"-"` // Path the config was read from, if any.

	// Dir is the data directory. Relative paths are resolved against the
	// directory holding the config file.
	Dir           string    `yaml:"dir" default:".jot"`
	Adapter       string    `yaml:"adapter" default:"fs"`
	Key           string    `yaml:"key" default:"jot-notes"`
	MustExist     bool      `yaml:"must-exist"`
	CorruptBackup bool      `yaml:"corrupt-backup" default:"true"`
	Log           LogConfig `yaml:"log"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" default:"info"`
	// Format is "text" or "json".
	Format string `yaml:"format" default:"text"`
}

// DefaultConfig returns a Config filled with defaults.
func DefaultConfig() (*Config, error) {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return c, nil
}

// LoadConfig reads path on top of the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	c, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	// Defaults are set before decoding so explicit false values survive.
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	c.File = path
	return c, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDir); v != "" {
		c.Dir = v
	}
	if v := os.Getenv(EnvAdapter); v != "" {
		c.Adapter = v
	}
	if v := os.Getenv(EnvKey); v != "" {
		c.Key = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// DataDir returns Dir resolved against the config file location, or against
// base when no file was loaded.
func (c *Config) DataDir(base string) string {
	if filepath.IsAbs(c.Dir) {
		return c.Dir
	}
	if c.File != "" {
		base = filepath.Dir(c.File)
	}
	return filepath.Join(base, c.Dir)
}

// Options converts the configuration into service options.
func (c *Config) Options() []Option {
	return []Option{
		WithAdapter(c.Adapter),
		WithKey(c.Key),
		WithMustExist(c.MustExist),
		WithCorruptBackup(c.CorruptBackup),
	}
}
