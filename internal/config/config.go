// Package config handles the XDG configuration directory and the optional
// config.yaml inside it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "taskboard"

	// ConfigFile is the optional settings filename inside the config directory.
	ConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. TASKBOARD_STORAGE_BACKEND.
	EnvPrefix = "TASKBOARD"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	Storage StorageConfig
	Log     LogConfig
}

// StorageConfig selects the durable slot backend.
type StorageConfig struct {
	Backend string // file, sqlite or postgres
	Path    string // data dir (file) or database file (sqlite); defaults under Dir
	DSN     string // postgres connection string
	Key     string // slot key holding the task list
}

// LogConfig configures logrus.
type LogConfig struct {
	Level  string
	Format string // text or json
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskboard or $HOME/.config/taskboard.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir: dir,
		Storage: StorageConfig{
			Backend: "file",
			Key:     "tasks",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasConfigFile checks if config.yaml exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

// Load applies config.yaml (if present) and TASKBOARD_* environment
// overrides on top of the current values.
func (c *Config) Load() error {
	v := viper.New()
	v.SetConfigFile(c.ConfigPath())
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("storage.backend", c.Storage.Backend)
	v.SetDefault("storage.path", c.Storage.Path)
	v.SetDefault("storage.dsn", c.Storage.DSN)
	v.SetDefault("storage.key", c.Storage.Key)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)

	if c.HasConfigFile() {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	}

	c.Storage.Backend = strings.ToLower(strings.TrimSpace(v.GetString("storage.backend")))
	c.Storage.Path = v.GetString("storage.path")
	c.Storage.DSN = v.GetString("storage.dsn")
	c.Storage.Key = v.GetString("storage.key")
	c.Log.Level = v.GetString("log.level")
	c.Log.Format = v.GetString("log.format")
	return nil
}

// StoragePath returns the configured storage path, or the backend's default
// location inside the config directory.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == "sqlite" {
		return filepath.Join(c.Dir, "taskboard.db")
	}
	return filepath.Join(c.Dir, "data")
}

// LogLevel returns the effective log level: --debug wins, then --quiet,
// then the configured level.
func (c *Config) LogLevel() string {
	switch {
	case c.Debug:
		return "debug"
	case c.Quiet:
		return "error"
	default:
		return c.Log.Level
	}
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
