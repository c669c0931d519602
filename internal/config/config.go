package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mosreport/internal/logger"
)

const (
	DefaultRootPath   = "."
	DefaultConfigFile = "config.yaml"
	LegacyConfigFile  = "config.json"

	EnvRootPath   = "MOSREPORT_PATH"
	EnvConfigFile = "MOSREPORT_CONFIG"
	EnvLogLevel   = "MOSREPORT_LOG_LEVEL"
)

// Config is the on-disk configuration. JSON files with the same keys
// (e.g. a legacy config.json holding {"path": "..."}) load as well.
type Config struct {
	Path string    `yaml:"path"`
	Log  LogConfig `yaml:"log"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// ConfigFile returns the config file to load from MOSREPORT_CONFIG,
// falling back to DefaultConfigFile and then LegacyConfigFile in the working
// directory. explicit reports whether it was set.
func ConfigFile() (path string, explicit bool) {
	if env := os.Getenv(EnvConfigFile); env != "" {
		return env, true
	}
	if !exists(DefaultConfigFile) && exists(LegacyConfigFile) {
		return LegacyConfigFile, false
	}
	return DefaultConfigFile, false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads a config file. A missing file yields an empty Config unless
// required is set.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// RootPath returns the research root from MOSREPORT_PATH, falling back to
// the config file and then DefaultRootPath.
func (c *Config) RootPath() string {
	if env := os.Getenv(EnvRootPath); env != "" {
		return env
	}
	if c != nil && c.Path != "" {
		return c.Path
	}
	return DefaultRootPath
}

// LogLevel returns the log level from MOSREPORT_LOG_LEVEL, falling back to
// the config file and then logger.DefaultLevel.
func (c *Config) LogLevel() string {
	if env := os.Getenv(EnvLogLevel); env != "" {
		return env
	}
	if c != nil && c.Log.Level != "" {
		return c.Log.Level
	}
	return logger.DefaultLevel
}
