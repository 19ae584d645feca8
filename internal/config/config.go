// Package config loads settings of the search node from a YAML file
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath         = "MINIGREPD_CONFIG"
	DefaultAddress        = ":8080"
	DefaultGinMode        = "release"
	DefaultShutdown       = 5 * time.Second
	DefaultMaxContentSize = 10 << 20
)

type Config struct {
	Address         string        `yaml:"address"`
	GinMode         string        `yaml:"gin_mode"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxContentBytes int64         `yaml:"max_content_bytes"`
	Log             LogConfig     `yaml:"log"`
}

// LogConfig - параметры логгера и ротации лог-файла
type LogConfig struct {
	Level      string `yaml:"level"`       // debug/info/warn/error
	Console    bool   `yaml:"console"`     // писать ли в stderr
	File       string `yaml:"file"`        // путь до файла логов, пусто - без файла
	MaxSize    int    `yaml:"max_size"`    // Max size in megabytes
	MaxBackups int    `yaml:"max_backups"` // Max number of backups
	MaxAge     int    `yaml:"max_age"`     // Max age in days
	Compress   bool   `yaml:"compress"`    // Compress backups
}

func Default() *Config {
	return &Config{
		Address:         DefaultAddress,
		GinMode:         DefaultGinMode,
		ShutdownTimeout: DefaultShutdown,
		MaxContentBytes: DefaultMaxContentSize,
		Log: LogConfig{
			Level:      "info",
			Console:    true,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// Load reads path over the defaults. Keys missing in the file keep their default values.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return cfg, nil
}

// Path picks the --config flag value first, then MINIGREPD_CONFIG.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

func (c *Config) validate() error {
	switch {
	case c.Address == "":
		return fmt.Errorf("empty address")
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout)
	case c.MaxContentBytes <= 0:
		return fmt.Errorf("max_content_bytes must be positive, got %d", c.MaxContentBytes)
	}
	return nil
}
