// Package config loads the YAML file that describes a sink: its threshold and
// the device bound to each channel.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Device types understood by Build.
const (
	TypeStdout    = "stdout"
	TypeStderr    = "stderr"
	TypeDiscard   = "discard"
	TypeFile      = "file"
	TypeZap       = "zap"
	TypeZerolog   = "zerolog"
	TypeSlog      = "slog"
	TypeRedis     = "redis"
	TypeLoki      = "loki"
	TypeWebsocket = "websocket"
)

// ValidTypes lists the device types in documentation order.
var ValidTypes = []string{
	TypeStdout, TypeStderr, TypeDiscard, TypeFile, TypeZap,
	TypeZerolog, TypeSlog, TypeRedis, TypeLoki, TypeWebsocket,
}

// Config is the top-level file.
type Config struct {
	Level   string                `yaml:"level"`   // debug, info, warn, error, disable
	Devices map[string]DeviceSpec `yaml:"devices"` // keyed by channel name
}

// DeviceSpec describes one device. Only the fields of its type are read.
type DeviceSpec struct {
	Type string `yaml:"type"`

	// file, zap (zap defaults to stderr)
	Path       string `yaml:"path,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
	Compress   bool   `yaml:"compress,omitempty"`

	// redis, loki, websocket
	URL    string            `yaml:"url,omitempty"`
	Key    string            `yaml:"key,omitempty"`    // redis list
	Labels map[string]string `yaml:"labels,omitempty"` // loki stream labels
}

// DefaultConfig matches xcore.Default(): everything active, debug and info on
// stdout, warn and error on stderr.
func DefaultConfig() *Config {
	return &Config{
		Level: "debug",
		Devices: map[string]DeviceSpec{
			"debug": {Type: TypeStdout},
			"info":  {Type: TypeStdout},
			"warn":  {Type: TypeStderr},
			"error": {Type: TypeStderr},
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets XCORE_LEVEL override the file's threshold.
func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv("XCORE_LEVEL"); lvl != "" {
		c.Level = lvl
	}
}
