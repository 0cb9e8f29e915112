package config

import (
	"fmt"
	"slices"

	"github.com/trickstertwo/xcore"
)

// Validate checks level, channel names and per-type required fields.
func (c *Config) Validate() error {
	if _, err := xcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("%w: level: %v", ErrInvalidConfig, err)
	}
	for name, spec := range c.Devices {
		if _, err := xcore.ParseChannel(name); err != nil {
			return fmt.Errorf("%w: devices: %v", ErrInvalidConfig, err)
		}
		if err := spec.validate(); err != nil {
			return fmt.Errorf("%w: devices.%s: %v", ErrInvalidConfig, name, err)
		}
	}
	return nil
}

func (d DeviceSpec) validate() error {
	if !slices.Contains(ValidTypes, d.Type) {
		return fmt.Errorf("unknown type %q (valid: %v)", d.Type, ValidTypes)
	}
	switch d.Type {
	case TypeFile:
		if d.Path == "" {
			return fmt.Errorf("type %s requires path", d.Type)
		}
	case TypeRedis:
		if d.URL == "" || d.Key == "" {
			return fmt.Errorf("type %s requires url and key", d.Type)
		}
	case TypeLoki, TypeWebsocket:
		if d.URL == "" {
			return fmt.Errorf("type %s requires url", d.Type)
		}
	}
	if d.MaxSizeMB < 0 || d.MaxBackups < 0 || d.MaxAgeDays < 0 {
		return fmt.Errorf("rotation limits must not be negative")
	}
	return nil
}
