package xcore

import (
	"fmt"
	"strings"
)

// Level mirrors slog numeric semantics and extends with Disable (12), which
// sits above every channel and silences the sink.
type Level int

const (
	LevelDebug   Level = -4
	LevelInfo    Level = 0
	LevelWarn    Level = 4
	LevelError   Level = 8
	LevelDisable Level = 12
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelDisable:
		return "DISABLE"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError, LevelDisable:
		return true
	}
	return false
}

// clamp rounds an arbitrary value down onto a defined level (anything below
// Debug becomes Debug) so SetLevel never has to fail.
func (l Level) clamp() Level {
	switch {
	case l < LevelInfo:
		return LevelDebug
	case l < LevelWarn:
		return LevelInfo
	case l < LevelError:
		return LevelWarn
	case l < LevelDisable:
		return LevelError
	default:
		return LevelDisable
	}
}

// ParseLevel converts a case-insensitive level name into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "disable", "off", "none":
		return LevelDisable, nil
	}
	return LevelDebug, fmt.Errorf("%w: level must be one of 'debug', 'info', 'warn', 'error' or 'disable', not '%s'", ErrInvalidArgument, s)
}

// MarshalText lets levels round-trip through YAML and flag values.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
