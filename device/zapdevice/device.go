// Package zapdevice routes sink lines into a go.uber.org/zap logger.
package zapdevice

import (
	"github.com/trickstertwo/xclock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xcore"
)

// Device writes each line as one zap entry.
//
// Optimizations:
//   - Core.Enabled is checked first so nothing is built when zap's own level
//     filters the entry.
//   - The channel field is bound into the core once in New, not per line.
//
// Lines go to Core.Write directly instead of through CheckedEntry.Write, which
// would report encoder and writer failures to ErrorOutput and drop them.
type Device struct {
	core  zapcore.Core
	name  string
	level zapcore.Level
	l     *zap.Logger
}

// New creates a device logging at level. When ch is a valid channel its name
// is bound as a "channel" field.
func New(l *zap.Logger, ch xcore.Channel, level zapcore.Level) *Device {
	if l == nil {
		l = zap.NewNop()
	}
	if ch.Severity() != xcore.LevelDisable {
		l = l.With(zap.Stringer("channel", ch))
	}
	return &Device{core: l.Core(), name: l.Name(), level: level, l: l}
}

// ForChannel creates a device whose zap level matches the channel severity.
func ForChannel(l *zap.Logger, ch xcore.Channel) *Device {
	return New(l, ch, ToZapLevel(ch.Severity()))
}

func (d *Device) WriteLine(msg string) error {
	if !d.core.Enabled(d.level) {
		return nil
	}
	// Timestamps follow xclock so frozen clocks apply to zap output too.
	return d.core.Write(zapcore.Entry{
		Level:      d.level,
		Time:       xclock.Now(),
		LoggerName: d.name,
		Message:    msg,
	}, nil)
}

// Sync flushes buffered zap output. The device does not implement io.Closer:
// the logger belongs to the caller, who syncs it once on shutdown.
func (d *Device) Sync() error { return d.l.Sync() }

// ToZapLevel maps a sink level onto zap. DISABLE has no zap equivalent and
// maps to Error; Fatal/DPanic are never produced to avoid exits in library
// code.
func ToZapLevel(l xcore.Level) zapcore.Level {
	switch {
	case l <= xcore.LevelDebug:
		return zapcore.DebugLevel
	case l <= xcore.LevelInfo:
		return zapcore.InfoLevel
	case l <= xcore.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
