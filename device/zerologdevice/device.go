// Package zerologdevice routes sink lines into an rs/zerolog logger.
package zerologdevice

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xcore"
)

// Device writes each line as one zerolog event.
//
// Optimizations:
//   - Fast pre-check using GetLevel() to avoid allocating a zerolog.Event when
//     the level is disabled.
//   - Uses Logger.WithLevel(...) so Error never turns into Fatal/exit.
//
// zerolog reports writer failures to zerolog.ErrorHandler instead of the
// caller. To return them, every event is written through a per-line
// faultWriter over w that records the error.
type Device struct {
	l     zerolog.Logger
	w     io.Writer
	level zerolog.Level
}

// New creates a device logging at level. l supplies the level, context fields
// and hooks; w is the destination the events are encoded to. The channel name
// is bound as a "channel" field.
func New(l zerolog.Logger, w io.Writer, ch xcore.Channel, level zerolog.Level) *Device {
	if w == nil {
		w = io.Discard
	}
	if ch.Severity() != xcore.LevelDisable {
		l = l.With().Stringer("channel", ch).Logger()
	}
	return &Device{l: l, w: w, level: level}
}

// ForChannel creates a device whose zerolog level matches the channel severity.
func ForChannel(l zerolog.Logger, w io.Writer, ch xcore.Channel) *Device {
	return New(l, w, ch, MapLevel(ch.Severity()))
}

func (d *Device) WriteLine(msg string) error {
	// Fast path: drop early if below logger's min level (no Event allocation).
	if d.level < d.l.GetLevel() || d.level < zerolog.GlobalLevel() {
		return nil
	}
	fw := &faultWriter{w: d.w}
	l := d.l.Output(fw)
	l.WithLevel(d.level).Msg(msg)
	return fw.err
}

// faultWriter keeps the first write error for the caller and hides it from
// zerolog, which would otherwise print it to stderr.
type faultWriter struct {
	w   io.Writer
	err error
}

func (f *faultWriter) Write(p []byte) (int, error) {
	if _, err := f.w.Write(p); err != nil && f.err == nil {
		f.err = err
	}
	return len(p), nil
}

// MapLevel converts a sink level to zerolog.Level. DISABLE maps to
// zerolog.Disabled.
func MapLevel(l xcore.Level) zerolog.Level {
	switch {
	case l <= xcore.LevelDebug:
		return zerolog.DebugLevel
	case l <= xcore.LevelInfo:
		return zerolog.InfoLevel
	case l <= xcore.LevelWarn:
		return zerolog.WarnLevel
	case l <= xcore.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
