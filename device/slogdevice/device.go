// Package slogdevice routes sink lines into a log/slog handler.
package slogdevice

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xcore"
)

// Device hands each line to the logger's Handler as one slog.Record.
// Logger.LogAttrs would discard the error Handle returns, so the record is
// built here and the handler called directly.
type Device struct {
	h     slog.Handler
	level slog.Level
	attrs []slog.Attr
}

// New creates a device logging at level. A nil logger uses slog.Default().
func New(l *slog.Logger, ch xcore.Channel, level slog.Level) *Device {
	if l == nil {
		l = slog.Default()
	}
	d := &Device{h: l.Handler(), level: level}
	if ch.Severity() != xcore.LevelDisable {
		d.attrs = []slog.Attr{slog.String("channel", ch.String())}
	}
	return d
}

// ForChannel creates a device at the channel's severity. Sink levels share
// slog's numbering, so the mapping is the identity.
func ForChannel(l *slog.Logger, ch xcore.Channel) *Device {
	return New(l, ch, toSlog(ch.Severity()))
}

func toSlog(l xcore.Level) slog.Level {
	return slog.Level(l)
}

func (d *Device) WriteLine(msg string) error {
	ctx := context.Background()
	if !d.h.Enabled(ctx, d.level) {
		return nil
	}
	r := slog.NewRecord(xclock.Now(), d.level, msg, 0)
	r.AddAttrs(d.attrs...)
	return d.h.Handle(ctx, r)
}
