// Package rotate provides a size-rotated file device backed by lumberjack.
package rotate

import (
	"errors"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/trickstertwo/xcore"
)

// Options mirrors the lumberjack knobs the sink exposes.
type Options struct {
	Filename   string
	MaxSizeMB  int // megabytes before rotation; 0 means lumberjack's 100
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	LocalTime  bool
}

// Device appends lines to a rotating file. The file is opened lazily on the
// first line.
type Device struct {
	w    *xcore.WriterDevice
	file *lumberjack.Logger
}

var errNoFilename = errors.New("rotate: filename is required")

// New creates a rotating file device.
func New(o Options) (*Device, error) {
	if o.Filename == "" {
		return nil, errNoFilename
	}
	lj := &lumberjack.Logger{
		Filename:   o.Filename,
		MaxSize:    o.MaxSizeMB,
		MaxBackups: o.MaxBackups,
		MaxAge:     o.MaxAgeDays,
		Compress:   o.Compress,
		LocalTime:  o.LocalTime,
	}
	return &Device{w: xcore.NewWriterDevice(lj), file: lj}, nil
}

func (d *Device) WriteLine(msg string) error { return d.w.WriteLine(msg) }

// Rotate closes the current file, renames it with a timestamp and starts a
// fresh one.
func (d *Device) Rotate() error { return d.file.Rotate() }

// Close releases the file. A later line reopens it.
func (d *Device) Close() error { return d.file.Close() }
