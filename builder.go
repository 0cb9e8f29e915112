package xcore

import (
	"fmt"

	"github.com/trickstertwo/xclock"
)

// Config is everything a Sink starts with.
type Config struct {
	Level     Level
	Devices   [numChannels]Device // nil entries default to Discard
	Observers []Observer
	Clock     xclock.Clock // optional; defaults to xclock.Default()
}

// Builder collects the threshold, per-channel devices and observers of a
// sink before Build validates them.
type Builder struct {
	cfg    Config
	nilDev []Channel
}

// NewBuilder starts at LevelDebug with every channel on Discard.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{Level: LevelDebug}}
}

func (b *Builder) WithLevel(l Level) *Builder {
	b.cfg.Level = l
	return b
}

// WithDevice binds ch to d. Binding to nil makes Build fail with ErrNilDevice.
func (b *Builder) WithDevice(ch Channel, d Device) *Builder {
	if ch >= numChannels {
		return b
	}
	if d == nil {
		b.nilDev = append(b.nilDev, ch)
		return b
	}
	b.cfg.Devices[ch] = d
	return b
}

// WithDevices binds the debug/info pair to out and the warn/error pair to err,
// the same split the process standard streams use.
func (b *Builder) WithDevices(out, err Device) *Builder {
	return b.WithDevice(ChannelDebug, out).
		WithDevice(ChannelInfo, out).
		WithDevice(ChannelWarn, err).
		WithDevice(ChannelError, err)
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build fails with ErrNilDevice if a channel was bound to nil and with
// ErrInvalidArgument for an undefined level.
func (b *Builder) Build() (*Sink, error) {
	if len(b.nilDev) > 0 {
		return nil, fmt.Errorf("%w: channel %s", ErrNilDevice, b.nilDev[0])
	}
	if !b.cfg.Level.Valid() {
		return nil, fmt.Errorf("%w: level %d", ErrInvalidArgument, int(b.cfg.Level))
	}
	return newSink(b.cfg), nil
}
