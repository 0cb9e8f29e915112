package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xcore"
	"github.com/trickstertwo/xcore/device/lokidevice"
	"github.com/trickstertwo/xcore/device/redisdevice"
	"github.com/trickstertwo/xcore/device/rotate"
	"github.com/trickstertwo/xcore/device/slogdevice"
	"github.com/trickstertwo/xcore/device/wsdevice"
	"github.com/trickstertwo/xcore/device/zapdevice"
	"github.com/trickstertwo/xcore/device/zerologdevice"
)

// Build validates the configuration, opens every device and returns the sink.
// Channels sharing a file, redis list or websocket URL share one device, and a
// "fatal" entry stands in for "error" when the latter is absent. logger only
// receives diagnostics; nil means no-op.
func (c *Config) Build(ctx context.Context, logger *zap.Logger) (*xcore.Sink, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := xcore.ParseLevel(c.Level)

	b := xcore.NewBuilder().WithLevel(level)
	o := &opener{ctx: ctx, log: logger, shared: map[string]xcore.Device{}, zaps: map[string]*zap.Logger{}}

	for _, ch := range xcore.Channels {
		spec, ok := c.spec(ch)
		if !ok {
			continue
		}
		d, err := o.open(spec, ch)
		if err != nil {
			return nil, multierr.Append(
				fmt.Errorf("open %s device for %s: %w", spec.Type, ch, err),
				o.closeAll(),
			)
		}
		b.WithDevice(ch, d)
	}
	return b.Build()
}

// spec returns the device configured for ch. "fatal" is accepted as a key
// for the error channel unless "error" is present too.
func (c *Config) spec(ch xcore.Channel) (DeviceSpec, bool) {
	if spec, ok := c.Devices[ch.String()]; ok {
		return spec, true
	}
	if ch == xcore.ChannelError {
		spec, ok := c.Devices["fatal"]
		return spec, ok
	}
	return DeviceSpec{}, false
}

// opener tracks what Build has opened so shared devices open once and a
// failure can release everything.
type opener struct {
	ctx     context.Context
	log     *zap.Logger
	shared  map[string]xcore.Device
	zaps    map[string]*zap.Logger
	closers []io.Closer
}

func (o *opener) open(spec DeviceSpec, ch xcore.Channel) (xcore.Device, error) {
	key := spec.shareKey()
	if d, ok := o.shared[key]; ok && key != "" {
		return d, nil
	}
	d, err := spec.open(o, ch)
	if err != nil {
		return nil, err
	}
	if cl, ok := d.(io.Closer); ok {
		o.closers = append(o.closers, cl)
	}
	if key != "" {
		o.shared[key] = d
	}
	o.log.Debug("device opened", zap.Stringer("channel", ch), zap.String("type", spec.Type))
	return d, nil
}

func (o *opener) closeAll() error {
	var err error
	for _, cl := range o.closers {
		err = multierr.Append(err, cl.Close())
	}
	return err
}

// zapLogger returns the JSON logger for a zap device writing to path. It runs
// at debug level without sampling, so the sink threshold is the only filter.
func (o *opener) zapLogger(path string) (*zap.Logger, error) {
	if path == "" {
		path = "stderr"
	}
	if l, ok := o.zaps[path]; ok {
		return l, nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.Sampling = nil
	cfg.OutputPaths = []string{path}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	o.zaps[path] = l
	return l, nil
}

// shareKey identifies devices that must not be opened twice.
func (d DeviceSpec) shareKey() string {
	switch d.Type {
	case TypeFile:
		return d.Type + "|" + d.Path
	case TypeRedis:
		return d.Type + "|" + d.URL + "|" + d.Key
	case TypeWebsocket:
		return d.Type + "|" + d.URL
	}
	return ""
}

func (d DeviceSpec) open(o *opener, ch xcore.Channel) (xcore.Device, error) {
	switch d.Type {
	case TypeStdout:
		return xcore.Stdout(), nil
	case TypeStderr:
		return xcore.Stderr(), nil
	case TypeDiscard:
		return xcore.Discard, nil
	case TypeFile:
		return rotate.New(rotate.Options{
			Filename:   d.Path,
			MaxSizeMB:  d.MaxSizeMB,
			MaxBackups: d.MaxBackups,
			MaxAgeDays: d.MaxAgeDays,
			Compress:   d.Compress,
			LocalTime:  true,
		})
	case TypeZap:
		l, err := o.zapLogger(d.Path)
		if err != nil {
			return nil, err
		}
		return zapdevice.ForChannel(l, ch), nil
	case TypeZerolog:
		zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
		return zerologdevice.ForChannel(zl, os.Stderr, ch), nil
	case TypeSlog:
		return slogdevice.ForChannel(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})), ch), nil
	case TypeRedis:
		return redisdevice.Dial(o.ctx, d.URL, d.Key)
	case TypeLoki:
		labels := map[string]string{"channel": ch.String()}
		for k, v := range d.Labels {
			labels[k] = v
		}
		return lokidevice.New(d.URL, lokidevice.WithLabels(labels))
	case TypeWebsocket:
		return wsdevice.Dial(o.ctx, d.URL, nil)
	}
	return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidConfig, d.Type)
}
