package xcore

import (
	"fmt"
	"io"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/trickstertwo/xclock"
	"go.uber.org/multierr"
)

// Sink owns the four channels and the threshold they share.
//
// Writes take no lock: the threshold and bindings are read atomically and the
// line goes straight to the device. Concurrent writers get no ordering
// guarantee, and rebinding a channel while writers are in flight is a race the
// caller must avoid (quiesce writers first).
type Sink struct {
	level   atomic.Int64
	devices [numChannels]atomic.Pointer[binding]
	clock   xclock.Clock

	// observers is replaced wholesale under obsMu; Write loads the current
	// slice without locking and never mutates it.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

// binding boxes a Device so it fits an atomic.Pointer.
type binding struct {
	d Device
}

// newSink fills in Discard for unbound channels and the process clock when
// none was configured.
func newSink(cfg Config) *Sink {
	s := &Sink{clock: cfg.Clock}
	if s.clock == nil {
		s.clock = xclock.Default()
	}
	s.level.Store(int64(cfg.Level.clamp()))
	for i := range s.devices {
		d := cfg.Devices[i]
		if d == nil {
			d = Discard
		}
		s.devices[i].Store(&binding{d: d})
	}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		s.observers.Store(obs)
	} else {
		s.observers.Store(([]Observer)(nil))
	}
	return s
}

// Level returns the current threshold.
func (s *Sink) Level() Level { return Level(s.level.Load()) }

// SetLevel changes the threshold shared by every channel. It cannot fail;
// undefined values are rounded down to a defined level.
func (s *Sink) SetLevel(l Level) {
	l = l.clamp()
	old := Level(s.level.Swap(int64(l)))
	if old == l {
		return
	}
	for _, o := range s.snapshotObservers() {
		o.OnConfig(ConfigChange{OldLevel: old, NewLevel: l})
	}
}

// Active reports whether a write to ch would reach its device.
// Use to avoid formatting messages in hot paths when disabled.
func (s *Sink) Active(ch Channel) bool {
	if ch >= numChannels {
		return false
	}
	l := s.Level()
	return l != LevelDisable && ch.Severity() >= l
}

// Write appends msg as one line to the device bound to ch when ch is active,
// and drops it otherwise. Device failures are returned wrapped, never retried.
func (s *Sink) Write(ch Channel, msg string) error {
	if !s.Active(ch) {
		return nil
	}
	if err := s.devices[ch].Load().d.WriteLine(msg); err != nil {
		return fmt.Errorf("xcore: write %s: %w", ch, err)
	}

	v := s.observers.Load()
	if v == nil {
		return nil
	}
	obs := v.([]Observer)
	if len(obs) == 0 {
		return nil
	}
	e := EventData{Channel: ch, Msg: msg, At: s.clock.Now()}
	for _, o := range obs {
		o.OnEvent(e)
	}
	return nil
}

// Redirect binds ch to d and returns the previous device so it can be
// restored. A nil d binds Discard.
func (s *Sink) Redirect(ch Channel, d Device) Device {
	if ch >= numChannels {
		return nil
	}
	if d == nil {
		d = Discard
	}
	return s.devices[ch].Swap(&binding{d: d}).d
}

// Device returns the device currently bound to ch.
func (s *Sink) Device(ch Channel) Device {
	if ch >= numChannels {
		return nil
	}
	return s.devices[ch].Load().d
}

func (s *Sink) Debug(msg string) error { return s.Write(ChannelDebug, msg) }
func (s *Sink) Info(msg string) error  { return s.Write(ChannelInfo, msg) }
func (s *Sink) Warn(msg string) error  { return s.Write(ChannelWarn, msg) }
func (s *Sink) Error(msg string) error { return s.Write(ChannelError, msg) }

func (s *Sink) Debugf(format string, args ...any) error {
	return s.writef(ChannelDebug, format, args)
}

func (s *Sink) Infof(format string, args ...any) error {
	return s.writef(ChannelInfo, format, args)
}

func (s *Sink) Warnf(format string, args ...any) error {
	return s.writef(ChannelWarn, format, args)
}

func (s *Sink) Errorf(format string, args ...any) error {
	return s.writef(ChannelError, format, args)
}

func (s *Sink) writef(ch Channel, format string, args []any) error {
	if !s.Active(ch) {
		return nil
	}
	return s.Write(ch, fmt.Sprintf(format, args...))
}

func (s *Sink) snapshotObservers() []Observer {
	v := s.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (s *Sink) AddObserver(o Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	cur := s.snapshotObservers()
	cur = append(cur, o)
	s.observers.Store(cur)
}

// Close closes every bound device that implements io.Closer, once per device.
// Channels stay bound; writes after Close see whatever the devices report.
func (s *Sink) Close() error {
	var (
		err    error
		closed []io.Closer
	)
	for i := range s.devices {
		c, ok := s.devices[i].Load().d.(io.Closer)
		if !ok || containsCloser(closed, c) {
			continue
		}
		closed = append(closed, c)
		err = multierr.Append(err, c.Close())
	}
	return err
}

func containsCloser(list []io.Closer, c io.Closer) bool {
	if !reflect.TypeOf(c).Comparable() {
		return false
	}
	for _, x := range list {
		if reflect.TypeOf(x) == reflect.TypeOf(c) && x == c {
			return true
		}
	}
	return false
}
