package harness

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/trickstertwo/xcore"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingDevice counts lines and can fail after a number of successful
// writes.
type countingDevice struct {
	n      atomic.Int64
	failAt int64
	err    error
}

func (d *countingDevice) WriteLine(string) error {
	n := d.n.Add(1)
	if d.err != nil && n > d.failAt {
		return d.err
	}
	return nil
}

func newSink(t *testing.T, l xcore.Level, out, errDev xcore.Device) *xcore.Sink {
	t.Helper()
	s, err := xcore.NewBuilder().WithLevel(l).WithDevices(out, errDev).Build()
	require.NoError(t, err)
	return s
}

func TestLogMessageWritesNTimes(t *testing.T) {
	var out, errBuf xcore.Buffer
	s := newSink(t, xcore.LevelDebug, &out, &errBuf)

	require.NoError(t, LogMessage(s, 3, "info", "hello"))
	require.Equal(t, []string{"hello", "hello", "hello"}, out.Lines())
	require.Empty(t, errBuf.String())
}

func TestLogMessageFatalIsError(t *testing.T) {
	var errBuf xcore.Buffer
	s := newSink(t, xcore.LevelError, xcore.Discard, &errBuf)

	require.NoError(t, LogMessage(s, 2, "fatal", "boom"))
	require.Equal(t, "boom\nboom\n", errBuf.String())
}

func TestLogMessageRejectsUnknownStreamBeforeWriting(t *testing.T) {
	dev := &countingDevice{}
	s := newSink(t, xcore.LevelDebug, dev, dev)

	err := LogMessage(s, 5, "trace", "never")
	require.ErrorIs(t, err, xcore.ErrInvalidArgument)
	require.Contains(t, err.Error(), "'trace'")
	require.Zero(t, dev.n.Load())
}

func TestLogMessageInactiveStreamDrops(t *testing.T) {
	dev := &countingDevice{}
	s := newSink(t, xcore.LevelWarn, dev, xcore.Discard)

	require.NoError(t, LogMessage(s, 10, "debug", "quiet"))
	require.Zero(t, dev.n.Load())
}

func TestLogMessageStopsOnDeviceFault(t *testing.T) {
	boom := errors.New("stream closed")
	dev := &countingDevice{failAt: 2, err: boom}
	s := newSink(t, xcore.LevelDebug, xcore.Discard, dev)

	err := LogMessage(s, 10, "warn", "x")
	require.ErrorIs(t, err, boom)
	require.EqualValues(t, 3, dev.n.Load(), "loop must stop at the first fault")
}

func TestLogMessageMTWritesEveryLine(t *testing.T) {
	const threads, times = 7, 120
	var out xcore.Buffer
	s := newSink(t, xcore.LevelDebug, &out, xcore.Discard)

	require.NoError(t, LogMessageMT(s, threads, times, "debug", "from a thread"))

	lines := out.Lines()
	require.Len(t, lines, threads*times)
	for _, l := range lines {
		require.Equal(t, "from a thread", l)
	}
}

func TestLogMessageMTAcceptsFatal(t *testing.T) {
	var errBuf xcore.Buffer
	s := newSink(t, xcore.LevelDebug, xcore.Discard, &errBuf)

	require.NoError(t, LogMessageMT(s, 3, 2, "fatal", "f"))
	require.Len(t, errBuf.Lines(), 6)
}

func TestLogMessageMTValidatesBeforeSpawning(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	dev := &countingDevice{}
	s := newSink(t, xcore.LevelDebug, dev, dev)

	err := New(s, Options{Logger: zap.New(core)}).LogMessageMT(4, 4, "verbose", "never")
	require.ErrorIs(t, err, xcore.ErrInvalidArgument)
	require.Zero(t, dev.n.Load())
	require.Zero(t, logs.FilterMessage("writer launched").Len())
}

func TestLogMessageMTPropagatesDeviceFault(t *testing.T) {
	boom := errors.New("disk full")
	dev := &countingDevice{failAt: 5, err: boom}
	s := newSink(t, xcore.LevelDebug, xcore.Discard, dev)

	err := LogMessageMT(s, 4, 10, "error", "x")
	require.ErrorIs(t, err, boom)
}

func TestLogMessageMTZeroThreads(t *testing.T) {
	dev := &countingDevice{}
	s := newSink(t, xcore.LevelDebug, dev, dev)

	require.NoError(t, LogMessageMT(s, 0, 10, "info", "x"))
	require.Zero(t, dev.n.Load())
}

func TestLogMessageMTTracesLifecycle(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := newSink(t, xcore.LevelDebug, xcore.Discard, xcore.Discard)

	h := New(s, Options{Logger: zap.New(core)})
	require.NoError(t, h.LogMessageMT(3, 2, "warn", "traced"))

	require.Equal(t, 3, logs.FilterMessage("writer launched").Len())
	require.Equal(t, 3, logs.FilterMessage("writer done").Len())
	require.Equal(t, 6, logs.FilterMessage("injecting message").Len())
	require.Equal(t, 1, logs.FilterMessage("returning to caller").Len())
}
