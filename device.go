package xcore

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
)

// Device is the backend a channel forwards to (Strategy).
// WriteLine appends msg plus a line terminator and flushes before returning.
// Failures are reported to the writer of the line, never swallowed.
type Device interface {
	WriteLine(msg string) error
}

// DeviceFunc adapter.
type DeviceFunc func(msg string) error

func (f DeviceFunc) WriteLine(msg string) error { return f(msg) }

// flusher is an optional interface for buffered writers (e.g. *bufio.Writer).
type flusher interface {
	Flush() error
}

// WriterDevice forwards lines to an io.Writer. Each line is issued as a single
// Write call so that writers with per-call atomicity never split a line.
type WriterDevice struct {
	W io.Writer
}

// NewWriterDevice wraps w. A nil writer behaves like Discard.
func NewWriterDevice(w io.Writer) *WriterDevice {
	if w == nil {
		w = io.Discard
	}
	return &WriterDevice{W: w}
}

func (d *WriterDevice) WriteLine(msg string) error {
	line := make([]byte, 0, len(msg)+1)
	line = append(line, msg...)
	line = append(line, '\n')
	if _, err := d.W.Write(line); err != nil {
		return err
	}
	if f, ok := d.W.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close closes the wrapped writer when it is closable, except for the
// process standard streams.
func (d *WriterDevice) Close() error {
	if d.W == os.Stdout || d.W == os.Stderr {
		return nil
	}
	if c, ok := d.W.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Stdout returns a device writing to the process standard output.
func Stdout() *WriterDevice { return &WriterDevice{W: os.Stdout} }

// Stderr returns a device writing to the process standard error.
func Stderr() *WriterDevice { return &WriterDevice{W: os.Stderr} }

type discard struct{}

func (discard) WriteLine(string) error { return nil }

// Discard drops every line.
var Discard Device = discard{}

// Buffer is an in-memory device. It is safe for concurrent writers, which lets
// tests capture output from many goroutines without a data race.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) WriteLine(msg string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.WriteString(msg)
	b.buf.WriteByte('\n')
	return nil
}

// String returns everything written so far.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Lines returns the captured lines without terminators.
func (b *Buffer) Lines() []string {
	s := b.String()
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}
