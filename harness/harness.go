// Package harness drives a sink through three scenarios: a write loop on the
// calling goroutine, the same loop fanned out over many goroutines, and a
// self-check of threshold filtering against captured output.
//
// None of this is part of the stable API of xcore; it exists to exercise the
// sink under realistic use.
package harness

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/trickstertwo/xcore"
)

// Options configures a Harness.
type Options struct {
	// Logger receives thread lifecycle diagnostics at debug level.
	// Defaults to zap.NewNop().
	Logger *zap.Logger
}

// Harness runs the write scenarios against one sink.
type Harness struct {
	sink *xcore.Sink
	log  *zap.Logger
}

// New binds a harness to s.
func New(s *xcore.Sink, opts Options) *Harness {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}
	return &Harness{sink: s, log: l}
}

// LogMessage writes message ntimes to the named stream of s.
// See Harness.LogMessage.
func LogMessage(s *xcore.Sink, ntimes uint, stream, message string) error {
	return New(s, Options{}).LogMessage(ntimes, stream, message)
}

// LogMessageMT writes message ntimes to the named stream of s from each of
// nthreads goroutines. See Harness.LogMessageMT.
func LogMessageMT(s *xcore.Sink, nthreads, ntimes uint, stream, message string) error {
	return New(s, Options{}).LogMessageMT(nthreads, ntimes, stream, message)
}

// OutputDisable runs the threshold self-check on s. See Harness.OutputDisable.
func OutputDisable(s *xcore.Sink) bool {
	return New(s, Options{}).OutputDisable()
}

// LogMessage validates stream ("debug", "info", "warn", "error" or "fatal")
// and then writes message ntimes on the calling goroutine. An invalid stream
// fails with xcore.ErrInvalidArgument before anything is written; the first
// device fault stops the loop and is returned.
func (h *Harness) LogMessage(ntimes uint, stream, message string) error {
	ch, err := xcore.ParseChannel(stream)
	if err != nil {
		return err
	}
	err = h.writeLoop(0, ch, ntimes, message)
	h.log.Debug("returning to caller", zap.Uint("thread", 0))
	return err
}

// LogMessageMT validates stream exactly like LogMessage, then starts nthreads
// goroutines that each run the write loop, and waits for all of them. No
// goroutine is started when validation fails. Lines from different goroutines
// may interleave in any order. The first device fault is returned once every
// writer has finished.
func (h *Harness) LogMessageMT(nthreads, ntimes uint, stream, message string) error {
	ch, err := xcore.ParseChannel(stream)
	if err != nil {
		return err
	}

	h.log.Debug("launching writers", zap.Uint("threads", nthreads))

	var g errgroup.Group
	for i := uint(1); i <= nthreads; i++ {
		id := i
		g.Go(func() error {
			return h.writeLoop(id, ch, ntimes, message)
		})
		h.log.Debug("writer launched", zap.Uint("thread", id))
	}

	h.log.Debug("waiting for writers", zap.Uint("threads", nthreads))
	err = g.Wait()
	h.log.Debug("returning to caller", zap.Uint("thread", 0), zap.Error(err))
	return err
}

func (h *Harness) writeLoop(id uint, ch xcore.Channel, ntimes uint, message string) error {
	for i := uint(0); i < ntimes; i++ {
		if ce := h.log.Check(zap.DebugLevel, "injecting message"); ce != nil {
			ce.Write(
				zap.Uint("thread", id),
				zap.Uint("iteration", i),
				zap.Stringer("stream", ch),
			)
		}
		if err := h.sink.Write(ch, message); err != nil {
			h.log.Debug("writer failed", zap.Uint("thread", id), zap.Error(err))
			return err
		}
	}
	h.log.Debug("writer done", zap.Uint("thread", id))
	return nil
}
