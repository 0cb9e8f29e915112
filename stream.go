package xcore

import (
	"io"
	"strings"
)

// Stream returns an io.Writer view of ch, so fmt.Fprintln and friends can
// target a channel directly:
//
//	fmt.Fprintln(s.Stream(xcore.ChannelInfo), "listening on", addr)
//
// Every Write is treated as complete: p is split on newlines (a single
// trailing newline is optional) and each piece is forwarded as one line.
// Nothing is held back between calls.
func (s *Sink) Stream(ch Channel) io.Writer {
	return &stream{s: s, ch: ch}
}

type stream struct {
	s  *Sink
	ch Channel
}

func (w *stream) Write(p []byte) (int, error) {
	if len(p) == 0 || !w.s.Active(w.ch) {
		return len(p), nil
	}
	// n counts the bytes of lines already written, terminators included.
	n := 0
	text := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(text, "\n") {
		if err := w.s.Write(w.ch, line); err != nil {
			return n, err
		}
		n = min(n+len(line)+1, len(p))
	}
	return len(p), nil
}
