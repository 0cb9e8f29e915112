package harness

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/trickstertwo/xcore"
)

// scenario is one threshold setting and the exact text expected on the
// stdout-like (debug, info) and stderr-like (warn, error) captures.
type scenario struct {
	level   xcore.Level
	wantOut string
	wantErr string
}

var scenarios = []scenario{
	{
		level:   xcore.LevelDebug,
		wantOut: "This is a debug message\nThis is an info message\n",
		wantErr: "This is a warning message\nThis is an error message\n",
	},
	{
		level:   xcore.LevelError,
		wantOut: "",
		wantErr: "This is an error message\n",
	},
	{
		level:   xcore.LevelDisable,
		wantOut: "",
		wantErr: "",
	},
}

var scenarioMessages = [...]struct {
	ch  xcore.Channel
	msg string
}{
	{xcore.ChannelDebug, "This is a debug message"},
	{xcore.ChannelInfo, "This is an info message"},
	{xcore.ChannelWarn, "This is a warning message"},
	{xcore.ChannelError, "This is an error message"},
}

// OutputDisable captures debug and info into one buffer and warn and error
// into another, writes one message per channel at DEBUG, ERROR and DISABLE,
// and compares each capture with the exact expected text.
//
// The original devices and threshold are restored before returning. Any
// device fault or panic during the sequence is reported as false; it never
// escapes.
func (h *Harness) OutputDisable() (ok bool) {
	var out, errBuf xcore.Buffer

	prevLevel := h.sink.Level()
	var prev [len(xcore.Channels)]xcore.Device
	for i, ch := range xcore.Channels {
		capture := xcore.Device(&out)
		if ch == xcore.ChannelWarn || ch == xcore.ChannelError {
			capture = &errBuf
		}
		prev[i] = h.sink.Redirect(ch, capture)
	}

	defer func() {
		for i, ch := range xcore.Channels {
			h.sink.Redirect(ch, prev[i])
		}
		h.sink.SetLevel(prevLevel)
		if r := recover(); r != nil {
			h.log.Warn("self-check aborted", zap.String("panic", fmt.Sprint(r)))
			ok = false
		}
	}()

	for _, sc := range scenarios {
		out.Reset()
		errBuf.Reset()
		h.sink.SetLevel(sc.level)
		for _, m := range scenarioMessages {
			if err := h.sink.Write(m.ch, m.msg); err != nil {
				h.log.Warn("self-check write failed", zap.Stringer("level", sc.level), zap.Error(err))
				return false
			}
		}
		if got := out.String(); got != sc.wantOut {
			h.log.Debug("unexpected output capture", zap.Stringer("level", sc.level), zap.String("got", got), zap.String("want", sc.wantOut))
			return false
		}
		if got := errBuf.String(); got != sc.wantErr {
			h.log.Debug("unexpected error capture", zap.Stringer("level", sc.level), zap.String("got", got), zap.String("want", sc.wantErr))
			return false
		}
	}
	return true
}
