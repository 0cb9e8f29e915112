package slogdevice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/trickstertwo/xcore"
)

func TestDevice_JSONHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	d := ForChannel(slog.New(h), xcore.ChannelInfo)

	if err := d.WriteLine("state changed"); err != nil {
		t.Fatalf("write: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["msg"] != "state changed" {
		t.Fatalf("msg mismatch: got %v", m["msg"])
	}
	if m["level"] != "INFO" {
		t.Fatalf("level mismatch: got %v", m["level"])
	}
	if m["channel"] != "info" {
		t.Fatalf("channel mismatch: got %v", m["channel"])
	}
}

func TestDevice_LevelsMatchSlog(t *testing.T) {
	t.Parallel()

	if toSlog(xcore.LevelWarn) != slog.LevelWarn || toSlog(xcore.LevelDebug) != slog.LevelDebug {
		t.Fatalf("sink levels must share slog numbering")
	}
}

var errClosedStream = errors.New("closed stream")

type failHandler struct{}

func (failHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (failHandler) Handle(context.Context, slog.Record) error { return errClosedStream }
func (h failHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h failHandler) WithGroup(string) slog.Handler           { return h }

func TestDevice_HandlerFaultPropagates(t *testing.T) {
	t.Parallel()

	s, err := xcore.NewBuilder().
		WithDevice(xcore.ChannelError, ForChannel(slog.New(failHandler{}), xcore.ChannelError)).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := s.Error("x"); !errors.Is(err, errClosedStream) {
		t.Fatalf("expected handler fault from sink, got %v", err)
	}
}

func TestDevice_HandlerLevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})
	if err := ForChannel(slog.New(h), xcore.ChannelDebug).WriteLine("hidden"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %s", buf.String())
	}
}
