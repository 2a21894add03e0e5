package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := [][]string{
		{"level=DEBUG", "msg=dbg", "a=1"},
		{"level=INFO", "msg=inf", "b=2"},
		{"level=WARN", "msg=wrn", "c=3"},
		{"level=ERROR", "msg=err", "d=4"},
	}
	if !assert.Len(t, lines, len(want)) {
		return
	}
	for i, subs := range want {
		for _, s := range subs {
			assert.Contains(t, lines[i], s)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("store", "auth", "user", "jo@x.com").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "store=auth", "user=jo@x.com", "k=v"} {
		assert.Contains(t, out, s)
	}
}

func TestSlogLogger_With_DoesNotLeakIntoParent(t *testing.T) {
	log, buf := newTestLogger(t)

	_ = log.With("child", "yes")
	log.Info(context.Background(), "parent")

	assert.NotContains(t, buf.String(), "child=yes")
}

func TestSlogLogger_ContextDoesNotPanic(t *testing.T) {
	log, _ := newTestLogger(t)

	ctx := context.TODO()
	log.Info(ctx, "ctx-ok")
	log.Debug(ctx, "ctx-ok")
	log.Warn(ctx, "ctx-ok")
	log.Error(ctx, "ctx-ok")
}
