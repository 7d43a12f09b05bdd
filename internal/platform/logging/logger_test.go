package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"WARNING": "warn",
		" error ": "error",
		"fatal":   "error",
		"":        "info",
		"verbose": "info",
	}
	for raw, want := range cases {
		if got := ParseLevel(raw).String(); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", raw, got, want)
		}
	}
}

func TestLogger_PairsKeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("session_id", "bs_1")

	fetchErr := errors.New("boxscore timeout")
	logger.Warn("expansion fetch failed", "game_code", "7", "error", fetchErr, 42)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entries: got=%d want=1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["session_id"] != "bs_1" || ctx["game_code"] != "7" {
		t.Fatalf("unexpected fields: %v", ctx)
	}
	if ctx["error"] != fetchErr.Error() {
		t.Fatalf("unexpected error field: got=%v want=%s", ctx["error"], fetchErr)
	}
	if _, ok := ctx["arg"]; !ok {
		t.Fatalf("expected dangling value under arg key: %v", ctx)
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{1, 2, 3},
		SpanID:  trace.SpanID{4, 5, 6},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	logger.DebugContext(ctx, "filtered out")
	logger.InfoContext(ctx, "round selected", "round", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entries: got=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["trace_id"] != spanCtx.TraceID().String() || fields["span_id"] != spanCtx.SpanID().String() {
		t.Fatalf("unexpected trace fields: %v", fields)
	}
}

func TestNewJSON_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelInfo, WithOutput(&buf)).Named("browser")

	logger.Info("session opened", "league", "euroleague")
	if err := logger.Sync(); err != nil {
		t.Fatalf("unexpected sync error: %v", err)
	}

	line := buf.String()
	for _, want := range []string{`"msg":"session opened"`, `"league":"euroleague"`, `"logger":"browser"`, `"level":"info"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in %s", want, line)
		}
	}
}

func TestLogger_NilReceiverUsesDefault(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := Default()
	SetDefault(FromZap(zap.New(core)))
	t.Cleanup(func() { SetDefault(previous) })

	var logger *Logger
	logger.Info("fallback")

	if logs.Len() != 1 {
		t.Fatalf("unexpected entries: got=%d want=1", logs.Len())
	}
}
