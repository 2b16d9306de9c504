package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, "ParseLevel(%q)", in)
		assert.Equal(t, want, got, "ParseLevel(%q)", in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(WithRequestID(context.Background(), "")))
}

func TestStartSpanNesting(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, slog.LevelDebug))

	ctx, parent := StartSpan(ctx, "parent")
	traceID := TraceIDFromContext(ctx)
	parentID := SpanIDFromContext(ctx)
	require.NotEmpty(t, traceID)
	require.NotEmpty(t, parentID)

	childCtx, child := StartSpan(ctx, "child", "videoId", "abc123")
	assert.Equal(t, traceID, TraceIDFromContext(childCtx), "child span should share the trace id")
	assert.NotEqual(t, parentID, SpanIDFromContext(childCtx), "child span should have its own id")

	child.End()
	parent.End()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, buf.String())

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "child", entry["span_name"])
	assert.Equal(t, parentID, entry["parent_span_id"])
	assert.Equal(t, "abc123", entry["videoId"])
	assert.Equal(t, traceID, entry["trace_id"])
}

func TestNilSpanEnd(t *testing.T) {
	var span *Span
	assert.NotPanics(t, span.End)
}
