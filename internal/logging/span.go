package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Span represents a logical unit of work tied to a request trace.
type Span struct {
	name   string
	logger *slog.Logger
	start  time.Time
}

// StartSpan derives a child span from ctx. The returned context carries a
// logger annotated with the trace and span identifiers plus any extra attrs.
// A trace is started when ctx does not already belong to one.
func StartSpan(ctx context.Context, name string, attrs ...any) (context.Context, *Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := FromContext(ctx)
	parent := traceFromContext(ctx)

	current := trace{TraceID: parent.TraceID, SpanID: uuid.NewString()}
	if current.TraceID == "" {
		current.TraceID = uuid.NewString()
		logger = logger.With(slog.String("trace_id", current.TraceID))
	}

	logger = logger.With(
		slog.String("span_id", current.SpanID),
		slog.String("span_name", name),
	)
	if parent.SpanID != "" {
		logger = logger.With(slog.String("parent_span_id", parent.SpanID))
	}
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}

	ctx = context.WithValue(ctx, traceKey, current)
	ctx = WithLogger(ctx, logger)

	return ctx, &Span{name: name, logger: logger, start: time.Now()}
}

// End emits a debug entry recording how long the span took.
func (s *Span) End() {
	if s == nil {
		return
	}
	s.logger.Debug("span completed", slog.Duration("duration", time.Since(s.start)))
}
