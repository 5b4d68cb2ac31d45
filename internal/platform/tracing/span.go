// Package tracing opens child spans only under an already-traced request, so
// unsampled paths (health probes, cron ticks) cost nothing.
package tracing

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var noopSpan = trace.SpanFromContext(context.Background())

type Tracer struct {
	tracer trace.Tracer
	prefix string
}

// New returns a Tracer for the instrumentation scope. When prefix is set, only
// span names carrying it are recorded.
func New(scope, prefix string) *Tracer {
	return &Tracer{tracer: otel.Tracer(scope), prefix: prefix}
}

func (t *Tracer) Records(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return t.prefix == "" || strings.HasPrefix(name, t.prefix)
}

func (t *Tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !t.Records(name) {
		return ctx, noopSpan
	}
	return t.tracer.Start(ctx, name, opts...)
}
