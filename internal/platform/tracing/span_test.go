package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestTracer_Records(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		in     string
		want   bool
	}{
		{name: "handler span", prefix: "httpapi.Handler.", in: "httpapi.Handler.SubmitRunConfig", want: true},
		{name: "middleware span", prefix: "httpapi.Handler.", in: "httpapi.RequireAdminToken", want: false},
		{name: "no prefix", prefix: "", in: "usecase.ExpirySweeper.Sweep", want: true},
		{name: "blank name", prefix: "", in: "  ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New("test", tt.prefix).Records(tt.in)
			if got != tt.want {
				t.Fatalf("Records(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTracer_StartWithoutParentIsNoop(t *testing.T) {
	ctx := context.Background()
	gotCtx, span := New("test", "").Start(ctx, "usecase.Run")
	if gotCtx != ctx {
		t.Fatalf("expected context to be returned unchanged")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected noop span without a traced parent")
	}
}

func TestTracer_StartUnderParentKeepsTraceID(t *testing.T) {
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), parent)

	_, span := New("test", "").Start(ctx, "usecase.Run")
	defer span.End()

	// The global provider is a noop that propagates the parent span context.
	if span.SpanContext().TraceID() != parent.TraceID() {
		t.Fatalf("expected trace id %s, got %s", parent.TraceID(), span.SpanContext().TraceID())
	}
}
