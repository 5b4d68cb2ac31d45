package httpapi

import (
	"context"

	"github.com/riskibarqy/matchboard/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = tracing.New("matchboard/internal/interfaces/httpapi", "httpapi.Handler.")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return apiTracer.Start(ctx, name)
}
