package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "brewlog"

// Tracer returns the application tracer from the global provider.
//
//	ctx, span := tracing.Tracer().Start(ctx, "roasters.list")
//	defer span.End()
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// Setup installs a global tracer provider sampling the given fraction of
// new traces and the W3C trace-context propagator. Requests arriving with a
// sampled parent are always recorded. The returned function flushes and
// stops the provider.
func Setup(sampleRatio float64) func(context.Context) error {
	switch {
	case sampleRatio < 0:
		sampleRatio = 0
	case sampleRatio > 1:
		sampleRatio = 1
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown
}
