// Package tracing wires OpenTelemetry into the HTTP stack: a sampled
// tracer provider for the process and a middleware that opens one server
// span per request. Trace IDs are echoed in X-Trace-Id and picked up by the
// request log, so a slow list page can be followed from log line to span.
//
//	shutdown := tracing.Setup(cfg.Tracing.SampleRatio)
//	defer shutdown(context.Background())
//	handler = tracing.Middleware(handler)
package tracing
