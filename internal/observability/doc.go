// Package observability groups the logging, tracing and metrics helpers
// shared by the API server.
//
//	logger := logging.New(logging.Options{Format: "json", Level: "info"})
//	shutdown := tracing.Setup(0.1)
//	defer shutdown(ctx)
//
//	handler := tracing.Middleware(mux)
package observability
