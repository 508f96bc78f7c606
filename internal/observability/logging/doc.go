// Package logging builds the application's slog loggers and carries
// request-scoped fields.
//
//	logger := logging.New(logging.Options{Format: cfg.Log.Format, Level: cfg.Log.Level})
//	slog.SetDefault(logger)
//
//	func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
//	    logger := logging.WithRequestID(r.Context(), h.logger())
//	    logger.Info("list served")
//	}
//
// Attributes whose key names a secret (api_key, password, token, ...) are
// redacted before they reach the output.
package logging
