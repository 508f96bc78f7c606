package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"brewlog/internal/config"
	"brewlog/internal/infra/adapter/persistence/sqlstore"
	"brewlog/internal/infra/db"
	"brewlog/internal/infra/extractor"
	"brewlog/internal/observability/logging"
	"brewlog/internal/observability/metrics"
	"brewlog/internal/observability/tracing"
	"brewlog/internal/web"
	"brewlog/pkg/security/csp"

	extractUC "brewlog/internal/usecase/extract"
	roastUC "brewlog/internal/usecase/roast"
	roasterUC "brewlog/internal/usecase/roaster"
	"brewlog/internal/usecase/telemetry"

	hhttp "brewlog/internal/handler/http"
	"brewlog/internal/handler/http/requestid"
	hroast "brewlog/internal/handler/http/roast"
	hroaster "brewlog/internal/handler/http/roaster"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)
	shutdownTracing := tracing.Setup(cfg.Tracing.SampleRatio)

	database := initDatabase(logger, cfg.Database)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	components := setupServer(logger, database, cfg)
	runServer(logger, components, cfg, shutdownTracing)
}

// initLogger initializes the default structured logger.
func initLogger(cfg config.LogConfig) *slog.Logger {
	logger := logging.New(logging.Options{Format: cfg.Format, Level: cfg.Level})
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger, cfg config.DatabaseConfig) *sql.DB {
	database, driver, err := db.Open(context.Background(), cfg.URL, db.ConnectionConfigFromEnv())
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database, driver); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler   http.Handler
	DB        *sql.DB
	Telemetry *telemetry.Recorder
}

// setupServer wires repositories, services and handlers.
func setupServer(logger *slog.Logger, database *sql.DB, cfg config.AppConfig) *ServerComponents {
	roasters := sqlstore.NewRoasterRepo(database)
	roasts := sqlstore.NewRoastRepo(database)

	recorder := telemetry.NewRecorder(sqlstore.NewUsageRepo(database), telemetry.Config{
		QueueSize:    cfg.Telemetry.QueueSize,
		StoreTimeout: cfg.Telemetry.StoreTimeout,
	}, logger)

	ext, err := extractor.New(extractor.Config{
		Provider:      cfg.Extractor.Provider,
		APIKey:        cfg.Extractor.APIKey,
		Model:         cfg.Extractor.Model,
		BaseURL:       cfg.Extractor.BaseURL,
		Timeout:       cfg.Extractor.Timeout,
		RatePerSecond: cfg.Extractor.RatePerSecond,
	})
	if err != nil {
		logger.Error("failed to configure extractor", slog.Any("error", err))
		os.Exit(1)
	}
	if ext == nil {
		logger.Warn("roaster extraction is disabled")
	} else {
		logger.Info("roaster extraction enabled",
			slog.String("provider", ext.Provider()),
			slog.Duration("timeout", cfg.Extractor.Timeout),
			slog.Int("client_limit", cfg.Extractor.ClientLimit),
			slog.Duration("client_window", cfg.Extractor.ClientWindow))
	}

	roasterSvc := &roasterUC.Service{Roasters: roasters, Roasts: roasts}
	roastSvc := &roastUC.Service{Roasts: roasts, Roasters: roasters}
	extractSvc := &extractUC.Service{Extractor: ext, Usage: recorder}
	views := web.MustNewRenderer()

	extractLimiter := hhttp.NewRateLimiter(cfg.Extractor.ClientLimit, cfg.Extractor.ClientWindow)

	mux := http.NewServeMux()
	hroaster.Register(mux, hroaster.Deps{
		Svc:          roasterSvc,
		Extract:      extractSvc,
		Views:        views,
		Logger:       logger,
		ExtractLimit: extractLimiter.Limit,
	})
	hroast.Register(mux, hroast.Deps{
		Svc:      roastSvc,
		Roasters: roasterSvc,
		Views:    views,
		Logger:   logger,
	})

	// ヘルスチェック・メトリクス
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: cfg.Version, Extractor: ext})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /static/", web.StaticHandler())
	mux.Handle("GET /{$}", http.RedirectHandler("/roasters", http.StatusFound))

	return &ServerComponents{
		Handler:   applyMiddleware(logger, mux, cfg),
		DB:        database,
		Telemetry: recorder,
	}
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Recovery → Logging → Body Limit → CSP → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg config.AppConfig) http.Handler {
	apiPolicy := csp.APIPolicy()
	cspConfig := hhttp.CSPConfig{
		Enabled: cfg.CSP.Enabled,
		Default: csp.PagePolicy(),
		PathPolicies: map[string]*csp.Policy{
			"/health":  apiPolicy,
			"/ready":   apiPolicy,
			"/live":    apiPolicy,
			"/metrics": apiPolicy,
		},
		ReportOnly: cfg.CSP.ReportOnly,
	}
	if cfg.CSP.Enabled {
		logger.Info("CSP enabled", slog.Bool("report_only", cfg.CSP.ReportOnly))
	} else {
		logger.Warn("CSP is disabled")
	}

	// Apply in reverse order (innermost to outermost)
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.ContentSecurityPolicy(cspConfig)(chain)
	chain = hhttp.LimitRequestBody(cfg.HTTP.BodyLimit)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown: the
// server drains first, then queued usage events, then spans.
func runServer(logger *slog.Logger, components *ServerComponents, cfg config.AppConfig, shutdownTracing func(context.Context) error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopDBStats := metrics.StartDBStatsReporter(ctx, components.DB, 15*time.Second)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	stopDBStats()

	if err := components.Telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown failed", slog.Any("error", err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
