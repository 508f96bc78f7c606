// Package config loads the API server configuration: an optional YAML file
// overlaid by environment variables. Secrets are only read from the
// environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"brewlog/internal/usecase/telemetry"
	envcfg "brewlog/pkg/config"
)

// DefaultPath is read when BREWLOG_CONFIG is unset. A missing default file
// is not an error.
const DefaultPath = "config.yaml"

// AppConfig is the full server configuration.
type AppConfig struct {
	Version   string          `yaml:"version"`
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Log       LogConfig       `yaml:"log"`
	Tracing   TracingConfig   `yaml:"tracing"`
	CSP       CSPConfig       `yaml:"csp"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	BodyLimit       int64         `yaml:"body_limit"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// URL is a postgres:// DSN or a SQLite file path.
	URL string `yaml:"url"`
}

type ExtractorConfig struct {
	// Provider is none, claude or openai.
	Provider      string        `yaml:"provider"`
	Model         string        `yaml:"model"`
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	RatePerSecond float64       `yaml:"rate_per_second"`
	// ClientLimit is the number of extraction requests one client may make
	// per ClientWindow.
	ClientLimit  int           `yaml:"client_limit"`
	ClientWindow time.Duration `yaml:"client_window"`

	APIKey string `yaml:"-"`
}

type TelemetryConfig struct {
	QueueSize    int           `yaml:"queue_size"`
	StoreTimeout time.Duration `yaml:"store_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type TracingConfig struct {
	SampleRatio float64 `yaml:"sample_ratio"`
}

type CSPConfig struct {
	Enabled    bool `yaml:"enabled"`
	ReportOnly bool `yaml:"report_only"`
}

// Default returns the configuration used when nothing is set.
func Default() AppConfig {
	return AppConfig{
		Version: "dev",
		HTTP: HTTPConfig{
			Addr:            ":8080",
			BodyLimit:       1 << 20,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{URL: "file:brewlog.db?_foreign_keys=on"},
		Extractor: ExtractorConfig{
			Provider:     "none",
			Timeout:      30 * time.Second,
			ClientLimit:  10,
			ClientWindow: time.Minute,
		},
		Telemetry: TelemetryConfig{QueueSize: telemetry.DefaultQueueSize, StoreTimeout: telemetry.DefaultStoreTimeout},
		Log:       LogConfig{Level: "info", Format: "json"},
		Tracing:   TracingConfig{SampleRatio: 0.1},
		CSP:       CSPConfig{Enabled: true},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (or
// BREWLOG_CONFIG, or DefaultPath), then environment variables.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("BREWLOG_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}
	if err := readFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return AppConfig{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func readFile(path string, cfg *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *AppConfig) {
	cfg.Version = envcfg.GetEnvString("VERSION", cfg.Version)

	cfg.HTTP.Addr = envcfg.GetEnvString("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.BodyLimit = int64(envcfg.GetEnvPositiveInt("REQUEST_BODY_LIMIT", int(cfg.HTTP.BodyLimit)))
	cfg.HTTP.ShutdownTimeout = envcfg.GetEnvPositiveDuration("SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)

	cfg.Database.URL = envcfg.GetEnvString("DATABASE_URL", cfg.Database.URL)

	cfg.Extractor.Provider = strings.ToLower(envcfg.GetEnvString("EXTRACTOR_PROVIDER", cfg.Extractor.Provider))
	cfg.Extractor.Model = envcfg.GetEnvString("EXTRACTOR_MODEL", cfg.Extractor.Model)
	cfg.Extractor.BaseURL = envcfg.GetEnvString("EXTRACTOR_BASE_URL", cfg.Extractor.BaseURL)
	cfg.Extractor.Timeout = envcfg.GetEnvPositiveDuration("EXTRACTOR_TIMEOUT", cfg.Extractor.Timeout)
	cfg.Extractor.RatePerSecond = envcfg.GetEnvFloat("EXTRACTOR_RATE_PER_SECOND", cfg.Extractor.RatePerSecond)
	cfg.Extractor.ClientLimit = envcfg.GetEnvPositiveInt("EXTRACT_RATE_LIMIT", cfg.Extractor.ClientLimit)
	cfg.Extractor.ClientWindow = envcfg.GetEnvPositiveDuration("EXTRACT_RATE_WINDOW", cfg.Extractor.ClientWindow)
	switch cfg.Extractor.Provider {
	case "claude":
		cfg.Extractor.APIKey = envcfg.GetEnvString("ANTHROPIC_API_KEY", "")
	case "openai":
		cfg.Extractor.APIKey = envcfg.GetEnvString("OPENAI_API_KEY", "")
	}

	cfg.Telemetry.QueueSize = envcfg.GetEnvPositiveInt("TELEMETRY_QUEUE_SIZE", cfg.Telemetry.QueueSize)
	cfg.Telemetry.StoreTimeout = envcfg.GetEnvPositiveDuration("TELEMETRY_STORE_TIMEOUT", cfg.Telemetry.StoreTimeout)

	cfg.Log.Level = envcfg.GetEnvString("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envcfg.GetEnvString("LOG_FORMAT", cfg.Log.Format)

	cfg.Tracing.SampleRatio = envcfg.GetEnvFloat("TRACING_SAMPLE_RATIO", cfg.Tracing.SampleRatio)

	cfg.CSP.Enabled = envcfg.GetEnvBool("CSP_ENABLED", cfg.CSP.Enabled)
	cfg.CSP.ReportOnly = envcfg.GetEnvBool("CSP_REPORT_ONLY", cfg.CSP.ReportOnly)
}

// Validate reports the first unusable setting.
func (c AppConfig) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("http addr cannot be empty")
	}
	if strings.TrimSpace(c.Database.URL) == "" {
		return errors.New("database url cannot be empty")
	}
	if c.HTTP.BodyLimit <= 0 {
		return errors.New("http body_limit must be positive")
	}
	switch c.Extractor.Provider {
	case "", "none":
	case "claude", "openai":
		if c.Extractor.APIKey == "" {
			return fmt.Errorf("extractor provider %q requires an API key", c.Extractor.Provider)
		}
	default:
		return fmt.Errorf("extractor provider %q is unsupported", c.Extractor.Provider)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return errors.New("tracing sample_ratio must be between 0 and 1")
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log format %q is unsupported", c.Log.Format)
	}
	return nil
}
