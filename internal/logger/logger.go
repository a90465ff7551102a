// Package logger configures the application's logging and
// observability.
//
// It uses zerolog for structured logging and optionally integrates
// with New Relic: when a license key is configured, the agent is
// started and application logs are forwarded through the agent's
// zerolog writer so log lines carry trace context.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/chinsis/paramdemo/internal/config"
)

// LoggerService owns the optional New Relic application instance.
//
// A zero LoggerService (or one built without a license key) is valid:
// GetApplication returns nil and every consumer degrades to a no-op.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes New Relic if a license key is
// configured; otherwise it returns a disabled service.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	obs := cfg.Observability
	if obs == nil || obs.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(obs.ServiceName),
		newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
	}
	if obs.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize new relic: %w", err)
	}

	return &LoggerService{app: app}, nil
}

// GetApplication returns the New Relic application, or nil when disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.app
}

// Shutdown flushes and stops the New Relic agent, waiting at most
// timeout. Safe to call when New Relic is disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s != nil && s.app != nil {
		s.app.Shutdown(timeout)
	}
}

// New builds the application's root zerolog logger from config.
//
// Format "console" writes human-friendly output to stderr; "json"
// writes machine output to stdout. When New Relic log forwarding is
// enabled, the JSON stream goes through the agent's writer.
func New(cfg *config.Config, service *LoggerService) *zerolog.Logger {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if obs.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	} else if app := service.GetApplication(); app != nil && obs.NewRelic.AppLogForwardingEnabled {
		out = zerologWriter.New(os.Stdout, app)
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Str("env", obs.Environment).
		Logger()

	return &logger
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span IDs, so log lines correlate with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()
	ctx := logger.With()
	if md.TraceID != "" {
		ctx = ctx.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		ctx = ctx.Str("span.id", md.SpanID)
	}
	return ctx.Logger()
}
