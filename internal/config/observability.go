package config

import "fmt"

// ObservabilityConfig groups configuration for telemetry and runtime
// visibility: structured logging and the optional New Relic agent.
//
// ServiceName and Environment are overridden from the primary config
// during Load; configuring them directly has no effect.
type ObservabilityConfig struct {
	ServiceName string `koanf:"service_name"`
	Environment string `koanf:"environment"`

	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold; anything below it is dropped.
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format: "json" or "console".
	Format string `koanf:"format" validate:"required"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
// An empty LicenseKey means "disabled": the agent is not started and
// all tracing middleware degrades to no-ops.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// DefaultObservabilityConfig returns the config used when the
// environment provides no observability block.
func DefaultObservabilityConfig() *ObservabilityConfig {
	cfg := &ObservabilityConfig{}
	cfg.applyDefaults()
	return cfg
}

func (o *ObservabilityConfig) applyDefaults() {
	if o.Logging.Level == "" {
		o.Logging.Level = "info"
	}
	if o.Logging.Format == "" {
		o.Logging.Format = "json"
	}
}

// Validate checks constraints the validator tags cannot express.
func (o *ObservabilityConfig) Validate() error {
	switch o.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q (want json or console)", o.Logging.Format)
	}

	switch o.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("unsupported log level %q", o.Logging.Level)
	}

	return nil
}
