package lending

import (
	"time"
)

// Logger interface for operational logging, warnings, and error reporting.
// It is dependency-free so callers can plug in slog, OpenTelemetry bridges,
// or anything else with key-value args.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting engine performance and
// operational metrics. Implementations map metric names and label sets onto
// their backend (Prometheus, OpenTelemetry, ...).
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
}
