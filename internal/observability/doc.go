// Package observability provides ready-made implementations of the
// dependency-free Logger and MetricsCollector interfaces consumed by the
// lending engine and the stores: a log/slog backed logger and a Prometheus
// backed metrics collector.
package observability
