package observability

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements the lending MetricsCollector interface on a
// Prometheus registry. Counter and histogram vectors are created lazily on
// first use of a metric name; the label keys of that first call define the
// vector's label set.
type PrometheusCollector struct {
	registerer prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

// NewPrometheusCollector creates a collector registering its metrics with
// the given registerer.
func NewPrometheusCollector(registerer prometheus.Registerer) *PrometheusCollector {
	return &PrometheusCollector{
		registerer: registerer,
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

// IncrementCounter increments the counter identified by metric and labels.
func (c *PrometheusCollector) IncrementCounter(metric string, labels map[string]string) {
	c.mu.Lock()
	counterVec, ok := c.counters[metric]
	if !ok {
		counterVec = prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: metric},
			labelKeys(labels),
		)
		c.registerer.MustRegister(counterVec)
		c.counters[metric] = counterVec
	}
	c.mu.Unlock()

	if counter, err := counterVec.GetMetricWith(labels); err == nil {
		counter.Inc()
	}
}

// RecordDuration observes a duration in seconds on the histogram identified
// by metric and labels.
func (c *PrometheusCollector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	c.mu.Lock()
	histogramVec, ok := c.histograms[metric]
	if !ok {
		histogramVec = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: metric, Buckets: prometheus.DefBuckets},
			labelKeys(labels),
		)
		c.registerer.MustRegister(histogramVec)
		c.histograms[metric] = histogramVec
	}
	c.mu.Unlock()

	if histogram, err := histogramVec.GetMetricWith(labels); err == nil {
		histogram.Observe(duration.Seconds())
	}
}

func labelKeys(labels map[string]string) []string {
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
