package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config controls metric naming and histogram resolution.
type Config struct {
	// Namespace and Subsystem prefix every metric name.
	// Defaults: "spdxexpr" / "engine".
	Namespace string
	Subsystem string

	// ParseDurationBuckets are the histogram buckets for parse latency,
	// in seconds. The defaults cover the microsecond-to-millisecond
	// range a pure in-process parse lives in.
	ParseDurationBuckets []float64
}

// Collector records expression-engine metrics on a Prometheus registry.
// It is optional: an engine without a collector records nothing.
type Collector struct {
	parses        *prometheus.CounterVec
	parseDuration prometheus.Histogram
}

// NewCollector creates a collector and registers its metrics. If registry
// is nil, the default Prometheus registry is used.
func NewCollector(cfg *Config, registry *prometheus.Registry) *Collector {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "spdxexpr"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "engine"
	}
	if len(cfg.ParseDurationBuckets) == 0 {
		cfg.ParseDurationBuckets = []float64{
			0.000001, 0.000005, 0.00001, 0.00005,
			0.0001, 0.0005, 0.001, 0.005, 0.01,
		}
	}

	c := &Collector{
		parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parses_total",
				Help:      "Expression parses by result.",
			},
			[]string{"result"},
		),
		parseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_duration_seconds",
				Help:      "Expression parse latency in seconds.",
				Buckets:   cfg.ParseDurationBuckets,
			},
		),
	}

	if registry != nil {
		registry.MustRegister(c.parses, c.parseDuration)
	} else {
		prometheus.MustRegister(c.parses, c.parseDuration)
	}
	return c
}

// RecordParse records one parse attempt and its latency.
func (c *Collector) RecordParse(valid bool, duration time.Duration) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	c.parses.WithLabelValues(result).Inc()
	c.parseDuration.Observe(duration.Seconds())
}
