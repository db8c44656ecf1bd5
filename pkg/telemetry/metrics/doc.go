// Package metrics provides an optional Prometheus collector for the
// expression engine.
//
// The collector is injected into the engine rather than registered through
// package-level globals, so multiple engines, each built from its own
// registry snapshot, can share one collector, or use none:
//
//	registry := prometheus.NewRegistry()
//	collector := metrics.NewCollector(nil, registry)
//	engine := spdx.New(licenseList, spdx.WithMetrics(collector))
//
// Recorded series:
//
//	<ns>_<sub>_parses_total{result="valid|invalid"}
//	<ns>_<sub>_parse_duration_seconds (histogram)
package metrics
