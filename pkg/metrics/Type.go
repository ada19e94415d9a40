package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry holds every dxgo metric. It is separate from the prometheus default registry so
// embedding programs keep control over what they export.
var Registry = prometheus.NewRegistry()

type Metric interface {
	Collector() prometheus.Collector
}

type Counter struct {
	vec *prometheus.CounterVec
}

type Gauge struct {
	vec *prometheus.GaugeVec
}

type Histogram struct {
	vec *prometheus.HistogramVec
}
