package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewCounter(name string, help string, labels []string) *Counter {
	return register(&Counter{
		vec: prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels),
	})
}

func NewGauge(name string, help string, labels []string) *Gauge {
	return register(&Gauge{
		vec: prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labels),
	})
}

// NewHistogram buckets latencies from 5ms up to roughly 10s.
func NewHistogram(name string, help string, labels []string) *Histogram {
	return register(&Histogram{
		vec: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}, labels),
	})
}

// RegisterRuntime adds the Go runtime and process collectors. Long running binaries call it once.
func RegisterRuntime() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
