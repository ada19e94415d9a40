package metrics

import "github.com/prometheus/client_golang/prometheus"

func register[M Metric](m M) M {
	Registry.MustRegister(m.Collector())
	return m
}

func (c *Counter) Collector() prometheus.Collector { return c.vec }

func (c *Counter) Increment(labels ...string) {
	c.vec.WithLabelValues(labels...).Inc()
}

func (c *Counter) Get() *prometheus.CounterVec {
	return c.vec
}

func (g *Gauge) Collector() prometheus.Collector { return g.vec }

func (g *Gauge) Set(value float64, labels ...string) {
	g.vec.WithLabelValues(labels...).Set(value)
}

func (g *Gauge) Get() *prometheus.GaugeVec {
	return g.vec
}

func (h *Histogram) Collector() prometheus.Collector { return h.vec }

func (h *Histogram) Observe(value float64, labels ...string) {
	h.vec.WithLabelValues(labels...).Observe(value)
}

func (h *Histogram) Get() *prometheus.HistogramVec {
	return h.vec
}
