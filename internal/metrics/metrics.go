package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Samples)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

func (m *Metrics) Increment(labels ...string) {
	m.prometheus.Samples.WithLabelValues(labels...).Inc()
}

func (m *Metrics) Add(v float64, labels ...string) {
	m.prometheus.Samples.WithLabelValues(labels...).Add(v)
}
