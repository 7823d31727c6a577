package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Samples *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{Samples: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bigo",
			Name:      "samples",
		}, []string{"experiment", "phase"}),
	}
}
