package bench

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "sortbench"

// Metrics 측정 결과를 Prometheus 레지스트리에 기록한다.
// nil *Metrics 의 메서드는 아무것도 하지 않는다
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	trials   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "sort_duration_seconds",
			Help:      "Wall-clock duration of a single sort call.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12),
		}, []string{"distribution", "algorithm"}),
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "trials_total",
			Help:      "Number of timed sort calls.",
		}, []string{"distribution", "algorithm"}),
	}
	m.registry.MustRegister(m.duration, m.trials)
	return m
}

// Observe 결과 하나 기록
func (m *Metrics) Observe(r Record) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(r.Distribution, r.Algorithm).Observe(r.Elapsed.Seconds())
	m.trials.WithLabelValues(r.Distribution, r.Algorithm).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile node_exporter textfile 형식으로 저장
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}
	return nil
}
