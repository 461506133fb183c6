// SPDX-License-Identifier: MIT

package invcache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "invcache"

// Metrics instruments Solve. A nil *Metrics is a valid no-op.
type Metrics struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	failures prometheus.Counter
	duration prometheus.Histogram
}

// NewMetrics creates the invcache collectors and registers them with reg.
// A nil reg leaves them unregistered. Like promauto, it panics if the names
// are already registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "hits_total",
			Help:      "Solve calls served from the cached inverse",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "misses_total",
			Help:      "Solve calls that computed the inverse successfully",
		}),
		failures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "failures_total",
			Help:      "Solve calls whose inversion returned an error",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "inversion_duration_seconds",
			Help:      "Time spent in the inversion primitive",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) hit() {
	if m == nil {
		return
	}
	m.hits.Inc()
}

func (m *Metrics) miss(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.misses.Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) failure(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.failures.Inc()
	m.duration.Observe(elapsed.Seconds())
}
