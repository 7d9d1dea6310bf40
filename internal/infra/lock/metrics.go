package lock

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeAcquired  = "acquired"
	outcomeContended = "contended"
	outcomeReleased  = "released"
	outcomeLost      = "lost"
	outcomeError     = "error"
)

// Metrics is optional; a nil *Metrics records nothing.
type Metrics struct {
	acquireTotal *prometheus.CounterVec
	releaseTotal *prometheus.CounterVec
	waitSeconds  prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		acquireTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lock_acquire_total",
			Help: "Distributed lock acquisitions by outcome.",
		}, []string{"outcome"}),
		releaseTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lock_release_total",
			Help: "Distributed lock releases by outcome.",
		}, []string{"outcome"}),
		waitSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lock_wait_seconds",
			Help:    "Time spent waiting to acquire a distributed lock.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

func (m *Metrics) observeAcquire(outcome string, waited time.Duration) {
	if m == nil {
		return
	}
	m.acquireTotal.WithLabelValues(outcome).Inc()
	m.waitSeconds.Observe(waited.Seconds())
}

func (m *Metrics) observeRelease(outcome string) {
	if m == nil {
		return
	}
	m.releaseTotal.WithLabelValues(outcome).Inc()
}
