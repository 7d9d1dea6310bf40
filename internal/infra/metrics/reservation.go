package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReservationMetrics implements shared.ReservationMetrics with prometheus collectors.
type ReservationMetrics struct {
	reserveTotal    *prometheus.CounterVec
	reserveDuration *prometheus.HistogramVec
	cancelTotal     *prometheus.CounterVec
}

func NewReservationMetrics(reg prometheus.Registerer) *ReservationMetrics {
	f := promauto.With(reg)
	return &ReservationMetrics{
		reserveTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_reserve_total",
			Help: "Seat reservation attempts by outcome.",
		}, []string{"outcome"}),
		reserveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reservation_reserve_duration_seconds",
			Help:    "End-to-end seat reservation latency including lock wait.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		cancelTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_cancel_total",
			Help: "Reservation cancellations by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *ReservationMetrics) ObserveReserve(outcome string, elapsed time.Duration) {
	m.reserveTotal.WithLabelValues(outcome).Inc()
	m.reserveDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *ReservationMetrics) ObserveCancel(outcome string) {
	m.cancelTotal.WithLabelValues(outcome).Inc()
}
