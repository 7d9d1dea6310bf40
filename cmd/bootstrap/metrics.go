package bootstrap

import (
	"concert-reservation/internal/handler/middleware"
	"concert-reservation/internal/infra/lock"
	"concert-reservation/internal/infra/metrics"
	"concert-reservation/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		func(r *prometheus.Registry) prometheus.Registerer { return r },
		func(r *prometheus.Registry) prometheus.Gatherer { return r },
		lock.NewMetrics,
		middleware.NewHTTPMetrics,
		fx.Annotate(
			metrics.NewReservationMetrics,
			fx.As(new(shared.ReservationMetrics)),
		),
	),
)

// A private registry keeps test apps from colliding on the global default.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
