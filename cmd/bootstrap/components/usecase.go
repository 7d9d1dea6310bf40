package components

import (
	"concert-reservation/internal/pkg/clock"
	"concert-reservation/internal/pkg/config"
	"concert-reservation/internal/usecase"
	"concert-reservation/internal/usecase/commands"
	"concert-reservation/internal/usecase/queries"
	"concert-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewConcertCommands,
		NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewConcertQueries,
		queries.NewReservationQueries,
		queries.NewHistoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewReservationCommands(
	uow shared.UnitOfWork,
	locker shared.Locker,
	clk clock.Clock,
	cfg config.Config,
	publisher shared.EventPublisher,
	metrics shared.ReservationMetrics,
) commands.ReservationCommands {
	return commands.NewReservationCommands(uow, locker, clk,
		commands.WithLockTTL(cfg.Reservation.LockTTL),
		commands.WithEventPublisher(publisher),
		commands.WithReservationMetrics(metrics),
	)
}
