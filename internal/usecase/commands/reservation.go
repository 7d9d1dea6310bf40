package commands

import (
	"context"
	"log/slog"
	"time"

	"concert-reservation/internal/domain/reservation"
	"concert-reservation/internal/infra"
	"concert-reservation/internal/pkg/clock"
	"concert-reservation/internal/pkg/errs"
	"concert-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	DefaultReservationLockTTL = 5 * time.Second

	// Unique constraints on reservations; see migrations/001_initial_schema.sql.
	ConstraintReservationConcertUser = "reservations_concert_user_key"
	ConstraintReservationConcertSeat = "reservations_concert_seat_key"
)

// Outcome labels reported to ReservationMetrics.
const (
	OutcomeSuccess         = "success"
	OutcomeBusy            = "busy"
	OutcomeAlreadyReserved = "already_reserved"
	OutcomeSeatTaken       = "seat_taken"
	OutcomeFullyBooked     = "fully_booked"
	OutcomeNotFound        = "not_found"
	OutcomeError           = "error"
)

type ReserveResult struct {
	ReservationID uuid.UUID
	SeatNumber    int
}

type ReservationCommands interface {
	// Reserve assigns the caller the lowest free seat of the concert.
	Reserve(ctx context.Context, concertID, userID uuid.UUID) (*ReserveResult, error)
	Cancel(ctx context.Context, concertID, userID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	locker    shared.Locker
	publisher shared.EventPublisher
	metrics   shared.ReservationMetrics
	services  *reservation.Services
	lockTTL   time.Duration
}

type ReservationOption func(*reservationCommandsImpl)

func WithLockTTL(ttl time.Duration) ReservationOption {
	return func(r *reservationCommandsImpl) {
		if ttl > 0 {
			r.lockTTL = ttl
		}
	}
}

func WithEventPublisher(p shared.EventPublisher) ReservationOption {
	return func(r *reservationCommandsImpl) {
		if p != nil {
			r.publisher = p
		}
	}
}

func WithReservationMetrics(m shared.ReservationMetrics) ReservationOption {
	return func(r *reservationCommandsImpl) {
		if m != nil {
			r.metrics = m
		}
	}
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	locker shared.Locker,
	clk clock.Clock,
	opts ...ReservationOption,
) ReservationCommands {
	r := &reservationCommandsImpl{
		uow:       uow,
		locker:    locker,
		publisher: shared.NopEventPublisher{},
		metrics:   shared.NopReservationMetrics{},
		services:  &reservation.Services{Clock: clk},
		lockTTL:   DefaultReservationLockTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func ReservationLockKey(concertID uuid.UUID) string {
	return "concert:" + concertID.String() + ":reservation"
}

func (r *reservationCommandsImpl) Reserve(ctx context.Context, concertID, userID uuid.UUID) (*ReserveResult, error) {
	start := time.Now()

	var created *reservation.Reservation
	acquired, err := r.locker.ExecuteWithLock(ctx, ReservationLockKey(concertID), r.lockTTL, func(ctx context.Context) error {
		return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			res, err := r.allocate(ctx, tx, concertID, userID)
			if err != nil {
				return err
			}
			created = res
			return nil
		})
	})

	if !acquired && err == nil {
		err = errs.ErrReservationBusy
	}
	if err != nil {
		r.metrics.ObserveReserve(reserveOutcome(err), time.Since(start))
		if !acquired && !errs.Is(err, errs.ErrReservationBusy) {
			return nil, errs.Wrap(err, "acquire reservation lock")
		}
		return nil, err
	}

	r.metrics.ObserveReserve(OutcomeSuccess, time.Since(start))
	r.publish(ctx, shared.EventReservationReserved, created)

	return &ReserveResult{
		ReservationID: created.ID(),
		SeatNumber:    created.SeatNumber().Int(),
	}, nil
}

// allocate runs under the concert lock inside one transaction. The checks are
// ordered so that a repeat caller sees "already reserved" even on a full concert.
func (r *reservationCommandsImpl) allocate(ctx context.Context, tx shared.Tx, concertID, userID uuid.UUID) (*reservation.Reservation, error) {
	reads := tx.Reads()

	concert, err := reads.ActiveConcertByID(ctx, concertID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrConcertNotFound
		}
		return nil, errs.Wrap(err, "load concert")
	}

	_, err = reads.ReservationByConcertAndUser(ctx, concertID, userID)
	switch {
	case err == nil:
		return nil, errs.ErrAlreadyReserved
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Wrap(err, "load existing reservation")
	}

	count, err := reads.CountReservations(ctx, concertID)
	if err != nil {
		return nil, errs.Wrap(err, "count reservations")
	}
	if count >= concert.TotalSeats {
		return nil, errs.ErrConcertFullyBooked
	}

	seats, err := reads.ReservedSeatNumbers(ctx, concertID)
	if err != nil {
		return nil, errs.Wrap(err, "load reserved seats")
	}
	seat, ok := reservation.NextFreeSeat(concert.TotalSeats, seats)
	if !ok {
		return nil, errs.ErrConcertFullyBooked
	}

	res, err := reservation.NewReservation(r.services, concertID, userID, seat)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := tx.Reservations().Create(ctx, res); err != nil {
		return nil, mapInsertError(err)
	}
	if err := tx.History().Append(ctx, res.Reserved(r.services)); err != nil {
		return nil, errs.Wrap(err, "append reserved history")
	}

	return res, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, concertID, userID uuid.UUID) error {
	var cancelled *reservation.Reservation

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByConcertAndUser(ctx, concertID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Wrap(err, "load reservation")
		}

		res := reservation.Reconstruct(snap.ID, snap.ConcertID, snap.UserID, reservation.SeatNumber(snap.SeatNumber), snap.CreatedAt)

		if err := tx.Reservations().Delete(ctx, res.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Wrap(err, "delete reservation")
		}
		if err := tx.History().Append(ctx, res.Cancelled(r.services)); err != nil {
			return errs.Wrap(err, "append cancelled history")
		}

		cancelled = res
		return nil
	})
	if err != nil {
		r.metrics.ObserveCancel(reserveOutcome(err))
		return err
	}

	r.metrics.ObserveCancel(OutcomeSuccess)
	r.publish(ctx, shared.EventReservationCancelled, cancelled)
	return nil
}

func (r *reservationCommandsImpl) publish(ctx context.Context, eventType shared.ReservationEventType, res *reservation.Reservation) {
	event := shared.ReservationEvent{
		Type:          eventType,
		ReservationID: res.ID(),
		ConcertID:     res.ConcertID(),
		UserID:        res.UserID(),
		SeatNumber:    res.SeatNumber().Int(),
		OccurredAt:    r.services.Clock.Now(),
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish reservation event",
			"type", string(eventType),
			"reservation_id", res.ID(),
			"error", err.Error())
	}
}

// mapInsertError turns a unique violation that slipped past the lock into the
// matching conflict.
func mapInsertError(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Wrap(err, "insert reservation")
	}
	switch infra.ViolatedConstraint(err) {
	case ConstraintReservationConcertUser:
		return errs.ErrAlreadyReserved
	case ConstraintReservationConcertSeat:
		return errs.ErrSeatTaken
	default:
		return errs.Mark(err, errs.ErrSeatTaken)
	}
}

func reserveOutcome(err error) string {
	switch {
	case errs.Is(err, errs.ErrReservationBusy):
		return OutcomeBusy
	case errs.Is(err, errs.ErrAlreadyReserved):
		return OutcomeAlreadyReserved
	case errs.Is(err, errs.ErrSeatTaken):
		return OutcomeSeatTaken
	case errs.Is(err, errs.ErrConcertFullyBooked):
		return OutcomeFullyBooked
	case errs.Is(err, errs.ErrConcertNotFound), errs.Is(err, errs.ErrReservationNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
