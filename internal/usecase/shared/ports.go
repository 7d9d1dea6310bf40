package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Locker serializes work on a named resource across processes. acquired=false
// means fn never ran; it is reported separately from fn's own error.
type Locker interface {
	ExecuteWithLock(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) (acquired bool, err error)
}

type ReservationEventType string

const (
	EventReservationReserved  ReservationEventType = "reservation.reserved"
	EventReservationCancelled ReservationEventType = "reservation.cancelled"
)

type ReservationEvent struct {
	Type          ReservationEventType `json:"type"`
	ReservationID uuid.UUID            `json:"reservationId"`
	ConcertID     uuid.UUID            `json:"concertId"`
	UserID        uuid.UUID            `json:"userId"`
	SeatNumber    int                  `json:"seatNumber"`
	OccurredAt    time.Time            `json:"occurredAt"`
}

// EventPublisher delivers committed reservation changes to downstream consumers.
// Delivery is best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}

type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, ReservationEvent) error { return nil }

// ReservationMetrics records allocator outcomes.
type ReservationMetrics interface {
	ObserveReserve(outcome string, elapsed time.Duration)
	ObserveCancel(outcome string)
}

type NopReservationMetrics struct{}

func (NopReservationMetrics) ObserveReserve(string, time.Duration) {}
func (NopReservationMetrics) ObserveCancel(string)                 {}
