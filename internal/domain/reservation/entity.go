package reservation

import (
	"errors"
	"time"

	"concert-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidConcertID = errors.New("concert id is required")
	ErrInvalidUserID    = errors.New("user id is required")
)

type Services struct {
	Clock clock.Clock
}

// Reservation is an active seat assignment. It exists until cancelled; there is
// no cancelled status on the row itself, the journal carries that.
type Reservation struct {
	id         uuid.UUID
	concertID  uuid.UUID
	userID     uuid.UUID
	seatNumber SeatNumber
	createdAt  time.Time
}

func NewReservation(services *Services, concertID, userID uuid.UUID, seat SeatNumber) (*Reservation, error) {
	if concertID == uuid.Nil {
		return nil, ErrInvalidConcertID
	}
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}
	if !seat.IsValid() {
		return nil, ErrInvalidSeatNumber
	}

	return &Reservation{
		id:         uuid.New(),
		concertID:  concertID,
		userID:     userID,
		seatNumber: seat,
		createdAt:  services.Clock.Now(),
	}, nil
}

func Reconstruct(id, concertID, userID uuid.UUID, seat SeatNumber, createdAt time.Time) *Reservation {
	return &Reservation{
		id:         id,
		concertID:  concertID,
		userID:     userID,
		seatNumber: seat,
		createdAt:  createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) ConcertID() uuid.UUID   { return r.concertID }
func (r *Reservation) UserID() uuid.UUID      { return r.userID }
func (r *Reservation) SeatNumber() SeatNumber { return r.seatNumber }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }

// Reserved journals the creation of r.
func (r *Reservation) Reserved(services *Services) *HistoryEntry {
	return newHistoryEntry(services, r, ActionReserved)
}

// Cancelled journals the removal of r.
func (r *Reservation) Cancelled(services *Services) *HistoryEntry {
	return newHistoryEntry(services, r, ActionCancelled)
}
