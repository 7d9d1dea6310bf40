package reservation

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is an immutable journal record. It copies the seat and identities
// so it stays meaningful after the reservation row is gone.
type HistoryEntry struct {
	id         uuid.UUID
	concertID  uuid.UUID
	userID     uuid.UUID
	seatNumber SeatNumber
	action     Action
	createdAt  time.Time
}

func newHistoryEntry(services *Services, r *Reservation, action Action) *HistoryEntry {
	return &HistoryEntry{
		id:         uuid.New(),
		concertID:  r.concertID,
		userID:     r.userID,
		seatNumber: r.seatNumber,
		action:     action,
		createdAt:  services.Clock.Now(),
	}
}

func (h *HistoryEntry) ID() uuid.UUID          { return h.id }
func (h *HistoryEntry) ConcertID() uuid.UUID   { return h.concertID }
func (h *HistoryEntry) UserID() uuid.UUID      { return h.userID }
func (h *HistoryEntry) SeatNumber() SeatNumber { return h.seatNumber }
func (h *HistoryEntry) Action() Action         { return h.action }
func (h *HistoryEntry) CreatedAt() time.Time   { return h.createdAt }
