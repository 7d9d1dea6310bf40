//go:build unit || e2e

package builder

import (
	"time"

	"concert-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	ConcertID   uuid.UUID
	ConcertName string
	UserID      uuid.UUID
	UserEmail   string
	SeatNumber  int
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		ConcertID:   uuid.New(),
		ConcertName: "Summer Live 2026",
		UserID:      uuid.New(),
		UserEmail:   "test@example.com",
		SeatNumber:  1,
		CreatedAt:   time.Date(2026, 2, 1, 18, 30, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          b.ID,
		ConcertID:   b.ConcertID,
		ConcertName: b.ConcertName,
		UserID:      b.UserID,
		UserEmail:   b.UserEmail,
		SeatNumber:  b.SeatNumber,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildHistoryView(action string) *queries.HistoryView {
	return &queries.HistoryView{
		ID:          uuid.New(),
		ConcertID:   b.ConcertID,
		ConcertName: b.ConcertName,
		UserID:      b.UserID,
		UserEmail:   b.UserEmail,
		SeatNumber:  b.SeatNumber,
		Action:      action,
		CreatedAt:   b.CreatedAt,
	}
}
