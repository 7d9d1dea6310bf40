package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the query views.

type ConcertSnapshot struct {
	ID         uuid.UUID
	Name       string
	TotalSeats int
	CreatorID  uuid.UUID
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	ConcertID  uuid.UUID
	UserID     uuid.UUID
	SeatNumber int
	CreatedAt  time.Time
}

type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
}
