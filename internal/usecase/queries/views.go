package queries

import (
	"time"

	"github.com/google/uuid"
)

type ConcertView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	TotalSeats     int       `json:"total_seats"`
	ReservedSeats  int       `json:"reserved_seats"`
	AvailableSeats int       `json:"available_seats"`
	CreatorID      uuid.UUID `json:"creator_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ConcertDetailView struct {
	ConcertView
	Reservations []*ReservationView `json:"reservations"`
}

type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	ConcertID     uuid.UUID `json:"concert_id"`
	ConcertName   string    `json:"concert_name"`
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserFirstName string    `json:"user_first_name"`
	UserLastName  string    `json:"user_last_name"`
	SeatNumber    int       `json:"seat_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// HistoryView is a journal row joined with its concert and user.
type HistoryView struct {
	ID            uuid.UUID `json:"id"`
	ConcertID     uuid.UUID `json:"concert_id"`
	ConcertName   string    `json:"concert_name"`
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserFirstName string    `json:"user_first_name"`
	UserLastName  string    `json:"user_last_name"`
	SeatNumber    int       `json:"seat_number"`
	Action        string    `json:"action"`
	CreatedAt     time.Time `json:"created_at"`
}

type OwnerStatsView struct {
	TotalSeats                 int `json:"total_seats"`
	TotalReservations          int `json:"total_reservations"`
	TotalCancelledReservations int `json:"total_cancelled_reservations"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
