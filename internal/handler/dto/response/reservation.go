package response

import (
	"time"

	"concert-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	ConcertID     uuid.UUID `json:"concertId"`
	ConcertName   string    `json:"concertName"`
	UserID        uuid.UUID `json:"userId"`
	UserEmail     string    `json:"userEmail"`
	UserFirstName string    `json:"userFirstName"`
	UserLastName  string    `json:"userLastName"`
	SeatNumber    int       `json:"seatNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

type HistoryResponse struct {
	ID            uuid.UUID `json:"id"`
	ConcertID     uuid.UUID `json:"concertId"`
	ConcertName   string    `json:"concertName"`
	UserID        uuid.UUID `json:"userId"`
	UserEmail     string    `json:"userEmail"`
	UserFirstName string    `json:"userFirstName"`
	UserLastName  string    `json:"userLastName"`
	SeatNumber    int       `json:"seatNumber"`
	Action        string    `json:"action"`
	CreatedAt     time.Time `json:"createdAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            v.ID,
		ConcertID:     v.ConcertID,
		ConcertName:   v.ConcertName,
		UserID:        v.UserID,
		UserEmail:     v.UserEmail,
		UserFirstName: v.UserFirstName,
		UserLastName:  v.UserLastName,
		SeatNumber:    v.SeatNumber,
		CreatedAt:     v.CreatedAt,
	}
}

func FromHistoryView(v *queries.HistoryView) *HistoryResponse {
	return &HistoryResponse{
		ID:            v.ID,
		ConcertID:     v.ConcertID,
		ConcertName:   v.ConcertName,
		UserID:        v.UserID,
		UserEmail:     v.UserEmail,
		UserFirstName: v.UserFirstName,
		UserLastName:  v.UserLastName,
		SeatNumber:    v.SeatNumber,
		Action:        v.Action,
		CreatedAt:     v.CreatedAt,
	}
}
