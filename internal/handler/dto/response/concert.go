package response

import (
	"time"

	"concert-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConcertResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	TotalSeats     int       `json:"totalSeats"`
	ReservedSeats  int       `json:"reservedSeats"`
	AvailableSeats int       `json:"availableSeats"`
	CreatorID      uuid.UUID `json:"creatorId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ConcertDetailResponse struct {
	ConcertResponse
	Reservations []*ReservationResponse `json:"reservations"`
}

type OwnerStatsResponse struct {
	TotalSeats                 int `json:"totalSeats"`
	TotalReservations          int `json:"totalReservations"`
	TotalCancelledReservations int `json:"totalCancelledReservations"`
}

func FromConcertView(v *queries.ConcertView) *ConcertResponse {
	return &ConcertResponse{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		TotalSeats:     v.TotalSeats,
		ReservedSeats:  v.ReservedSeats,
		AvailableSeats: v.AvailableSeats,
		CreatorID:      v.CreatorID,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromConcertDetailView(v *queries.ConcertDetailView) *ConcertDetailResponse {
	reservations := make([]*ReservationResponse, len(v.Reservations))
	for i, r := range v.Reservations {
		reservations[i] = FromReservationView(r)
	}
	return &ConcertDetailResponse{
		ConcertResponse: *FromConcertView(&v.ConcertView),
		Reservations:    reservations,
	}
}

func FromOwnerStatsView(v *queries.OwnerStatsView) *OwnerStatsResponse {
	return &OwnerStatsResponse{
		TotalSeats:                 v.TotalSeats,
		TotalReservations:          v.TotalReservations,
		TotalCancelledReservations: v.TotalCancelledReservations,
	}
}
