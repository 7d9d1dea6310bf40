package repository

import (
	"context"

	"concert-reservation/internal/domain/reservation"
	"concert-reservation/internal/infra"
	"concert-reservation/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertReservationSQL = `
INSERT INTO reservations (id, concert_id, user_id, seat_number, created_at)
VALUES ($1, $2, $3, $4, $5)`

	deleteReservationSQL = `DELETE FROM reservations WHERE id = $1`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create fails with KindDuplicateKey carrying the violated constraint when the
// user already holds a seat or the seat is already held.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, insertReservationSQL,
		res.ID(),
		res.ConcertID(),
		res.UserID(),
		res.SeatNumber().Int(),
		res.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
