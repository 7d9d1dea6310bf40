package repository

import (
	"context"

	"concert-reservation/internal/domain/reservation"
	"concert-reservation/internal/infra"
	"concert-reservation/internal/infra/db"
)

const insertHistorySQL = `
INSERT INTO reservation_histories (id, concert_id, user_id, seat_number, action, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

type HistoryRepository struct {
	db db.DBTX
}

func NewHistoryRepository(db db.DBTX) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, entry *reservation.HistoryEntry) error {
	_, err := r.db.Exec(ctx, insertHistorySQL,
		entry.ID(),
		entry.ConcertID(),
		entry.UserID(),
		entry.SeatNumber().Int(),
		entry.Action().String(),
		entry.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append reservation history", err)
	}
	return nil
}
