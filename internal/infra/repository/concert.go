package repository

import (
	"context"

	"concert-reservation/internal/domain/concert"
	"concert-reservation/internal/infra"
	"concert-reservation/internal/infra/db"
)

const insertConcertSQL = `
INSERT INTO concerts (id, name, description, total_seats, creator_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type ConcertRepository struct {
	db db.DBTX
}

func NewConcertRepository(db db.DBTX) *ConcertRepository {
	return &ConcertRepository{db: db}
}

func (r *ConcertRepository) Create(ctx context.Context, c *concert.Concert) error {
	_, err := r.db.Exec(ctx, insertConcertSQL,
		c.ID(),
		c.Name(),
		c.Description(),
		c.TotalSeats(),
		c.CreatorID(),
		c.CreatedAt(),
		c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create concert", err)
	}
	return nil
}
