package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"concert-reservation/internal/infra"
	"concert-reservation/internal/infra/db"
	"concert-reservation/internal/pkg/pgconv"
	"concert-reservation/internal/usecase/queries"
)

const concertColumns = `
	c.id, c.name, c.description, c.total_seats, c.creator_id, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM reservations r WHERE r.concert_id = c.id) AS reserved_seats`

const (
	findConcertByIDSQL = `SELECT` + concertColumns + `
FROM concerts c
WHERE c.id = $1 AND c.deleted_at IS NULL`

	listConcertsSQL = `SELECT` + concertColumns + `
FROM concerts c
WHERE c.deleted_at IS NULL
ORDER BY c.created_at DESC, c.id DESC
LIMIT $1 OFFSET $2`

	countConcertsSQL = `SELECT COUNT(*) FROM concerts WHERE deleted_at IS NULL`

	listConcertsByCreatorSQL = `SELECT` + concertColumns + `
FROM concerts c
WHERE c.creator_id = $1 AND c.deleted_at IS NULL
ORDER BY c.created_at DESC, c.id DESC
LIMIT $2 OFFSET $3`

	countConcertsByCreatorSQL = `SELECT COUNT(*) FROM concerts WHERE creator_id = $1 AND deleted_at IS NULL`

	// Seats count only live concerts; reservation and cancellation counts span
	// every concert the owner ever created.
	ownerStatsSQL = `
SELECT
	COALESCE((SELECT SUM(total_seats) FROM concerts WHERE creator_id = $1 AND deleted_at IS NULL), 0),
	(SELECT COUNT(*) FROM reservations r JOIN concerts c ON c.id = r.concert_id WHERE c.creator_id = $1),
	(SELECT COUNT(*) FROM reservation_histories h JOIN concerts c ON c.id = h.concert_id
		WHERE c.creator_id = $1 AND h.action = 'CANCELLED')`
)

type ConcertReadStore struct {
	db db.DBTX
}

func NewConcertReadStore(db db.DBTX) *ConcertReadStore {
	return &ConcertReadStore{db: db}
}

func (s *ConcertReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ConcertView, error) {
	view, err := scanConcert(s.db.QueryRow(ctx, findConcertByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("concert not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find concert by ID", err)
	}
	return view, nil
}

func (s *ConcertReadStore) List(ctx context.Context, limit, offset int) ([]*queries.ConcertView, int, error) {
	var total int
	if err := s.db.QueryRow(ctx, countConcertsSQL).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count concerts", err)
	}

	rows, err := s.db.Query(ctx, listConcertsSQL, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list concerts", err)
	}
	items, err := collectConcerts(rows)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to scan concerts", err)
	}
	return items, total, nil
}

func (s *ConcertReadStore) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*queries.ConcertView, int, error) {
	var total int
	if err := s.db.QueryRow(ctx, countConcertsByCreatorSQL, creatorID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count concerts by creator", err)
	}

	rows, err := s.db.Query(ctx, listConcertsByCreatorSQL, creatorID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list concerts by creator", err)
	}
	items, err := collectConcerts(rows)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to scan concerts", err)
	}
	return items, total, nil
}

func (s *ConcertReadStore) OwnerStats(ctx context.Context, ownerID uuid.UUID) (*queries.OwnerStatsView, error) {
	var stats queries.OwnerStatsView
	err := s.db.QueryRow(ctx, ownerStatsSQL, ownerID).Scan(
		&stats.TotalSeats,
		&stats.TotalReservations,
		&stats.TotalCancelledReservations,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute owner stats", err)
	}
	return &stats, nil
}

func scanConcert(row pgx.Row) (*queries.ConcertView, error) {
	var v queries.ConcertView
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Description,
		&v.TotalSeats,
		&v.CreatorID,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.ReservedSeats,
	)
	if err != nil {
		return nil, err
	}
	v.AvailableSeats = max(v.TotalSeats-v.ReservedSeats, 0)
	return &v, nil
}

func collectConcerts(rows pgx.Rows) ([]*queries.ConcertView, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ConcertView, error) {
		return scanConcert(row)
	})
}
