package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"concert-reservation/internal/infra"
	"concert-reservation/internal/infra/db"
	"concert-reservation/internal/usecase/queries"
)

const historyViewSelect = `
SELECT h.id, h.concert_id, c.name, h.user_id, u.email, u.first_name, u.last_name, h.seat_number, h.action, h.created_at
FROM reservation_histories h
JOIN concerts c ON c.id = h.concert_id
JOIN users u ON u.id = h.user_id`

const historyOrder = `
ORDER BY h.created_at DESC, h.id DESC`

const (
	listHistoryByUserSQL = historyViewSelect + `
WHERE h.user_id = $1 AND c.deleted_at IS NULL` + historyOrder + `
LIMIT $2 OFFSET $3`

	countHistoryByUserSQL = `
SELECT COUNT(*)
FROM reservation_histories h
JOIN concerts c ON c.id = h.concert_id
WHERE h.user_id = $1 AND c.deleted_at IS NULL`

	listHistoryByConcertSQL = historyViewSelect + `
WHERE h.concert_id = $1` + historyOrder + `
LIMIT $2 OFFSET $3`

	countHistoryByConcertSQL = `SELECT COUNT(*) FROM reservation_histories WHERE concert_id = $1`

	listHistoryByOwnerSQL = historyViewSelect + `
WHERE c.creator_id = $1 AND c.deleted_at IS NULL` + historyOrder + `
LIMIT $2 OFFSET $3`

	countHistoryByOwnerSQL = `
SELECT COUNT(*)
FROM reservation_histories h
JOIN concerts c ON c.id = h.concert_id
WHERE c.creator_id = $1 AND c.deleted_at IS NULL`
)

type HistoryReadStore struct {
	db db.DBTX
}

func NewHistoryReadStore(db db.DBTX) *HistoryReadStore {
	return &HistoryReadStore{db: db}
}

func (s *HistoryReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*queries.HistoryView, int, error) {
	return s.list(ctx, countHistoryByUserSQL, listHistoryByUserSQL, userID, limit, offset)
}

func (s *HistoryReadStore) ListByConcert(ctx context.Context, concertID uuid.UUID, limit, offset int) ([]*queries.HistoryView, int, error) {
	return s.list(ctx, countHistoryByConcertSQL, listHistoryByConcertSQL, concertID, limit, offset)
}

func (s *HistoryReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*queries.HistoryView, int, error) {
	return s.list(ctx, countHistoryByOwnerSQL, listHistoryByOwnerSQL, ownerID, limit, offset)
}

func (s *HistoryReadStore) list(ctx context.Context, countSQL, listSQL string, id uuid.UUID, limit, offset int) ([]*queries.HistoryView, int, error) {
	var total int
	if err := s.db.QueryRow(ctx, countSQL, id).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservation history", err)
	}

	rows, err := s.db.Query(ctx, listSQL, id, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservation history", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.HistoryView, error) {
		var v queries.HistoryView
		err := row.Scan(
			&v.ID,
			&v.ConcertID,
			&v.ConcertName,
			&v.UserID,
			&v.UserEmail,
			&v.UserFirstName,
			&v.UserLastName,
			&v.SeatNumber,
			&v.Action,
			&v.CreatedAt,
		)
		return &v, err
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to scan reservation history", err)
	}
	return items, total, nil
}
