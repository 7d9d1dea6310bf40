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

const reservationViewSelect = `
SELECT r.id, r.concert_id, c.name, r.user_id, u.email, u.first_name, u.last_name, r.seat_number, r.created_at
FROM reservations r
JOIN concerts c ON c.id = r.concert_id
JOIN users u ON u.id = r.user_id`

const (
	findReservationByIDSQL = reservationViewSelect + `
WHERE r.id = $1`

	listReservationsByUserSQL = reservationViewSelect + `
WHERE r.user_id = $1 AND c.deleted_at IS NULL
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2 OFFSET $3`

	countReservationsByUserSQL = `
SELECT COUNT(*)
FROM reservations r
JOIN concerts c ON c.id = r.concert_id
WHERE r.user_id = $1 AND c.deleted_at IS NULL`

	listReservationsByConcertSQL = reservationViewSelect + `
WHERE r.concert_id = $1
ORDER BY r.seat_number ASC`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := scanReservation(s.db.QueryRow(ctx, findReservationByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (s *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*queries.ReservationView, int, error) {
	var total int
	if err := s.db.QueryRow(ctx, countReservationsByUserSQL, userID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservations by user", err)
	}

	rows, err := s.db.Query(ctx, listReservationsByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	items, err := collectReservations(rows)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return items, total, nil
}

func (s *ReservationReadStore) ListByConcert(ctx context.Context, concertID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, listReservationsByConcertSQL, concertID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by concert", err)
	}
	items, err := collectReservations(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return items, nil
}

func scanReservation(row pgx.Row) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID,
		&v.ConcertID,
		&v.ConcertName,
		&v.UserID,
		&v.UserEmail,
		&v.UserFirstName,
		&v.UserLastName,
		&v.SeatNumber,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectReservations(rows pgx.Rows) ([]*queries.ReservationView, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ReservationView, error) {
		return scanReservation(row)
	})
}
