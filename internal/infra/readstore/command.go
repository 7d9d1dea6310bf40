package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"concert-reservation/internal/infra"
	"concert-reservation/internal/infra/db"
	"concert-reservation/internal/pkg/pgconv"
	"concert-reservation/internal/usecase/shared"
)

const (
	findActiveConcertSnapshotSQL = `
SELECT id, name, total_seats, creator_id
FROM concerts
WHERE id = $1 AND deleted_at IS NULL`

	findReservationByConcertAndUserSQL = `
SELECT id, concert_id, user_id, seat_number, created_at
FROM reservations
WHERE concert_id = $1 AND user_id = $2`

	countReservationsByConcertSQL = `SELECT COUNT(*) FROM reservations WHERE concert_id = $1`

	reservedSeatNumbersSQL = `SELECT seat_number FROM reservations WHERE concert_id = $1 ORDER BY seat_number`

	findUserCredentialsByEmailSQL = `
SELECT id, email, password_hash, is_active
FROM users
WHERE email = $1`
)

// CommandReadStore serves the write side's validation reads. Bound to a
// transaction it observes that transaction's uncommitted rows.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(db db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: db}
}

func (s *CommandReadStore) ActiveConcertByID(ctx context.Context, id uuid.UUID) (*shared.ConcertSnapshot, error) {
	var snap shared.ConcertSnapshot
	err := s.db.QueryRow(ctx, findActiveConcertSnapshotSQL, id).Scan(
		&snap.ID,
		&snap.Name,
		&snap.TotalSeats,
		&snap.CreatorID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("concert not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find concert", err)
	}
	return &snap, nil
}

func (s *CommandReadStore) ReservationByConcertAndUser(ctx context.Context, concertID, userID uuid.UUID) (*shared.ReservationSnapshot, error) {
	var snap shared.ReservationSnapshot
	err := s.db.QueryRow(ctx, findReservationByConcertAndUserSQL, concertID, userID).Scan(
		&snap.ID,
		&snap.ConcertID,
		&snap.UserID,
		&snap.SeatNumber,
		&snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return &snap, nil
}

func (s *CommandReadStore) CountReservations(ctx context.Context, concertID uuid.UUID) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, countReservationsByConcertSQL, concertID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return n, nil
}

func (s *CommandReadStore) ReservedSeatNumbers(ctx context.Context, concertID uuid.UUID) ([]int, error) {
	rows, err := s.db.Query(ctx, reservedSeatNumbersSQL, concertID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reserved seats", err)
	}
	seats, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reserved seats", err)
	}
	return seats, nil
}

func (s *CommandReadStore) UserCredentialsByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	var c shared.UserCredentials
	err := s.db.QueryRow(ctx, findUserCredentialsByEmailSQL, email).Scan(
		&c.ID,
		&c.Email,
		&c.PasswordHash,
		&c.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &c, nil
}
