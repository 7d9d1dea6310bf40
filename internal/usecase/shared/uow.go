package shared

import (
	"context"
	"time"

	"concert-reservation/internal/domain/concert"
	"concert-reservation/internal/domain/reservation"
	"concert-reservation/internal/domain/user"
	"concert-reservation/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one database transaction.
type Tx interface {
	Concerts() ConcertRepository
	Reservations() ReservationRepository
	History() HistoryRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the lookups the write side validates against. Inside a Tx they
// see the transaction's own writes. Missing rows surface as infra.KindNotFound.
type CommandReads interface {
	ActiveConcertByID(ctx context.Context, id uuid.UUID) (*ConcertSnapshot, error)
	ReservationByConcertAndUser(ctx context.Context, concertID, userID uuid.UUID) (*ReservationSnapshot, error)
	CountReservations(ctx context.Context, concertID uuid.UUID) (int, error)
	// ReservedSeatNumbers returns the seats held for concertID in ascending order.
	ReservedSeatNumbers(ctx context.Context, concertID uuid.UUID) ([]int, error)
	UserCredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error)
}

type ConcertRepository interface {
	Create(ctx context.Context, c *concert.Concert) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// HistoryRepository is append-only.
type HistoryRepository interface {
	Append(ctx context.Context, entry *reservation.HistoryEntry) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
