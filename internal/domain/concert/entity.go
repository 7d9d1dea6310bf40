package concert

import (
	"errors"
	"strings"
	"time"

	"concert-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	MinSeats = 1
	MaxSeats = 10000
)

var (
	ErrEmptyName         = errors.New("concert name is required")
	ErrEmptyDescription  = errors.New("concert description is required")
	ErrInvalidTotalSeats = errors.New("total seats must be between 1 and 10000")
	ErrInvalidCreatorID  = errors.New("creator id is required")
)

type Services struct {
	Clock clock.Clock
}

// Concert owns a fixed pool of seats numbered 1..totalSeats. The pool size never
// changes after creation.
type Concert struct {
	id          uuid.UUID
	name        string
	description string
	totalSeats  int
	creatorID   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

func NewConcert(services *Services, name, description string, totalSeats int, creatorID uuid.UUID) (*Concert, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" {
		return nil, ErrEmptyName
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if totalSeats < MinSeats || totalSeats > MaxSeats {
		return nil, ErrInvalidTotalSeats
	}
	if creatorID == uuid.Nil {
		return nil, ErrInvalidCreatorID
	}

	now := services.Clock.Now()
	return &Concert{
		id:          uuid.New(),
		name:        name,
		description: description,
		totalSeats:  totalSeats,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, description string,
	totalSeats int,
	creatorID uuid.UUID,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Concert {
	return &Concert{
		id:          id,
		name:        name,
		description: description,
		totalSeats:  totalSeats,
		creatorID:   creatorID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   deletedAt,
	}
}

func (c *Concert) ID() uuid.UUID         { return c.id }
func (c *Concert) Name() string          { return c.name }
func (c *Concert) Description() string   { return c.description }
func (c *Concert) TotalSeats() int       { return c.totalSeats }
func (c *Concert) CreatorID() uuid.UUID  { return c.creatorID }
func (c *Concert) CreatedAt() time.Time  { return c.createdAt }
func (c *Concert) UpdatedAt() time.Time  { return c.updatedAt }
func (c *Concert) DeletedAt() *time.Time { return c.deletedAt }
func (c *Concert) IsDeleted() bool       { return c.deletedAt != nil }

// AvailableSeats derives the free count from the number of active reservations.
func (c *Concert) AvailableSeats(reserved int) int {
	if reserved >= c.totalSeats {
		return 0
	}
	return c.totalSeats - reserved
}

func (c *Concert) IsFullyBooked(reserved int) bool {
	return reserved >= c.totalSeats
}
