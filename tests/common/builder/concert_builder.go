//go:build unit || e2e

package builder

import (
	"time"

	"concert-reservation/internal/domain/concert"
	reqdto "concert-reservation/internal/handler/dto/request"
	"concert-reservation/internal/pkg/clock"
	"concert-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConcertBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	TotalSeats  int
	Reserved    int
	CreatorID   uuid.UUID
	CreatedAt   time.Time
}

func NewConcertBuilder() *ConcertBuilder {
	return &ConcertBuilder{
		ID:          uuid.New(),
		Name:        "Summer Live 2026",
		Description: "Open-air evening show",
		TotalSeats:  100,
		CreatorID:   uuid.New(),
		CreatedAt:   time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ConcertBuilder) With(mutate func(*ConcertBuilder)) *ConcertBuilder {
	mutate(b)
	return b
}

func (b *ConcertBuilder) WithSeats(total, reserved int) *ConcertBuilder {
	b.TotalSeats = total
	b.Reserved = reserved
	return b
}

func (b *ConcertBuilder) WithCreator(id uuid.UUID) *ConcertBuilder {
	b.CreatorID = id
	return b
}

func (b *ConcertBuilder) BuildDomain() (*concert.Concert, error) {
	services := &concert.Services{Clock: clock.NewMockClock(b.CreatedAt)}
	return concert.NewConcert(services, b.Name, b.Description, b.TotalSeats, b.CreatorID)
}

func (b *ConcertBuilder) BuildView() *queries.ConcertView {
	return &queries.ConcertView{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		TotalSeats:     b.TotalSeats,
		ReservedSeats:  b.Reserved,
		AvailableSeats: b.TotalSeats - b.Reserved,
		CreatorID:      b.CreatorID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

func (b *ConcertBuilder) BuildCreateDTO() reqdto.CreateConcertRequest {
	return reqdto.CreateConcertRequest{
		Name:        b.Name,
		Description: b.Description,
		TotalSeats:  b.TotalSeats,
	}
}
