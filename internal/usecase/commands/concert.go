package commands

import (
	"context"

	"concert-reservation/internal/domain/concert"
	"concert-reservation/internal/pkg/clock"
	"concert-reservation/internal/pkg/errs"
	"concert-reservation/internal/usecase/queries"
	"concert-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateConcertInput struct {
	Name        string
	Description string
	TotalSeats  int
}

type ConcertCommands interface {
	Create(ctx context.Context, input CreateConcertInput, creatorID uuid.UUID) (*queries.ConcertView, error)
}

type concertCommandsImpl struct {
	uow      shared.UnitOfWork
	services *concert.Services
}

func NewConcertCommands(uow shared.UnitOfWork, clk clock.Clock) ConcertCommands {
	return &concertCommandsImpl{
		uow:      uow,
		services: &concert.Services{Clock: clk},
	}
}

func (c *concertCommandsImpl) Create(ctx context.Context, input CreateConcertInput, creatorID uuid.UUID) (*queries.ConcertView, error) {
	entity, err := concert.NewConcert(c.services, input.Name, input.Description, input.TotalSeats, creatorID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidConcertInput)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Concerts().Create(ctx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// a new concert has no reservations, so the view is built without a read-back
	return &queries.ConcertView{
		ID:             entity.ID(),
		Name:           entity.Name(),
		Description:    entity.Description(),
		TotalSeats:     entity.TotalSeats(),
		ReservedSeats:  0,
		AvailableSeats: entity.AvailableSeats(0),
		CreatorID:      entity.CreatorID(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}
