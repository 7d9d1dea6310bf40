package queries

import (
	"context"

	"concert-reservation/internal/infra"
	"concert-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page PageRequest) (*Page[*ReservationView], error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ReservationView, int, error)
	// ListByConcert returns every active reservation of the concert ordered by seat.
	ListByConcert(ctx context.Context, concertID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "find reservation")
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, page PageRequest) (*Page[*ReservationView], error) {
	items, total, err := q.readStore.ListByUser(ctx, userID, page.normalized().Limit, page.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list reservations by user")
	}
	return NewPage(items, page, total), nil
}
