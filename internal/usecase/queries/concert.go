package queries

import (
	"context"

	"concert-reservation/internal/infra"
	"concert-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type ConcertQueries interface {
	List(ctx context.Context, page PageRequest) (*Page[*ConcertView], error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, page PageRequest) (*Page[*ConcertView], error)
	Get(ctx context.Context, id uuid.UUID) (*ConcertDetailView, error)
	OwnerStats(ctx context.Context, ownerID uuid.UUID) (*OwnerStatsView, error)
}

// ConcertReadStore never returns soft-deleted concerts.
type ConcertReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ConcertView, error)
	List(ctx context.Context, limit, offset int) ([]*ConcertView, int, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*ConcertView, int, error)
	OwnerStats(ctx context.Context, ownerID uuid.UUID) (*OwnerStatsView, error)
}

type concertQueriesImpl struct {
	concerts     ConcertReadStore
	reservations ReservationReadStore
}

func NewConcertQueries(concerts ConcertReadStore, reservations ReservationReadStore) ConcertQueries {
	return &concertQueriesImpl{
		concerts:     concerts,
		reservations: reservations,
	}
}

func (q *concertQueriesImpl) List(ctx context.Context, page PageRequest) (*Page[*ConcertView], error) {
	items, total, err := q.concerts.List(ctx, page.normalized().Limit, page.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list concerts")
	}
	return NewPage(items, page, total), nil
}

func (q *concertQueriesImpl) ListByCreator(ctx context.Context, creatorID uuid.UUID, page PageRequest) (*Page[*ConcertView], error) {
	items, total, err := q.concerts.ListByCreator(ctx, creatorID, page.normalized().Limit, page.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list concerts by creator")
	}
	return NewPage(items, page, total), nil
}

func (q *concertQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ConcertDetailView, error) {
	view, err := q.concerts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrConcertNotFound
		}
		return nil, errs.Wrap(err, "find concert")
	}

	reservations, err := q.reservations.ListByConcert(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "list concert reservations")
	}
	if reservations == nil {
		reservations = []*ReservationView{}
	}

	return &ConcertDetailView{
		ConcertView:  *view,
		Reservations: reservations,
	}, nil
}

func (q *concertQueriesImpl) OwnerStats(ctx context.Context, ownerID uuid.UUID) (*OwnerStatsView, error) {
	stats, err := q.concerts.OwnerStats(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "owner stats")
	}
	return stats, nil
}
