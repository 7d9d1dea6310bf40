package queries

import (
	"context"

	"concert-reservation/internal/infra"
	"concert-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// HistoryQueries list journal entries newest first.
type HistoryQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, page PageRequest) (*Page[*HistoryView], error)
	ListByConcert(ctx context.Context, concertID uuid.UUID, page PageRequest) (*Page[*HistoryView], error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page PageRequest) (*Page[*HistoryView], error)
}

type HistoryReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HistoryView, int, error)
	ListByConcert(ctx context.Context, concertID uuid.UUID, limit, offset int) ([]*HistoryView, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*HistoryView, int, error)
}

type historyQueriesImpl struct {
	readStore HistoryReadStore
	concerts  ConcertReadStore
}

func NewHistoryQueries(readStore HistoryReadStore, concerts ConcertReadStore) HistoryQueries {
	return &historyQueriesImpl{
		readStore: readStore,
		concerts:  concerts,
	}
}

func (q *historyQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, page PageRequest) (*Page[*HistoryView], error) {
	items, total, err := q.readStore.ListByUser(ctx, userID, page.normalized().Limit, page.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list history by user")
	}
	return NewPage(items, page, total), nil
}

func (q *historyQueriesImpl) ListByConcert(ctx context.Context, concertID uuid.UUID, page PageRequest) (*Page[*HistoryView], error) {
	if _, err := q.concerts.FindByID(ctx, concertID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrConcertNotFound
		}
		return nil, errs.Wrap(err, "find concert")
	}

	items, total, err := q.readStore.ListByConcert(ctx, concertID, page.normalized().Limit, page.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list history by concert")
	}
	return NewPage(items, page, total), nil
}

func (q *historyQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, page PageRequest) (*Page[*HistoryView], error) {
	items, total, err := q.readStore.ListByOwner(ctx, ownerID, page.normalized().Limit, page.Offset())
	if err != nil {
		return nil, errs.Wrap(err, "list history by owner")
	}
	return NewPage(items, page, total), nil
}
