package queries

import "context"

type PrizeReadStore interface {
	ListAll(ctx context.Context) ([]*PrizeView, error)
}

type PrizeQueries interface {
	List(ctx context.Context) ([]*PrizeView, error)
}

type prizeQueriesImpl struct {
	store PrizeReadStore
}

func NewPrizeQueries(store PrizeReadStore) PrizeQueries {
	return &prizeQueriesImpl{store: store}
}

func (q *prizeQueriesImpl) List(ctx context.Context) ([]*PrizeView, error) {
	return q.store.ListAll(ctx)
}
