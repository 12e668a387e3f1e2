package queries

import "context"

type PoolReadStore interface {
	ListAll(ctx context.Context) ([]*PoolEntryView, error)
}

type PoolQueries interface {
	List(ctx context.Context) ([]*PoolEntryView, error)
}

type poolQueriesImpl struct {
	store PoolReadStore
}

func NewPoolQueries(store PoolReadStore) PoolQueries {
	return &poolQueriesImpl{store: store}
}

func (q *poolQueriesImpl) List(ctx context.Context) ([]*PoolEntryView, error) {
	return q.store.ListAll(ctx)
}
