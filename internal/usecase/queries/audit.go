package queries

import "context"

// AuditFilter narrows the listing; zero values mean "no filter".
type AuditFilter struct {
	EntityType string
	EntityID   int64
}

type AuditReadStore interface {
	List(ctx context.Context, filter AuditFilter) ([]*AuditEntryView, error)
}

type AuditQueries interface {
	List(ctx context.Context, filter AuditFilter) ([]*AuditEntryView, error)
}

type auditQueriesImpl struct {
	store AuditReadStore
}

func NewAuditQueries(store AuditReadStore) AuditQueries {
	return &auditQueriesImpl{store: store}
}

func (q *auditQueriesImpl) List(ctx context.Context, filter AuditFilter) ([]*AuditEntryView, error) {
	return q.store.List(ctx, filter)
}
