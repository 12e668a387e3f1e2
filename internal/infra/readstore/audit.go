package readstore

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
)

type AuditReadStore struct {
	db DBTX
}

func NewAuditReadStore(db DBTX) *AuditReadStore {
	return &AuditReadStore{db: db}
}

func (r *AuditReadStore) List(ctx context.Context, filter queries.AuditFilter) ([]*queries.AuditEntryView, error) {
	sql := "SELECT id, action, entity_type, entity_id, details, created_at FROM audit_logs"
	var args []any

	switch {
	case filter.EntityType != "" && filter.EntityID != 0:
		sql += " WHERE entity_type = $1 AND entity_id = $2"
		args = append(args, filter.EntityType, filter.EntityID)
	case filter.EntityType != "":
		sql += " WHERE entity_type = $1"
		args = append(args, filter.EntityType)
	case filter.EntityID != 0:
		sql += " WHERE entity_id = $1"
		args = append(args, filter.EntityID)
	}
	sql += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit entries", err)
	}
	defer rows.Close()

	var views []*queries.AuditEntryView
	for rows.Next() {
		var v queries.AuditEntryView
		if err := rows.Scan(&v.ID, &v.Action, &v.EntityType, &v.EntityID, &v.Details, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit entry", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read audit entries", err)
	}
	return views, nil
}
