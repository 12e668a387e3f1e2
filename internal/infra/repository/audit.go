package repository

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/audit"
	"github.com/dogecoinfoundation/doge-prize/internal/infra"
)

// AuditRepository appends audit entries. It writes through the pool handle
// rather than a transaction: audit records land after the primary
// operation commits and a failed append never rolls it back.
type AuditRepository struct {
	db DBTX
}

func NewAuditRepository(db DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, e audit.Entry) error {
	var details any
	if e.Details != "" {
		details = e.Details
	}
	_, err := r.db.Exec(ctx,
		"INSERT INTO audit_logs (action, entity_type, entity_id, details) VALUES ($1, $2, $3, $4)",
		string(e.Action), string(e.EntityType), e.EntityID, details)
	if err != nil {
		return infra.WrapRepoErr("failed to insert audit entry", err)
	}
	return nil
}
