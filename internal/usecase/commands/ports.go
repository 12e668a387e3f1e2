package commands

import (
	"context"
	"log/slog"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/audit"
	"github.com/dogecoinfoundation/doge-prize/internal/infra/wallet"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"
)

// WalletSender is the write side of the node RPC: an irreversible,
// network-bound broadcast.
type WalletSender interface {
	Send(ctx context.Context, address string, amountDoge float64) (*wallet.TransactionResult, error)
}

// AuditSink records state-changing actions. Appends are best-effort; a
// failed append never blocks or reverses the operation it describes.
type AuditSink interface {
	Append(ctx context.Context, action audit.Action, entityType audit.EntityType, entityID int64, details string)
}

type AuditInserter interface {
	Insert(ctx context.Context, e audit.Entry) error
}

type auditRecorder struct {
	inserter AuditInserter
}

func NewAuditRecorder(inserter AuditInserter) AuditSink {
	return &auditRecorder{inserter: inserter}
}

func (r *auditRecorder) Append(ctx context.Context, action audit.Action, entityType audit.EntityType, entityID int64, details string) {
	err := r.inserter.Insert(ctx, audit.Entry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	})
	if err != nil {
		slog.Warn("audit append failed",
			"action", string(action),
			"entity_type", string(entityType),
			"entity_id", entityID,
			"error", err.Error())
	}
}

func prizeViewFromSnapshot(s *shared.PrizeSnapshot) *queries.PrizeView {
	return &queries.PrizeView{
		ID:             s.ID,
		RedemptionCode: s.RedemptionCode,
		Amount:         koinuToDoge(s.AmountKoinu),
		Type:           s.Type,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
