package repository

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/infra"
)

// CredentialRepository stores the single administrator password hash.
type CredentialRepository struct {
	db DBTX
}

func NewCredentialRepository(db DBTX) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) PasswordHash(ctx context.Context) (string, error) {
	var hash string
	err := r.db.QueryRow(ctx, "SELECT password_hash FROM admin_credentials WHERE id = 1").Scan(&hash)
	if err != nil {
		if isNoRows(err) {
			return "", infra.WrapRepoErr("admin password not set", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to read admin credentials", err)
	}
	return hash, nil
}

func (r *CredentialRepository) SetPasswordHash(ctx context.Context, hash string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO admin_credentials (id, password_hash) VALUES (1, $1)
		 ON CONFLICT (id) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = now()`,
		hash)
	if err != nil {
		return infra.WrapRepoErr("failed to store admin credentials", err)
	}
	return nil
}
