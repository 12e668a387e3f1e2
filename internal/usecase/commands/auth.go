package commands

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/errs"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/jwt"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/password"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid password")
	ErrPasswordAlreadySet = errs.New("admin password has already been set")
	ErrPasswordNotSet     = errs.New("admin password has not been set")
	ErrWeakPassword       = errs.New("password must be at least 8 characters")
)

type AuthCommands interface {
	// Login exchanges the admin password for a session token.
	Login(ctx context.Context, pw string) (string, error)
	// SetPassword performs first-time setup and fails once a password exists.
	SetPassword(ctx context.Context, pw string) error
	ChangePassword(ctx context.Context, current, next string) error
	// PasswordSet reports whether first-time setup has happened.
	PasswordSet(ctx context.Context) (bool, error)
}

type authUseCaseImpl struct {
	uow    shared.UnitOfWork
	jwtSvc *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtSvc *jwt.Service) AuthCommands {
	return &authUseCaseImpl{uow: uow, jwtSvc: jwtSvc}
}

func (u *authUseCaseImpl) Login(ctx context.Context, pw string) (string, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		hash, err := tx.Credentials().PasswordHash(ctx)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPasswordNotSet
			}
			return errs.Mark(err, ErrDatabase)
		}
		if err := password.Compare(hash, pw); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	token, err := u.jwtSvc.GenerateAdminToken()
	if err != nil {
		return "", errs.Wrap(err, "failed to issue admin token")
	}
	return token, nil
}

func (u *authUseCaseImpl) SetPassword(ctx context.Context, pw string) error {
	hash, err := password.Hash(pw)
	if err != nil {
		return ErrWeakPassword
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Credentials().PasswordHash(ctx)
		switch {
		case err == nil:
			return ErrPasswordAlreadySet
		case !infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrDatabase)
		}
		if err := tx.Credentials().SetPasswordHash(ctx, hash); err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		return nil
	})
}

func (u *authUseCaseImpl) ChangePassword(ctx context.Context, current, next string) error {
	hash, err := password.Hash(next)
	if err != nil {
		return ErrWeakPassword
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, err := tx.Credentials().PasswordHash(ctx)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPasswordNotSet
			}
			return errs.Mark(err, ErrDatabase)
		}
		if err := password.Compare(stored, current); err != nil {
			return ErrInvalidCredentials
		}
		if err := tx.Credentials().SetPasswordHash(ctx, hash); err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		return nil
	})
}

func (u *authUseCaseImpl) PasswordSet(ctx context.Context) (bool, error) {
	var set bool
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Credentials().PasswordHash(ctx)
		switch {
		case err == nil:
			set = true
			return nil
		case infra.IsKind(err, infra.KindNotFound):
			set = false
			return nil
		}
		return errs.Mark(err, ErrDatabase)
	})
	return set, err
}
