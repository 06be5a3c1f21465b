package accounts

import (
	"context"

	"github.com/guardianos/guardian-sync/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByHash(ctx context.Context, accountHash string) (*models.Account, error)
	UpdatePassword(ctx context.Context, accountHash, newPasswordHash string) error
	VerifyEmail(ctx context.Context, accountHash string) error
}
