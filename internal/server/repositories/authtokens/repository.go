package authtokens

import (
	"context"

	"github.com/guardianos/guardian-sync/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, token *models.AuthToken) error
	GetByHash(ctx context.Context, tokenHash string) (*models.AuthToken, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForAccount(ctx context.Context, accountID string) error
	PurgeExpired(ctx context.Context) (int64, error)
}
