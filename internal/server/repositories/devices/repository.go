package devices

import (
	"context"

	"github.com/guardianos/guardian-sync/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, device *models.Device) error
	GetByID(ctx context.Context, id string) (*models.Device, error)
	GetByHardwareID(ctx context.Context, hardwareID string) (*models.Device, error)
	ListForAccount(ctx context.Context, accountID string) ([]*models.Device, error)
	TouchLastSeen(ctx context.Context, id string) error
	Revoke(ctx context.Context, id string) error
}
