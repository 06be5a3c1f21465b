package files

import (
	"context"

	"github.com/guardianos/guardian-sync/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, file *models.FileRecord) error
	GetByID(ctx context.Context, id string) (*models.FileRecord, error)
	// List returns the account's files newest first. fileType filters when
	// non-empty.
	List(ctx context.Context, accountID, fileType string, limit, offset int32) ([]*models.FileRecord, error)
	// Count returns how many records List would match without the paging.
	Count(ctx context.Context, accountID, fileType string) (int64, error)
	Delete(ctx context.Context, id string) error
	// SumSize returns total bytes across the account's live records.
	SumSize(ctx context.Context, accountID string) (int64, error)
}
