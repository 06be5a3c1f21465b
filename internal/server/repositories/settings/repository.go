package settings

import (
	"context"
	"time"

	"github.com/guardianos/guardian-sync/internal/server/models"
)

type Repository interface {
	// Get returns the entry for (accountID, key), or nil when none exists.
	Get(ctx context.Context, accountID, key string) (*models.SettingsEntry, error)
	Upsert(ctx context.Context, entry *models.SettingsEntry) error
	// SelectSince returns entries with modified_at > since, ordered by
	// modified_at ascending. An empty categories slice means no filter.
	SelectSince(ctx context.Context, accountID string, since time.Time, categories []string) ([]*models.SettingsEntry, error)
	LastModified(ctx context.Context, accountID string) (time.Time, error)
}
