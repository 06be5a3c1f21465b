package services

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/server/config"
	"github.com/guardianos/guardian-sync/internal/server/models"
	"github.com/guardianos/guardian-sync/internal/server/repositories/repomanager"
)

// PushResult is the outcome of one settings push. Applied writes persist
// even when some entries conflicted; Conflicts lists the rejected ones.
type PushResult struct {
	ServerTime time.Time
	Conflicts  []*models.SettingsConflict
}

// SyncStatus summarizes an account's sync state for the status RPC.
type SyncStatus struct {
	LastModified time.Time
	ServerTime   time.Time
}

// SyncService reconciles a device's view of (key, value, modified_at) with
// the server's authoritative view using last-writer-wins per key. The server
// never merges: newer server values stay put and the push reports a conflict.
type SyncService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	maxValueBytes int
}

// NewSyncService constructs a SyncService using repositories and server config.
func NewSyncService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SyncService {
	return &SyncService{
		db:            db,
		repomanager:   m,
		maxValueBytes: cfg.MaxSettingValueBytes,
	}
}

// Push applies entries in the order sent. For each key the server keeps its
// value when its stored modified_at is newer than the client's, reporting a
// conflict; at equal timestamps the server wins silently. Accepted writes
// store modified_at = max(client time, server clock), which keeps the value
// non-decreasing per key.
func (s *SyncService) Push(ctx context.Context, accountID, deviceID string, entries []*models.SettingsEntry) (*PushResult, error) {
	repo := s.repomanager.Settings(s.db)
	result := &PushResult{ServerTime: time.Now()}

	for _, entry := range entries {
		if entry.Key == "" {
			return nil, fmt.Errorf("%w: settings key is required", common.ErrInvalidInput)
		}
		if len(entry.Value) > s.maxValueBytes {
			return nil, fmt.Errorf("%w: value for %q exceeds %d bytes", common.ErrInvalidInput, entry.Key, s.maxValueBytes)
		}

		existing, err := repo.Get(ctx, accountID, entry.Key)
		if err != nil {
			return nil, fmt.Errorf("error reading setting %q: %w", entry.Key, err)
		}
		if existing != nil && !entry.ModifiedAt.After(existing.ModifiedAt) {
			if existing.ModifiedAt.After(entry.ModifiedAt) {
				result.Conflicts = append(result.Conflicts, &models.SettingsConflict{
					Key:            entry.Key,
					ServerValue:    existing.Value,
					ClientValue:    entry.Value,
					ServerModified: existing.ModifiedAt.Unix(),
					ClientModified: entry.ModifiedAt.Unix(),
				})
			}
			// equal timestamps: server wins, no conflict reported
			continue
		}

		modifiedAt := entry.ModifiedAt
		if now := time.Now(); now.After(modifiedAt) {
			modifiedAt = now
		}

		write := &models.SettingsEntry{
			ID:         uuid.NewString(),
			AccountID:  accountID,
			DeviceID:   deviceID,
			Key:        entry.Key,
			Value:      entry.Value,
			Category:   entry.Category,
			Checksum:   valueChecksum(entry.Value),
			ModifiedAt: modifiedAt,
		}
		if err := repo.Upsert(ctx, write); err != nil {
			return nil, fmt.Errorf("error writing setting %q: %w", entry.Key, err)
		}
	}

	return result, nil
}

// Pull returns all entries with modified_at > since, optionally filtered by
// category, ordered by modified_at ascending. The returned server time is
// captured before the query so it is a safe next `since` for the caller.
func (s *SyncService) Pull(ctx context.Context, accountID string, since time.Time, categories []string) ([]*models.SettingsEntry, time.Time, error) {
	serverTime := time.Now()
	entries, err := s.repomanager.Settings(s.db).SelectSince(ctx, accountID, since, categories)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("error selecting settings: %w", err)
	}
	return entries, serverTime, nil
}

// Diff is Pull without a category filter. Every returned entry is an update;
// deletions are not modelled because keys have no tombstones yet.
func (s *SyncService) Diff(ctx context.Context, accountID string, since time.Time) ([]*models.SettingsEntry, time.Time, error) {
	return s.Pull(ctx, accountID, since, nil)
}

// ResolveConflict applies the client's chosen resolution for one key.
// Keeping the server value is a no-op. Taking the client value force-writes
// it with a fresh server timestamp, so it supersedes the conflicting row.
func (s *SyncService) ResolveConflict(ctx context.Context, accountID, deviceID, key string, useClientValue bool, clientValue []byte, category string) error {
	if key == "" {
		return fmt.Errorf("%w: settings key is required", common.ErrInvalidInput)
	}
	if !useClientValue {
		return nil
	}
	if len(clientValue) > s.maxValueBytes {
		return fmt.Errorf("%w: value for %q exceeds %d bytes", common.ErrInvalidInput, key, s.maxValueBytes)
	}

	write := &models.SettingsEntry{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		DeviceID:   deviceID,
		Key:        key,
		Value:      clientValue,
		Category:   category,
		Checksum:   valueChecksum(clientValue),
		ModifiedAt: time.Now(),
	}
	if err := s.repomanager.Settings(s.db).Upsert(ctx, write); err != nil {
		return fmt.Errorf("error writing setting %q: %w", key, err)
	}
	return nil
}

// Status reports the newest modified_at across the account's settings.
func (s *SyncService) Status(ctx context.Context, accountID string) (*SyncStatus, error) {
	last, err := s.repomanager.Settings(s.db).LastModified(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("error reading sync status: %w", err)
	}
	return &SyncStatus{LastModified: last, ServerTime: time.Now()}, nil
}

func valueChecksum(value []byte) string {
	sum := sha256.Sum256(value)
	return hex.EncodeToString(sum[:])
}
