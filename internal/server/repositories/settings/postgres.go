// Package settings provides the PostgreSQL-backed repository for keyed
// settings entries and the sync window queries over them.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guardianos/guardian-sync/internal/dbx"
	"github.com/guardianos/guardian-sync/internal/server/models"
)

// PostgresRepository implements settings storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const settingsColumns = `id, account_id, COALESCE(device_id::text, ''), key, value, category, checksum, modified_at, created_at`

// Get returns the entry for (accountID, key), or nil when none exists.
func (r *PostgresRepository) Get(ctx context.Context, accountID, key string) (*models.SettingsEntry, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE account_id = $1 AND key = $2`
	entry := &models.SettingsEntry{}
	err := r.db.QueryRowContext(ctx, query, accountID, key).Scan(
		&entry.ID, &entry.AccountID, &entry.DeviceID, &entry.Key, &entry.Value,
		&entry.Category, &entry.Checksum, &entry.ModifiedAt, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// Upsert inserts or replaces the entry for (account_id, key). The conflict
// update only fires when the incoming modified_at is at least the stored one,
// so a concurrent older write can never roll the row back.
func (r *PostgresRepository) Upsert(ctx context.Context, entry *models.SettingsEntry) error {
	query := `
		INSERT INTO settings (id, account_id, device_id, key, value, category, checksum, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (account_id, key)
		DO UPDATE SET
			value = EXCLUDED.value,
			category = EXCLUDED.category,
			checksum = EXCLUDED.checksum,
			device_id = EXCLUDED.device_id,
			modified_at = EXCLUDED.modified_at
		WHERE settings.modified_at <= EXCLUDED.modified_at
	`
	var deviceID any
	if entry.DeviceID != "" {
		deviceID = entry.DeviceID
	}
	if _, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.AccountID, deviceID, entry.Key, entry.Value,
		entry.Category, entry.Checksum, entry.ModifiedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// SelectSince returns entries with modified_at > since, ordered ascending so
// clients can resume mid-stream. categories filters when non-empty.
func (r *PostgresRepository) SelectSince(ctx context.Context, accountID string, since time.Time, categories []string) ([]*models.SettingsEntry, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE account_id = $1 AND modified_at > $2`
	args := []any{accountID, since}

	if len(categories) > 0 {
		placeholders := make([]string, len(categories))
		for i, cat := range categories {
			placeholders[i] = fmt.Sprintf("$%d", len(args)+1)
			args = append(args, cat)
		}
		query += ` AND category IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY modified_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.SettingsEntry
	for rows.Next() {
		entry := &models.SettingsEntry{}
		if err := rows.Scan(&entry.ID, &entry.AccountID, &entry.DeviceID, &entry.Key, &entry.Value,
			&entry.Category, &entry.Checksum, &entry.ModifiedAt, &entry.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// LastModified returns the newest modified_at across the account's entries,
// or the zero time when the account has none.
func (r *PostgresRepository) LastModified(ctx context.Context, accountID string) (time.Time, error) {
	query := `SELECT COALESCE(MAX(modified_at), 'epoch'::timestamptz) FROM settings WHERE account_id = $1`
	var t time.Time
	if err := r.db.QueryRowContext(ctx, query, accountID).Scan(&t); err != nil {
		return time.Time{}, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
