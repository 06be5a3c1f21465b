// Package devices provides the PostgreSQL-backed repository for activated
// client devices.
package devices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/dbx"
	"github.com/guardianos/guardian-sync/internal/server/models"
)

// PostgresRepository implements device storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const deviceColumns = `id, account_id, name, device_type, os_version, COALESCE(hardware_id, ''), last_seen_at, status, created_at`

// Create inserts a new device row. HardwareID is stored as NULL when empty
// so the per-account uniqueness index only applies to fingerprinted devices.
func (r *PostgresRepository) Create(ctx context.Context, device *models.Device) error {
	query := `
		INSERT INTO devices (id, account_id, name, device_type, os_version, hardware_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	var hwID any
	if device.HardwareID != "" {
		hwID = device.HardwareID
	}
	if _, err := r.db.ExecContext(ctx, query,
		device.ID, device.AccountID, device.Name, device.DeviceType, device.OSVersion, hwID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns the device row or common.ErrDeviceNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByHardwareID returns the device matching the hardware fingerprint,
// regardless of owning account, or common.ErrDeviceNotFound.
func (r *PostgresRepository) GetByHardwareID(ctx context.Context, hardwareID string) (*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE hardware_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, hardwareID))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Device, error) {
	device := &models.Device{}
	err := row.Scan(&device.ID, &device.AccountID, &device.Name, &device.DeviceType,
		&device.OSVersion, &device.HardwareID, &device.LastSeenAt, &device.Status, &device.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return device, nil
}

// ListForAccount returns the account's active devices, most recently seen
// first.
func (r *PostgresRepository) ListForAccount(ctx context.Context, accountID string) ([]*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices
		WHERE account_id = $1 AND status = 'active'
		ORDER BY last_seen_at DESC`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Device
	for rows.Next() {
		device := &models.Device{}
		if err := rows.Scan(&device.ID, &device.AccountID, &device.Name, &device.DeviceType,
			&device.OSVersion, &device.HardwareID, &device.LastSeenAt, &device.Status, &device.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, device)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// TouchLastSeen bumps last_seen_at to now.
func (r *PostgresRepository) TouchLastSeen(ctx context.Context, id string) error {
	query := `UPDATE devices SET last_seen_at = now() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Revoke marks the device as revoked.
func (r *PostgresRepository) Revoke(ctx context.Context, id string) error {
	query := `UPDATE devices SET status = 'revoked' WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrDeviceNotFound
	}
	return nil
}
