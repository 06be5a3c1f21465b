// Package files provides the PostgreSQL-backed repository for file metadata;
// the blob bodies live in the object store under storage_path.
package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/dbx"
	"github.com/guardianos/guardian-sync/internal/server/models"
)

// PostgresRepository implements file metadata storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const fileColumns = `id, account_id, filename, file_type, content_type, size, checksum, storage_path, created_at, updated_at`

// Create inserts a file metadata row.
func (r *PostgresRepository) Create(ctx context.Context, file *models.FileRecord) error {
	query := `
		INSERT INTO files (id, account_id, filename, file_type, content_type, size, checksum, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := r.db.ExecContext(ctx, query,
		file.ID, file.AccountID, file.Filename, file.FileType, file.ContentType,
		file.Size, file.Checksum, file.StoragePath); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns the record or common.ErrFileNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.FileRecord, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`
	file := &models.FileRecord{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&file.ID, &file.AccountID, &file.Filename, &file.FileType, &file.ContentType,
		&file.Size, &file.Checksum, &file.StoragePath, &file.CreatedAt, &file.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrFileNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

// List returns the account's files, newest first.
func (r *PostgresRepository) List(ctx context.Context, accountID, fileType string, limit, offset int32) ([]*models.FileRecord, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE account_id = $1`
	args := []any{accountID}
	if fileType != "" {
		query += ` AND file_type = $2`
		args = append(args, fileType)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.FileRecord
	for rows.Next() {
		file := &models.FileRecord{}
		if err := rows.Scan(&file.ID, &file.AccountID, &file.Filename, &file.FileType, &file.ContentType,
			&file.Size, &file.Checksum, &file.StoragePath, &file.CreatedAt, &file.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, file)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Count returns how many records List would match without the paging.
func (r *PostgresRepository) Count(ctx context.Context, accountID, fileType string) (int64, error) {
	query := `SELECT COUNT(*) FROM files WHERE account_id = $1`
	args := []any{accountID}
	if fileType != "" {
		query += ` AND file_type = $2`
		args = append(args, fileType)
	}
	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}

// Delete removes the metadata row.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM files WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrFileNotFound
	}
	return nil
}

// SumSize returns total bytes across the account's live records.
func (r *PostgresRepository) SumSize(ctx context.Context, accountID string) (int64, error) {
	query := `SELECT COALESCE(SUM(size), 0) FROM files WHERE account_id = $1`
	var total int64
	if err := r.db.QueryRowContext(ctx, query, accountID).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}
