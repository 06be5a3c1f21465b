// Package authtokens provides the PostgreSQL-backed repository for minted
// refresh and device tokens, stored by SHA-256 hash for revocation lookup.
package authtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/dbx"
	"github.com/guardianos/guardian-sync/internal/server/models"
)

// PostgresRepository implements token storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a token row. DeviceID is stored as NULL when empty.
func (r *PostgresRepository) Create(ctx context.Context, token *models.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (id, account_id, device_id, token_hash, token_type, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query,
		token.ID, token.AccountID, nullable(token.DeviceID), token.TokenHash, token.TokenType, token.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByHash returns the non-revoked token row for the given hash, or
// common.ErrTokenNotFound when absent or already revoked.
func (r *PostgresRepository) GetByHash(ctx context.Context, tokenHash string) (*models.AuthToken, error) {
	query := `
		SELECT id, account_id, COALESCE(device_id::text, ''), token_hash, token_type, expires_at, revoked, created_at
		FROM auth_tokens
		WHERE token_hash = $1 AND revoked = FALSE
	`
	token := &models.AuthToken{}
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.ID, &token.AccountID, &token.DeviceID, &token.TokenHash,
		&token.TokenType, &token.ExpiresAt, &token.Revoked, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrTokenNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}

// Revoke marks the token with the given hash as revoked.
func (r *PostgresRepository) Revoke(ctx context.Context, tokenHash string) error {
	query := `UPDATE auth_tokens SET revoked = TRUE WHERE token_hash = $1`
	if _, err := r.db.ExecContext(ctx, query, tokenHash); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// RevokeAllForAccount revokes every token for the account (all token types).
// Used on logout-everywhere and password change.
func (r *PostgresRepository) RevokeAllForAccount(ctx context.Context, accountID string) error {
	query := `UPDATE auth_tokens SET revoked = TRUE WHERE account_id = $1`
	if _, err := r.db.ExecContext(ctx, query, accountID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// PurgeExpired deletes expired or revoked token rows and reports how many
// were removed.
func (r *PostgresRepository) PurgeExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM auth_tokens WHERE expires_at < now() OR revoked = TRUE`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
