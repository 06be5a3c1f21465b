// Package accounts provides the PostgreSQL-backed repository for account
// rows. Emails are unique case-insensitively.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/dbx"
	"github.com/guardianos/guardian-sync/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository implements account storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Create inserts a new account. A duplicate email yields
// common.ErrAccountAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (account_hash, email, password_hash, display_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		account.AccountHash, account.Email, account.PasswordHash, account.DisplayName).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrAccountAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

// GetByEmail looks an account up by email, case-insensitively.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, account_hash, email, password_hash, display_name, email_verified, status, created_at, updated_at
		FROM accounts
		WHERE lower(email) = lower($1)
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByHash looks an account up by its external account hash.
func (r *PostgresRepository) GetByHash(ctx context.Context, accountHash string) (*models.Account, error) {
	query := `
		SELECT id, account_hash, email, password_hash, display_name, email_verified, status, created_at, updated_at
		FROM accounts
		WHERE account_hash = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, accountHash))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(&account.ID, &account.AccountHash, &account.Email, &account.PasswordHash,
		&account.DisplayName, &account.EmailVerified, &account.Status, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAccountNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

// UpdatePassword replaces the stored password hash.
func (r *PostgresRepository) UpdatePassword(ctx context.Context, accountHash, newPasswordHash string) error {
	query := `UPDATE accounts SET password_hash = $1, updated_at = now() WHERE account_hash = $2`
	res, err := r.db.ExecContext(ctx, query, newPasswordHash, accountHash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

// VerifyEmail marks the account's email address as verified.
func (r *PostgresRepository) VerifyEmail(ctx context.Context, accountHash string) error {
	query := `UPDATE accounts SET email_verified = TRUE, updated_at = now() WHERE account_hash = $1`
	res, err := r.db.ExecContext(ctx, query, accountHash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrAccountNotFound
	}
	return nil
}
