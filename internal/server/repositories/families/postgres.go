// Package families provides the PostgreSQL-backed repository for families,
// their membership rows and child profiles.
package families

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

// PostgresRepository implements family storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts a family row. The owner's membership row is inserted
// separately so both can share one transaction.
func (r *PostgresRepository) Create(ctx context.Context, family *models.Family) error {
	query := `
		INSERT INTO families (id, name, owner_id, invite_code)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query,
		family.ID, family.Name, family.OwnerID, family.InviteCode); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns the family or common.ErrFamilyNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Family, error) {
	query := `SELECT id, name, owner_id, invite_code, created_at FROM families WHERE id = $1`
	return r.scanFamily(r.db.QueryRowContext(ctx, query, id))
}

// GetByInviteCode returns the family owning the invite code or
// common.ErrFamilyNotFound.
func (r *PostgresRepository) GetByInviteCode(ctx context.Context, inviteCode string) (*models.Family, error) {
	query := `SELECT id, name, owner_id, invite_code, created_at FROM families WHERE invite_code = $1`
	return r.scanFamily(r.db.QueryRowContext(ctx, query, inviteCode))
}

func (r *PostgresRepository) scanFamily(row *sql.Row) (*models.Family, error) {
	family := &models.Family{}
	err := row.Scan(&family.ID, &family.Name, &family.OwnerID, &family.InviteCode, &family.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrFamilyNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return family, nil
}

// AddMember inserts a membership row. A duplicate (family, account) pair
// yields common.ErrAlreadyMember.
func (r *PostgresRepository) AddMember(ctx context.Context, member *models.FamilyMember) error {
	query := `
		INSERT INTO family_members (id, family_id, account_id, role)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query,
		member.ID, member.FamilyID, member.AccountID, member.Role); err != nil {
		if isUniqueViolation(err) {
			return common.ErrAlreadyMember
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetMembers returns all membership rows for the family with the account's
// email and display name joined in.
func (r *PostgresRepository) GetMembers(ctx context.Context, familyID string) ([]*models.FamilyMember, error) {
	query := `
		SELECT m.id, m.family_id, m.account_id, m.role, a.email, a.display_name, m.joined_at
		FROM family_members m
		JOIN accounts a ON a.account_hash = m.account_id
		WHERE m.family_id = $1
		ORDER BY m.joined_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.FamilyMember
	for rows.Next() {
		m := &models.FamilyMember{}
		if err := rows.Scan(&m.ID, &m.FamilyID, &m.AccountID, &m.Role, &m.Email, &m.DisplayName, &m.JoinedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveMember deletes one membership row.
func (r *PostgresRepository) RemoveMember(ctx context.Context, familyID, accountID string) error {
	query := `DELETE FROM family_members WHERE family_id = $1 AND account_id = $2`
	if _, err := r.db.ExecContext(ctx, query, familyID, accountID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// AddChild inserts a child profile.
func (r *PostgresRepository) AddChild(ctx context.Context, child *models.Child) error {
	query := `
		INSERT INTO children (id, family_id, name, age, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query,
		child.ID, child.FamilyID, child.Name, child.Age, child.AvatarURL); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetChild returns the child profile or common.ErrChildNotFound.
func (r *PostgresRepository) GetChild(ctx context.Context, id string) (*models.Child, error) {
	query := `SELECT id, family_id, name, age, avatar_url, created_at FROM children WHERE id = $1`
	child := &models.Child{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&child.ID, &child.FamilyID, &child.Name, &child.Age, &child.AvatarURL, &child.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrChildNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return child, nil
}

// GetChildren returns all child profiles of the family.
func (r *PostgresRepository) GetChildren(ctx context.Context, familyID string) ([]*models.Child, error) {
	query := `SELECT id, family_id, name, age, avatar_url, created_at FROM children WHERE family_id = $1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Child
	for rows.Next() {
		child := &models.Child{}
		if err := rows.Scan(&child.ID, &child.FamilyID, &child.Name, &child.Age, &child.AvatarURL, &child.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, child)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateChild rewrites name, age and avatar URL.
func (r *PostgresRepository) UpdateChild(ctx context.Context, child *models.Child) error {
	query := `UPDATE children SET name = $1, age = $2, avatar_url = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, child.Name, child.Age, child.AvatarURL, child.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireChildRow(res)
}

// DeleteChild removes the child profile.
func (r *PostgresRepository) DeleteChild(ctx context.Context, id string) error {
	query := `DELETE FROM children WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireChildRow(res)
}

func requireChildRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrChildNotFound
	}
	return nil
}
