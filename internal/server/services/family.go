package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/dbx"
	"github.com/guardianos/guardian-sync/internal/server/models"
	"github.com/guardianos/guardian-sync/internal/server/repositories/repomanager"
)

const (
	inviteCodeLength = 8
	inviteValidity   = 7 * 24 * time.Hour
)

// Invitation is what InviteMember hands back. The code is the family's
// shared invite code; there is no per-invitee row.
type Invitation struct {
	InviteCode string
	ExpiresAt  time.Time
}

// FamilyView is a family with its members and children, as returned to a
// requesting member.
type FamilyView struct {
	Family   *models.Family
	Members  []*models.FamilyMember
	Children []*models.Child
}

// FamilyService models the many-accounts-one-family relationship. Mutations
// are gated by role: owners and admins manage membership and children,
// plain members only read.
type FamilyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewFamilyService constructs a FamilyService using repositories.
func NewFamilyService(db *sql.DB, m repomanager.RepositoryManager) *FamilyService {
	return &FamilyService{db: db, repomanager: m}
}

// CreateFamily creates a family with a fresh invite code and adds the owner
// as its first member, both in one transaction.
func (s *FamilyService) CreateFamily(ctx context.Context, ownerID, name string) (*models.Family, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: family name is required", common.ErrInvalidInput)
	}

	code, err := common.MakeInviteCode(inviteCodeLength)
	if err != nil {
		return nil, fmt.Errorf("error generating invite code: %w", err)
	}

	family := &models.Family{
		ID:         uuid.NewString(),
		Name:       name,
		OwnerID:    ownerID,
		InviteCode: code,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Families(tx)
		if err := repo.Create(ctx, family); err != nil {
			return fmt.Errorf("error creating family: %w", err)
		}
		member := &models.FamilyMember{
			ID:        uuid.NewString(),
			FamilyID:  family.ID,
			AccountID: ownerID,
			Role:      models.RoleOwner,
		}
		return repo.AddMember(ctx, member)
	}); err != nil {
		return nil, err
	}

	return family, nil
}

// GetFamily returns the family with members and children. The requester must
// be a member of the family.
func (s *FamilyService) GetFamily(ctx context.Context, accountID, familyID string) (*FamilyView, error) {
	repo := s.repomanager.Families(s.db)

	family, err := repo.GetByID(ctx, familyID)
	if err != nil {
		return nil, err
	}
	members, err := repo.GetMembers(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("error listing members: %w", err)
	}
	if roleOf(members, accountID) == "" {
		return nil, common.ErrPermissionDenied
	}
	children, err := repo.GetChildren(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("error listing children: %w", err)
	}

	return &FamilyView{Family: family, Members: members, Children: children}, nil
}

// InviteMember returns the family's invite code for passing along to the
// invitee. Only owners and admins may invite.
func (s *FamilyService) InviteMember(ctx context.Context, familyID, inviterID string) (*Invitation, error) {
	family, err := s.repomanager.Families(s.db).GetByID(ctx, familyID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAdmin(ctx, familyID, inviterID); err != nil {
		return nil, err
	}
	return &Invitation{
		InviteCode: family.InviteCode,
		ExpiresAt:  time.Now().Add(inviteValidity),
	}, nil
}

// AcceptInvitation joins the account to the family matching the code, with
// role member. An unknown code yields common.ErrFamilyNotFound.
func (s *FamilyService) AcceptInvitation(ctx context.Context, accountID, inviteCode string) (*models.Family, error) {
	repo := s.repomanager.Families(s.db)

	family, err := repo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}

	member := &models.FamilyMember{
		ID:        uuid.NewString(),
		FamilyID:  family.ID,
		AccountID: accountID,
		Role:      models.RoleMember,
	}
	if err := repo.AddMember(ctx, member); err != nil {
		return nil, err
	}
	return family, nil
}

// RemoveMember removes targetID from the family. The owner can never be
// removed. Self-removal is allowed for any role; removing someone else
// requires owner or admin.
func (s *FamilyService) RemoveMember(ctx context.Context, familyID, requesterID, targetID string) error {
	family, err := s.repomanager.Families(s.db).GetByID(ctx, familyID)
	if err != nil {
		return err
	}
	if targetID == family.OwnerID {
		return common.ErrPermissionDenied
	}
	if requesterID != targetID {
		if err := s.requireAdmin(ctx, familyID, requesterID); err != nil {
			return err
		}
	}
	return s.repomanager.Families(s.db).RemoveMember(ctx, familyID, targetID)
}

// AddChild creates a child profile. Requires owner or admin.
func (s *FamilyService) AddChild(ctx context.Context, familyID, requesterID, name string, age int32, avatarURL string) (*models.Child, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: child name is required", common.ErrInvalidInput)
	}
	if err := s.requireAdmin(ctx, familyID, requesterID); err != nil {
		return nil, err
	}

	child := &models.Child{
		ID:        uuid.NewString(),
		FamilyID:  familyID,
		Name:      name,
		Age:       age,
		AvatarURL: avatarURL,
	}
	if err := s.repomanager.Families(s.db).AddChild(ctx, child); err != nil {
		return nil, fmt.Errorf("error creating child: %w", err)
	}
	return child, nil
}

// UpdateChild updates a child profile. Requires owner or admin of the
// child's family.
func (s *FamilyService) UpdateChild(ctx context.Context, requesterID, childID, name string, age int32, avatarURL string) (*models.Child, error) {
	repo := s.repomanager.Families(s.db)

	child, err := repo.GetChild(ctx, childID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAdmin(ctx, child.FamilyID, requesterID); err != nil {
		return nil, err
	}

	if name != "" {
		child.Name = name
	}
	if age > 0 {
		child.Age = age
	}
	if avatarURL != "" {
		child.AvatarURL = avatarURL
	}
	if err := repo.UpdateChild(ctx, child); err != nil {
		return nil, fmt.Errorf("error updating child: %w", err)
	}
	return child, nil
}

// RemoveChild deletes a child profile. Requires owner or admin of the
// child's family.
func (s *FamilyService) RemoveChild(ctx context.Context, requesterID, childID string) error {
	repo := s.repomanager.Families(s.db)

	child, err := repo.GetChild(ctx, childID)
	if err != nil {
		return err
	}
	if err := s.requireAdmin(ctx, child.FamilyID, requesterID); err != nil {
		return err
	}
	return repo.DeleteChild(ctx, childID)
}

// requireAdmin checks that accountID holds owner or admin in the family.
func (s *FamilyService) requireAdmin(ctx context.Context, familyID, accountID string) error {
	members, err := s.repomanager.Families(s.db).GetMembers(ctx, familyID)
	if err != nil {
		return fmt.Errorf("error listing members: %w", err)
	}
	switch roleOf(members, accountID) {
	case models.RoleOwner, models.RoleAdmin:
		return nil
	}
	return common.ErrPermissionDenied
}

func roleOf(members []*models.FamilyMember, accountID string) string {
	for _, m := range members {
		if m.AccountID == accountID {
			return m.Role
		}
	}
	return ""
}
