package families

import (
	"context"

	"github.com/guardianos/guardian-sync/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, family *models.Family) error
	GetByID(ctx context.Context, id string) (*models.Family, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (*models.Family, error)

	AddMember(ctx context.Context, member *models.FamilyMember) error
	GetMembers(ctx context.Context, familyID string) ([]*models.FamilyMember, error)
	RemoveMember(ctx context.Context, familyID, accountID string) error

	AddChild(ctx context.Context, child *models.Child) error
	GetChild(ctx context.Context, id string) (*models.Child, error)
	GetChildren(ctx context.Context, familyID string) ([]*models.Child, error)
	UpdateChild(ctx context.Context, child *models.Child) error
	DeleteChild(ctx context.Context, id string) error
}
