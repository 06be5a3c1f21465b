package models

import "time"

// Family groups accounts and children under one owner. InviteCode is the
// short shared code a joining account presents.
type Family struct {
	ID         string
	Name       string
	OwnerID    string
	InviteCode string
	CreatedAt  time.Time
}

// FamilyMember is an account's role inside a family.
// (family_id, account_id) is unique. Email and DisplayName are joined in
// from the account row for presentation.
type FamilyMember struct {
	ID          string
	FamilyID    string
	AccountID   string
	Role        string
	Email       string
	DisplayName string
	JoinedAt    time.Time
}

// Family roles in decreasing order of privilege.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Child is a non-login profile belonging to a family. Children have no
// credentials; they exist only as targets of policy.
type Child struct {
	ID        string
	FamilyID  string
	Name      string
	Age       int32
	AvatarURL string
	CreatedAt time.Time
}
