package services

import (
	"context"
	"errors"
	"testing"

	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/server/models"
)

func members(pairs ...[2]string) []*models.FamilyMember {
	var out []*models.FamilyMember
	for _, p := range pairs {
		out = append(out, &models.FamilyMember{AccountID: p[0], Role: p[1]})
	}
	return out
}

func TestCreateFamily_OwnerMembershipInOneTx(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeFamiliesRepo{}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	family, err := s.CreateFamily(context.Background(), "a1", "Smiths")
	if err != nil {
		t.Fatalf("CreateFamily error: %v", err)
	}
	if family.OwnerID != "a1" || len(family.InviteCode) != inviteCodeLength {
		t.Fatalf("unexpected family: %+v", family)
	}
	if len(repo.addedMembers) != 1 || repo.addedMembers[0].Role != models.RoleOwner {
		t.Fatalf("owner membership missing: %+v", repo.addedMembers)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateFamily_MemberInsertRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeFamiliesRepo{addMemberErr: errBoom{}}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	if _, err := s.CreateFamily(context.Background(), "a1", "Smiths"); err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestGetFamily_NonMemberDenied(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{
		byID:    &models.Family{ID: "f1", OwnerID: "owner"},
		members: members([2]string{"owner", models.RoleOwner}),
	}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	if _, err := s.GetFamily(context.Background(), "stranger", "f1"); !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
}

func TestGetFamily_MemberSeesView(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{
		byID:     &models.Family{ID: "f1", OwnerID: "owner"},
		members:  members([2]string{"owner", models.RoleOwner}, [2]string{"m1", models.RoleMember}),
		children: []*models.Child{{ID: "c1", Name: "Kid"}},
	}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	view, err := s.GetFamily(context.Background(), "m1", "f1")
	if err != nil {
		t.Fatalf("GetFamily error: %v", err)
	}
	if len(view.Members) != 2 || len(view.Children) != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestInviteMember_RequiresAdmin(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{
		byID:    &models.Family{ID: "f1", InviteCode: "ABCD1234"},
		members: members([2]string{"m1", models.RoleMember}),
	}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	if _, err := s.InviteMember(context.Background(), "f1", "m1"); !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
}

func TestInviteMember_ReturnsFamilyCode(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{
		byID:    &models.Family{ID: "f1", InviteCode: "ABCD1234"},
		members: members([2]string{"admin", models.RoleAdmin}),
	}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	inv, err := s.InviteMember(context.Background(), "f1", "admin")
	if err != nil {
		t.Fatalf("InviteMember error: %v", err)
	}
	if inv.InviteCode != "ABCD1234" || inv.ExpiresAt.IsZero() {
		t.Fatalf("unexpected invitation: %+v", inv)
	}
}

func TestAcceptInvitation_JoinsAsMember(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{byCode: &models.Family{ID: "f1"}}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	family, err := s.AcceptInvitation(context.Background(), "a2", "ABCD1234")
	if err != nil {
		t.Fatalf("AcceptInvitation error: %v", err)
	}
	if family.ID != "f1" {
		t.Fatalf("unexpected family: %+v", family)
	}
	if len(repo.addedMembers) != 1 || repo.addedMembers[0].Role != models.RoleMember {
		t.Fatalf("unexpected membership: %+v", repo.addedMembers)
	}
}

func TestAcceptInvitation_UnknownCode(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewFamilyService(db, &fakeRepoManager{families: &fakeFamiliesRepo{}})

	if _, err := s.AcceptInvitation(context.Background(), "a2", "NOPE"); !errors.Is(err, common.ErrFamilyNotFound) {
		t.Fatalf("want ErrFamilyNotFound, got %v", err)
	}
}

func TestAcceptInvitation_AlreadyMember(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{byCode: &models.Family{ID: "f1"}, addMemberErr: common.ErrAlreadyMember}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	if _, err := s.AcceptInvitation(context.Background(), "a2", "ABCD1234"); !errors.Is(err, common.ErrAlreadyMember) {
		t.Fatalf("want ErrAlreadyMember, got %v", err)
	}
}

func TestRemoveMember_OwnerProtected(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{
		byID:    &models.Family{ID: "f1", OwnerID: "owner"},
		members: members([2]string{"owner", models.RoleOwner}),
	}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	if err := s.RemoveMember(context.Background(), "f1", "owner", "owner"); !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
}

func TestRemoveMember_SelfRemovalAllowed(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{
		byID:    &models.Family{ID: "f1", OwnerID: "owner"},
		members: members([2]string{"owner", models.RoleOwner}, [2]string{"m1", models.RoleMember}),
	}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	if err := s.RemoveMember(context.Background(), "f1", "m1", "m1"); err != nil {
		t.Fatalf("self-removal should pass: %v", err)
	}
	if len(repo.removed) != 1 {
		t.Fatalf("membership row not removed")
	}
}

func TestRemoveMember_PlainMemberCannotRemoveOthers(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{
		byID:    &models.Family{ID: "f1", OwnerID: "owner"},
		members: members([2]string{"owner", models.RoleOwner}, [2]string{"m1", models.RoleMember}, [2]string{"m2", models.RoleMember}),
	}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	if err := s.RemoveMember(context.Background(), "f1", "m1", "m2"); !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
}

func TestAddChild_RequiresAdmin(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{members: members([2]string{"m1", models.RoleMember})}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	if _, err := s.AddChild(context.Background(), "f1", "m1", "Kid", 8, ""); !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
}

func TestUpdateChild_PartialUpdate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{
		child:   &models.Child{ID: "c1", FamilyID: "f1", Name: "Kid", Age: 8, AvatarURL: "old.png"},
		members: members([2]string{"admin", models.RoleAdmin}),
	}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	child, err := s.UpdateChild(context.Background(), "admin", "c1", "", 9, "")
	if err != nil {
		t.Fatalf("UpdateChild error: %v", err)
	}
	if child.Name != "Kid" || child.Age != 9 || child.AvatarURL != "old.png" {
		t.Fatalf("partial update wrong: %+v", child)
	}
}

func TestRemoveChild_Admin(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeFamiliesRepo{
		child:   &models.Child{ID: "c1", FamilyID: "f1"},
		members: members([2]string{"owner", models.RoleOwner}),
	}
	s := NewFamilyService(db, &fakeRepoManager{families: repo})

	if err := s.RemoveChild(context.Background(), "owner", "c1"); err != nil {
		t.Fatalf("RemoveChild error: %v", err)
	}
	if repo.deletedChild != "c1" {
		t.Fatalf("child not deleted: %q", repo.deletedChild)
	}
}
