package families

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+families`).
		WithArgs("fam-1", "Smiths", "a1", "CODE1234").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Family{
		ID: "fam-1", Name: "Smiths", OwnerID: "a1", InviteCode: "CODE1234",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*owner_id,\s*invite_code,\s*created_at\s+FROM\s+families\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrFamilyNotFound) {
		t.Fatalf("want ErrFamilyNotFound, got %v", err)
	}
}

func TestGetByInviteCode_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "owner_id", "invite_code", "created_at"}).
		AddRow("fam-1", "Smiths", "a1", "CODE1234", time.Now())
	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*owner_id,\s*invite_code,\s*created_at\s+FROM\s+families\s+WHERE\s+invite_code\s*=\s*\$1`).
		WithArgs("CODE1234").
		WillReturnRows(rows)

	got, err := repo.GetByInviteCode(context.Background(), "CODE1234")
	if err != nil {
		t.Fatalf("GetByInviteCode error: %v", err)
	}
	if got.ID != "fam-1" || got.OwnerID != "a1" {
		t.Fatalf("unexpected family: %+v", got)
	}
}

func TestAddMember_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+family_members`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.AddMember(context.Background(), &models.FamilyMember{
		ID: "m1", FamilyID: "fam-1", AccountID: "a2", Role: models.RoleMember,
	})
	if !errors.Is(err, common.ErrAlreadyMember) {
		t.Fatalf("want ErrAlreadyMember, got %v", err)
	}
}

func TestGetMembers_JoinsAccountColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "family_id", "account_id", "role", "email", "display_name", "joined_at"}).
		AddRow("m1", "fam-1", "a1", "owner", "o@x.io", "Owner", now).
		AddRow("m2", "fam-1", "a2", "member", "m@x.io", "Member", now)
	mock.ExpectQuery(`(?s)SELECT\s+m\.id,.*JOIN\s+accounts\s+a\s+ON\s+a\.account_hash\s*=\s*m\.account_id.*ORDER\s+BY\s+m\.joined_at\s+ASC`).
		WithArgs("fam-1").
		WillReturnRows(rows)

	got, err := repo.GetMembers(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("GetMembers error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 members, got %d", len(got))
	}
	if got[0].Email != "o@x.io" || got[0].DisplayName != "Owner" || got[0].Role != models.RoleOwner {
		t.Fatalf("account columns not joined: %+v", got[0])
	}
}

func TestRemoveMember_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+family_members\s+WHERE\s+family_id\s*=\s*\$1\s+AND\s+account_id\s*=\s*\$2`).
		WithArgs("fam-1", "a2").
		WillReturnError(errors.New("db down"))

	err := repo.RemoveMember(context.Background(), "fam-1", "a2")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestAddChild_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+children`).
		WithArgs("ch-1", "fam-1", "Kid", int32(9), "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddChild(context.Background(), &models.Child{
		ID: "ch-1", FamilyID: "fam-1", Name: "Kid", Age: 9,
	})
	if err != nil {
		t.Fatalf("AddChild error: %v", err)
	}
}

func TestGetChild_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*family_id,\s*name,\s*age,\s*avatar_url,\s*created_at\s+FROM\s+children\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetChild(context.Background(), "ghost")
	if !errors.Is(err, common.ErrChildNotFound) {
		t.Fatalf("want ErrChildNotFound, got %v", err)
	}
}

func TestGetChildren_OrderedByName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "family_id", "name", "age", "avatar_url", "created_at"}).
		AddRow("ch-1", "fam-1", "Anna", int32(7), "", now).
		AddRow("ch-2", "fam-1", "Ben", int32(10), "", now)
	mock.ExpectQuery(`SELECT\s+id,\s*family_id,\s*name,\s*age,\s*avatar_url,\s*created_at\s+FROM\s+children\s+WHERE\s+family_id\s*=\s*\$1\s+ORDER\s+BY\s+name\s+ASC`).
		WithArgs("fam-1").
		WillReturnRows(rows)

	got, err := repo.GetChildren(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("GetChildren error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Anna" {
		t.Fatalf("unexpected children: %+v", got)
	}
}

func TestUpdateChild_MissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+children\s+SET\s+name\s*=\s*\$1`).
		WithArgs("Kid", int32(9), "", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateChild(context.Background(), &models.Child{ID: "ghost", Name: "Kid", Age: 9})
	if !errors.Is(err, common.ErrChildNotFound) {
		t.Fatalf("want ErrChildNotFound, got %v", err)
	}
}

func TestDeleteChild_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+children\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ch-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteChild(context.Background(), "ch-1"); err != nil {
		t.Fatalf("DeleteChild error: %v", err)
	}
}
