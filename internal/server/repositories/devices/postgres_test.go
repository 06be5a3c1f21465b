package devices

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
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func deviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "account_id", "name", "device_type", "os_version",
		"hardware_id", "last_seen_at", "status", "created_at"})
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+devices`).
		WithArgs("d1", "a1", "Laptop", "laptop", "1.2.0", "hw-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Device{
		ID: "d1", AccountID: "a1", Name: "Laptop", DeviceType: "laptop",
		OSVersion: "1.2.0", HardwareID: "hw-1",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_EmptyHardwareIDStoredAsNull(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+devices`).
		WithArgs("d1", "a1", "Laptop", "laptop", "1.2.0", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Device{
		ID: "d1", AccountID: "a1", Name: "Laptop", DeviceType: "laptop", OSVersion: "1.2.0",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+devices\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrDeviceNotFound) {
		t.Fatalf("want ErrDeviceNotFound, got %v", err)
	}
}

func TestGetByHardwareID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := deviceRows().AddRow("d1", "a1", "Laptop", "laptop", "1.2.0", "hw-1", now, "active", now)
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+devices\s+WHERE\s+hardware_id\s*=\s*\$1`).
		WithArgs("hw-1").
		WillReturnRows(rows)

	got, err := repo.GetByHardwareID(context.Background(), "hw-1")
	if err != nil {
		t.Fatalf("GetByHardwareID error: %v", err)
	}
	if got.ID != "d1" || got.Status != models.DeviceStatusActive {
		t.Fatalf("unexpected device: %+v", got)
	}
}

func TestListForAccount_OnlyActive(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := deviceRows().
		AddRow("d1", "a1", "Laptop", "laptop", "1.2.0", "", now, "active", now).
		AddRow("d2", "a1", "Tablet", "tablet", "1.1.0", "", now.Add(-time.Hour), "active", now)
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+devices\s+WHERE\s+account_id\s*=\s*\$1\s+AND\s+status\s*=\s*'active'\s+ORDER\s+BY\s+last_seen_at\s+DESC`).
		WithArgs("a1").
		WillReturnRows(rows)

	got, err := repo.ListForAccount(context.Background(), "a1")
	if err != nil {
		t.Fatalf("ListForAccount error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "d1" {
		t.Fatalf("unexpected devices: %+v", got)
	}
}

func TestTouchLastSeen_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+devices\s+SET\s+last_seen_at\s*=\s*now\(\)`).
		WithArgs("d1").
		WillReturnError(errors.New("db down"))

	err := repo.TouchLastSeen(context.Background(), "d1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestRevoke_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+devices\s+SET\s+status\s*=\s*'revoked'\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("d1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Revoke(context.Background(), "d1"); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}
}

func TestRevoke_MissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+devices\s+SET\s+status\s*=\s*'revoked'`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Revoke(context.Background(), "ghost")
	if !errors.Is(err, common.ErrDeviceNotFound) {
		t.Fatalf("want ErrDeviceNotFound, got %v", err)
	}
}
