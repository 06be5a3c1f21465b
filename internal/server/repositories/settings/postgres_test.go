package settings

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func entryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "account_id", "device_id", "key", "value",
		"category", "checksum", "modified_at", "created_at"})
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := entryRows().AddRow("e1", "a1", "d1", "desktop.wallpaper", []byte("v"), "desktop", "sum", now, now)
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+settings\s+WHERE\s+account_id\s*=\s*\$1\s+AND\s+key\s*=\s*\$2`).
		WithArgs("a1", "desktop.wallpaper").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "a1", "desktop.wallpaper")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Key != "desktop.wallpaper" || got.Category != "desktop" {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestGet_AbsentIsNilNotError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+settings\s+WHERE\s+account_id`).
		WithArgs("a1", "no.such.key").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), "a1", "no.such.key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for an absent key, got %+v", got)
	}
}

func TestGet_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+settings`).
		WithArgs("a1", "k").
		WillReturnError(errors.New("db down"))

	_, err := repo.Get(context.Background(), "a1", "k")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`(?s)INSERT\s+INTO\s+settings.*ON\s+CONFLICT\s+\(account_id,\s*key\).*WHERE\s+settings\.modified_at\s*<=\s*EXCLUDED\.modified_at`).
		WithArgs("e1", "a1", "d1", "desktop.wallpaper", []byte("v"), "desktop", "sum", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &models.SettingsEntry{
		ID: "e1", AccountID: "a1", DeviceID: "d1", Key: "desktop.wallpaper",
		Value: []byte("v"), Category: "desktop", Checksum: "sum", ModifiedAt: now,
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
}

func TestUpsert_StaleWriteTouchesNoRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// a concurrent newer row makes the guarded update fire on zero rows;
	// that is last-writer-wins resolving itself, not an error
	old := time.Now().Add(-time.Hour)
	mock.ExpectExec(`(?s)INSERT\s+INTO\s+settings.*WHERE\s+settings\.modified_at\s*<=\s*EXCLUDED\.modified_at`).
		WithArgs("e1", "a1", "d1", "k", []byte("v"), "desktop", "sum", old).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Upsert(context.Background(), &models.SettingsEntry{
		ID: "e1", AccountID: "a1", DeviceID: "d1", Key: "k",
		Value: []byte("v"), Category: "desktop", Checksum: "sum", ModifiedAt: old,
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
}

func TestUpsert_EmptyDeviceStoredAsNull(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`INSERT\s+INTO\s+settings`).
		WithArgs("e1", "a1", nil, "k", []byte("v"), "desktop", "sum", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &models.SettingsEntry{
		ID: "e1", AccountID: "a1", Key: "k",
		Value: []byte("v"), Category: "desktop", Checksum: "sum", ModifiedAt: now,
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
}

func TestSelectSince_NoCategoryFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	since := time.Now().Add(-time.Hour)
	now := time.Now()
	rows := entryRows().
		AddRow("e1", "a1", "", "k1", []byte("v1"), "desktop", "s1", now, now).
		AddRow("e2", "a1", "", "k2", []byte("v2"), "theme", "s2", now, now)
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+settings\s+WHERE\s+account_id\s*=\s*\$1\s+AND\s+modified_at\s*>\s*\$2\s+ORDER\s+BY\s+modified_at\s+ASC`).
		WithArgs("a1", since).
		WillReturnRows(rows)

	got, err := repo.SelectSince(context.Background(), "a1", since, nil)
	if err != nil {
		t.Fatalf("SelectSince error: %v", err)
	}
	if len(got) != 2 || got[0].Key != "k1" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestSelectSince_CategoryFilterAddsPlaceholders(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	since := time.Now().Add(-time.Hour)
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+settings\s+WHERE\s+account_id\s*=\s*\$1\s+AND\s+modified_at\s*>\s*\$2\s+AND\s+category\s+IN\s+\(\$3,\s*\$4\)`).
		WithArgs("a1", since, "desktop", "theme").
		WillReturnRows(entryRows())

	got, err := repo.SelectSince(context.Background(), "a1", since, []string{"desktop", "theme"})
	if err != nil {
		t.Fatalf("SelectSince error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %+v", got)
	}
}

func TestLastModified_EmptyAccountIsEpoch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	epoch := time.Unix(0, 0).UTC()
	rows := sqlmock.NewRows([]string{"coalesce"}).AddRow(epoch)
	mock.ExpectQuery(`SELECT\s+COALESCE\(MAX\(modified_at\),\s*'epoch'::timestamptz\)\s+FROM\s+settings`).
		WithArgs("a1").
		WillReturnRows(rows)

	got, err := repo.LastModified(context.Background(), "a1")
	if err != nil {
		t.Fatalf("LastModified error: %v", err)
	}
	if !got.Equal(epoch) {
		t.Fatalf("expected epoch, got %v", got)
	}
}
