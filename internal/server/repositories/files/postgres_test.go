package files

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

func fileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "account_id", "filename", "file_type", "content_type",
		"size", "checksum", "storage_path", "created_at", "updated_at"})
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+files`).
		WithArgs("f1", "a1", "bg.png", "wallpaper", "image/png", int64(10), "sum", "a1/f1/bg.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.FileRecord{
		ID: "f1", AccountID: "a1", Filename: "bg.png", FileType: "wallpaper",
		ContentType: "image/png", Size: 10, Checksum: "sum", StoragePath: "a1/f1/bg.png",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := fileRows().AddRow("f1", "a1", "bg.png", "wallpaper", "image/png", int64(10), "sum", "a1/f1/bg.png", now, now)
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+files\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("f1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "f1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.AccountID != "a1" || got.StoragePath != "a1/f1/bg.png" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+files`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrFileNotFound) {
		t.Fatalf("want ErrFileNotFound, got %v", err)
	}
}

func TestList_WithTypeFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := fileRows().AddRow("f1", "a1", "bg.png", "wallpaper", "image/png", int64(10), "sum", "p", now, now)
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+files\s+WHERE\s+account_id\s*=\s*\$1\s+AND\s+file_type\s*=\s*\$2\s+ORDER\s+BY\s+created_at\s+DESC\s+LIMIT\s+\$3\s+OFFSET\s+\$4`).
		WithArgs("a1", "wallpaper", int32(20), int32(0)).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "a1", "wallpaper", 20, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "f1" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestList_NoTypeFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+files\s+WHERE\s+account_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s+LIMIT\s+\$2\s+OFFSET\s+\$3`).
		WithArgs("a1", int32(10), int32(5)).
		WillReturnRows(fileRows())

	got, err := repo.List(context.Background(), "a1", "", 10, 5)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+files\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("f1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "f1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_MissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+files`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	if !errors.Is(err, common.ErrFileNotFound) {
		t.Fatalf("want ErrFileNotFound, got %v", err)
	}
}

func TestCount_WithTypeFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(int64(41))
	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+files\s+WHERE\s+account_id\s*=\s*\$1\s+AND\s+file_type\s*=\s*\$2`).
		WithArgs("a1", "wallpaper").
		WillReturnRows(rows)

	total, err := repo.Count(context.Background(), "a1", "wallpaper")
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if total != 41 {
		t.Fatalf("expected 41, got %d", total)
	}
}

func TestCount_NoTypeFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(int64(3))
	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+files\s+WHERE\s+account_id\s*=\s*\$1`).
		WithArgs("a1").
		WillReturnRows(rows)

	total, err := repo.Count(context.Background(), "a1", "")
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3, got %d", total)
	}
}

func TestSumSize_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+COALESCE\(SUM\(size\),\s*0\)\s+FROM\s+files`).
		WithArgs("a1").
		WillReturnError(errors.New("db down"))

	_, err := repo.SumSize(context.Background(), "a1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSumSize_Total(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(12345))
	mock.ExpectQuery(`SELECT\s+COALESCE\(SUM\(size\),\s*0\)\s+FROM\s+files`).
		WithArgs("a1").
		WillReturnRows(rows)

	total, err := repo.SumSize(context.Background(), "a1")
	if err != nil {
		t.Fatalf("SumSize error: %v", err)
	}
	if total != 12345 {
		t.Fatalf("expected 12345, got %d", total)
	}
}
