package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/dbx"
	"github.com/guardianos/guardian-sync/internal/server/models"
	accountsrepo "github.com/guardianos/guardian-sync/internal/server/repositories/accounts"
	authtokensrepo "github.com/guardianos/guardian-sync/internal/server/repositories/authtokens"
	devicesrepo "github.com/guardianos/guardian-sync/internal/server/repositories/devices"
	familiesrepo "github.com/guardianos/guardian-sync/internal/server/repositories/families"
	filesrepo "github.com/guardianos/guardian-sync/internal/server/repositories/files"
	settingsrepo "github.com/guardianos/guardian-sync/internal/server/repositories/settings"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// --- fake repositories ---

type fakeAccountsRepo struct {
	createOut *models.Account
	createErr error

	byEmail    *models.Account
	byEmailErr error

	byHash    *models.Account
	byHashErr error

	updatePasswordErr error
	updatedHash       string
}

func (f *fakeAccountsRepo) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return a, nil
}

func (f *fakeAccountsRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	if f.byEmail == nil {
		return nil, common.ErrAccountNotFound
	}
	return f.byEmail, nil
}

func (f *fakeAccountsRepo) GetByHash(ctx context.Context, hash string) (*models.Account, error) {
	if f.byHashErr != nil {
		return nil, f.byHashErr
	}
	if f.byHash == nil {
		return nil, common.ErrAccountNotFound
	}
	return f.byHash, nil
}

func (f *fakeAccountsRepo) UpdatePassword(ctx context.Context, hash, newHash string) error {
	f.updatedHash = newHash
	return f.updatePasswordErr
}

func (f *fakeAccountsRepo) VerifyEmail(ctx context.Context, hash string) error { return nil }

type fakeAuthTokensRepo struct {
	created   []*models.AuthToken
	createErr error

	byHash    *models.AuthToken
	byHashErr error

	revoked    []string
	revokeErr  error
	revokedAll []string

	purged   int64
	purgeErr error
}

func (f *fakeAuthTokensRepo) Create(ctx context.Context, tok *models.AuthToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, tok)
	return nil
}

func (f *fakeAuthTokensRepo) GetByHash(ctx context.Context, hash string) (*models.AuthToken, error) {
	if f.byHashErr != nil {
		return nil, f.byHashErr
	}
	if f.byHash == nil {
		return nil, common.ErrTokenNotFound
	}
	return f.byHash, nil
}

func (f *fakeAuthTokensRepo) Revoke(ctx context.Context, hash string) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.revoked = append(f.revoked, hash)
	return nil
}

func (f *fakeAuthTokensRepo) RevokeAllForAccount(ctx context.Context, accountID string) error {
	f.revokedAll = append(f.revokedAll, accountID)
	return nil
}

func (f *fakeAuthTokensRepo) PurgeExpired(ctx context.Context) (int64, error) {
	return f.purged, f.purgeErr
}

type fakeDevicesRepo struct {
	created   *models.Device
	createErr error

	byID    *models.Device
	byIDErr error

	byHardware    *models.Device
	byHardwareErr error

	list    []*models.Device
	listErr error

	touched    []string
	touchErr   error
	revoked    []string
	revokeErr  error
}

func (f *fakeDevicesRepo) Create(ctx context.Context, d *models.Device) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = d
	return nil
}

func (f *fakeDevicesRepo) GetByID(ctx context.Context, id string) (*models.Device, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	if f.byID == nil {
		return nil, common.ErrDeviceNotFound
	}
	return f.byID, nil
}

func (f *fakeDevicesRepo) GetByHardwareID(ctx context.Context, hw string) (*models.Device, error) {
	if f.byHardwareErr != nil {
		return nil, f.byHardwareErr
	}
	if f.byHardware == nil {
		return nil, common.ErrDeviceNotFound
	}
	return f.byHardware, nil
}

func (f *fakeDevicesRepo) ListForAccount(ctx context.Context, accountID string) ([]*models.Device, error) {
	return f.list, f.listErr
}

func (f *fakeDevicesRepo) TouchLastSeen(ctx context.Context, id string) error {
	if f.touchErr != nil {
		return f.touchErr
	}
	f.touched = append(f.touched, id)
	return nil
}

func (f *fakeDevicesRepo) Revoke(ctx context.Context, id string) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.revoked = append(f.revoked, id)
	return nil
}

type fakeSettingsRepo struct {
	existing map[string]*models.SettingsEntry
	getErr   error

	upserted  []*models.SettingsEntry
	upsertErr error

	sinceOut []*models.SettingsEntry
	sinceErr error
	sinceArg time.Time

	lastModified time.Time
	lastErr      error
}

func (f *fakeSettingsRepo) Get(ctx context.Context, accountID, key string) (*models.SettingsEntry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing[key], nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, e *models.SettingsEntry) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, e)
	return nil
}

func (f *fakeSettingsRepo) SelectSince(ctx context.Context, accountID string, since time.Time, categories []string) ([]*models.SettingsEntry, error) {
	f.sinceArg = since
	return f.sinceOut, f.sinceErr
}

func (f *fakeSettingsRepo) LastModified(ctx context.Context, accountID string) (time.Time, error) {
	return f.lastModified, f.lastErr
}

type fakeFilesRepo struct {
	created   []*models.FileRecord
	createErr error

	byID    *models.FileRecord
	byIDErr error

	list     []*models.FileRecord
	count    int64
	countErr error
	listErr  error

	deleted   []string
	deleteErr error

	sumSize int64
	sumErr  error
}

func (f *fakeFilesRepo) Create(ctx context.Context, rec *models.FileRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, rec)
	return nil
}

func (f *fakeFilesRepo) GetByID(ctx context.Context, id string) (*models.FileRecord, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	if f.byID == nil {
		return nil, common.ErrFileNotFound
	}
	return f.byID, nil
}

func (f *fakeFilesRepo) List(ctx context.Context, accountID, fileType string, limit, offset int32) ([]*models.FileRecord, error) {
	return f.list, f.listErr
}

func (f *fakeFilesRepo) Count(ctx context.Context, accountID, fileType string) (int64, error) {
	return f.count, f.countErr
}

func (f *fakeFilesRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeFilesRepo) SumSize(ctx context.Context, accountID string) (int64, error) {
	return f.sumSize, f.sumErr
}

type fakeFamiliesRepo struct {
	created   *models.Family
	createErr error

	byID    *models.Family
	byIDErr error

	byCode    *models.Family
	byCodeErr error

	members       []*models.FamilyMember
	membersErr    error
	addedMembers  []*models.FamilyMember
	addMemberErr  error
	removed       [][2]string
	removeErr     error

	children     []*models.Child
	childrenErr  error
	child        *models.Child
	childErr     error
	addedChild   *models.Child
	addChildErr  error
	updatedChild *models.Child
	deletedChild string
}

func (f *fakeFamiliesRepo) Create(ctx context.Context, fam *models.Family) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = fam
	return nil
}

func (f *fakeFamiliesRepo) GetByID(ctx context.Context, id string) (*models.Family, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	if f.byID == nil {
		return nil, common.ErrFamilyNotFound
	}
	return f.byID, nil
}

func (f *fakeFamiliesRepo) GetByInviteCode(ctx context.Context, code string) (*models.Family, error) {
	if f.byCodeErr != nil {
		return nil, f.byCodeErr
	}
	if f.byCode == nil {
		return nil, common.ErrFamilyNotFound
	}
	return f.byCode, nil
}

func (f *fakeFamiliesRepo) AddMember(ctx context.Context, m *models.FamilyMember) error {
	if f.addMemberErr != nil {
		return f.addMemberErr
	}
	f.addedMembers = append(f.addedMembers, m)
	return nil
}

func (f *fakeFamiliesRepo) GetMembers(ctx context.Context, familyID string) ([]*models.FamilyMember, error) {
	return f.members, f.membersErr
}

func (f *fakeFamiliesRepo) RemoveMember(ctx context.Context, familyID, accountID string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, [2]string{familyID, accountID})
	return nil
}

func (f *fakeFamiliesRepo) AddChild(ctx context.Context, c *models.Child) error {
	if f.addChildErr != nil {
		return f.addChildErr
	}
	f.addedChild = c
	return nil
}

func (f *fakeFamiliesRepo) GetChild(ctx context.Context, id string) (*models.Child, error) {
	if f.childErr != nil {
		return nil, f.childErr
	}
	if f.child == nil {
		return nil, common.ErrChildNotFound
	}
	return f.child, nil
}

func (f *fakeFamiliesRepo) GetChildren(ctx context.Context, familyID string) ([]*models.Child, error) {
	return f.children, f.childrenErr
}

func (f *fakeFamiliesRepo) UpdateChild(ctx context.Context, c *models.Child) error {
	f.updatedChild = c
	return nil
}

func (f *fakeFamiliesRepo) DeleteChild(ctx context.Context, id string) error {
	f.deletedChild = id
	return nil
}

// --- fake repository manager ---

type fakeRepoManager struct {
	accounts   *fakeAccountsRepo
	authtokens *fakeAuthTokensRepo
	devices    *fakeDevicesRepo
	settings   *fakeSettingsRepo
	files      *fakeFilesRepo
	families   *fakeFamiliesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository     { return m.accounts }
func (m *fakeRepoManager) AuthTokens(db dbx.DBTX) authtokensrepo.Repository { return m.authtokens }
func (m *fakeRepoManager) Devices(db dbx.DBTX) devicesrepo.Repository       { return m.devices }
func (m *fakeRepoManager) Families(db dbx.DBTX) familiesrepo.Repository     { return m.families }
func (m *fakeRepoManager) Settings(db dbx.DBTX) settingsrepo.Repository     { return m.settings }
func (m *fakeRepoManager) Files(db dbx.DBTX) filesrepo.Repository           { return m.files }
