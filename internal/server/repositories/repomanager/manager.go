package repomanager

import (
	"context"
	"database/sql"

	"github.com/guardianos/guardian-sync/internal/dbx"
	"github.com/guardianos/guardian-sync/internal/server/repositories/accounts"
	"github.com/guardianos/guardian-sync/internal/server/repositories/authtokens"
	"github.com/guardianos/guardian-sync/internal/server/repositories/devices"
	"github.com/guardianos/guardian-sync/internal/server/repositories/families"
	"github.com/guardianos/guardian-sync/internal/server/repositories/files"
	"github.com/guardianos/guardian-sync/internal/server/repositories/settings"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository code against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	AuthTokens(db dbx.DBTX) authtokens.Repository
	Devices(db dbx.DBTX) devices.Repository
	Families(db dbx.DBTX) families.Repository
	Settings(db dbx.DBTX) settings.Repository
	Files(db dbx.DBTX) files.Repository
}
