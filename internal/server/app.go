// Package server initializes and runs the Guardian sync server: database,
// migrations, object store, services, the gRPC endpoint and the periodic
// token cleanup, plus graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/guardianos/guardian-sync/internal/logging"
	"github.com/guardianos/guardian-sync/internal/server/config"
	gs "github.com/guardianos/guardian-sync/internal/server/grpc"
	"github.com/guardianos/guardian-sync/internal/server/objectstore"
	"github.com/guardianos/guardian-sync/internal/server/repositories/repomanager"
	"github.com/guardianos/guardian-sync/internal/server/services"
)

// tokenCleanupInterval is how often expired auth tokens are purged.
const tokenCleanupInterval = time.Hour

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	authService   *services.AuthService
	syncService   *services.SyncService
	fileService   *services.FileService
	familyService *services.FamilyService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := objectstore.NewS3Store(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("object store init error: %w", err)
	}

	return &App{
		config:        cfg,
		logger:        logger,
		db:            db,
		authService:   services.NewAuthService(db, m, cfg),
		syncService:   services.NewSyncService(db, m, cfg),
		fileService:   services.NewFileService(db, m, store, cfg),
		familyService: services.NewFamilyService(db, m),
	}, nil
}

// openDB opens the pool and pings it with backoff, so the server survives a
// database that comes up slightly later than it does.
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	backoff := retry.WithMaxRetries(5, retry.NewExponential(time.Second))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return db, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.logger, app.config,
		app.authService, app.syncService, app.fileService, app.familyService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// startTokenCleanup purges expired auth tokens on a fixed interval until the
// context is cancelled.
func (app *App) startTokenCleanup(ctx context.Context) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.authService.CleanupExpiredTokens(ctx)
			if err != nil {
				app.logger.Error(ctx, "token cleanup failed", "error", err.Error())
				continue
			}
			if n > 0 {
				app.logger.Info(ctx, "expired tokens purged", "count", n)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startTokenCleanup(ctx)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
