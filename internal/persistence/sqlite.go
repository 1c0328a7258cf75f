package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/dbx"
	"github.com/dmitrijs2005/busdepot/internal/logging"
	"github.com/dmitrijs2005/busdepot/internal/migrations"
	"github.com/dmitrijs2005/busdepot/internal/models"
	"github.com/dmitrijs2005/busdepot/internal/repositories/accounts"
	"github.com/dmitrijs2005/busdepot/internal/repositories/metadata"
	"github.com/dmitrijs2005/busdepot/internal/repositories/routes"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Metadata keys recording the last successful save of each collection.
// A collection without its key counts as absent storage.
const (
	routesSavedKey   = "routes_saved_at"
	accountsSavedKey = "accounts_saved_at"
)

// SQLiteGateway keeps both collections in one SQLite database file.
type SQLiteGateway struct {
	db      *sql.DB
	logger  logging.Logger
	initErr error
	now     func() time.Time
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{ctx: ctx, logger: logger})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens the database at path and migrates it.
//
// A file that cannot be migrated (for example, not an SQLite database) does
// not fail the call. The gateway then reports every load as unreadable and
// every save as a persistence failure, so the session still runs.
func OpenSQLite(ctx context.Context, path string, busyTimeout time.Duration, logger logging.Logger) (*SQLiteGateway, error) {
	logger = logger.With("component", "sqlite", "path", path)

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, busyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	g := &SQLiteGateway{db: db, logger: logger, now: time.Now}
	if err := RunMigrations(ctx, db, logger); err != nil {
		logger.Error(ctx, "database unusable", "error", err)
		g.initErr = err
	}
	return g, nil
}

func (g *SQLiteGateway) present(ctx context.Context, key string) (bool, error) {
	if g.initErr != nil {
		return false, g.initErr
	}
	v, err := metadata.NewSQLiteRepository(g.db).Get(ctx, key)
	if err != nil {
		return false, err
	}
	return v != nil, nil
}

func (g *SQLiteGateway) readRoutes(ctx context.Context) ([]models.Route, bool, error) {
	ok, err := g.present(ctx, routesSavedKey)
	if err != nil || !ok {
		return nil, ok, err
	}
	items, err := routes.NewSQLiteRepository(g.db).GetAll(ctx)
	return items, true, err
}

func (g *SQLiteGateway) readAccounts(ctx context.Context) ([]models.UserAccount, bool, error) {
	ok, err := g.present(ctx, accountsSavedKey)
	if err != nil || !ok {
		return nil, ok, err
	}
	items, err := accounts.NewSQLiteRepository(g.db).GetAll(ctx)
	return items, true, err
}

func (g *SQLiteGateway) LoadRoutes(ctx context.Context) []models.Route {
	return loadOrSeed(ctx, g.logger, "routes", g.readRoutes, SeedRoutes, g.SaveRoutes)
}

func (g *SQLiteGateway) LoadAccounts(ctx context.Context) []models.UserAccount {
	return loadOrSeed(ctx, g.logger, "accounts", g.readAccounts, SeedAccounts, g.SaveAccounts)
}

// SaveRoutes replaces the stored routes in a single transaction.
func (g *SQLiteGateway) SaveRoutes(ctx context.Context, items []models.Route) error {
	return g.save(ctx, "routes", routesSavedKey, func(ctx context.Context, tx dbx.DBTX) error {
		return routes.NewSQLiteRepository(tx).ReplaceAll(ctx, items)
	})
}

// SaveAccounts replaces the stored accounts in a single transaction.
func (g *SQLiteGateway) SaveAccounts(ctx context.Context, items []models.UserAccount) error {
	return g.save(ctx, "accounts", accountsSavedKey, func(ctx context.Context, tx dbx.DBTX) error {
		return accounts.NewSQLiteRepository(tx).ReplaceAll(ctx, items)
	})
}

func (g *SQLiteGateway) save(ctx context.Context, collection, key string, replace func(context.Context, dbx.DBTX) error) error {
	err := g.initErr
	if err == nil {
		err = dbx.WithTx(ctx, g.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			if err := replace(ctx, tx); err != nil {
				return err
			}
			stamp := g.now().UTC().Format(time.RFC3339)
			return metadata.NewSQLiteRepository(tx).Set(ctx, key, []byte(stamp))
		})
	}
	if err != nil {
		g.logger.Error(ctx, "save failed", "collection", collection, "error", err)
		return fmt.Errorf("save %s: %w: %w", collection, common.ErrPersistenceFailure, err)
	}
	g.logger.Debug(ctx, "saved", "collection", collection)
	return nil
}

func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}

// gooseLogger routes migration output into the structured log instead of
// stdout, where it would land in the middle of the menus.
type gooseLogger struct {
	ctx    context.Context
	logger logging.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(l.ctx, fmt.Sprintf(format, v...), "component", "goose")
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	panic(fmt.Sprintf(format, v...))
}
