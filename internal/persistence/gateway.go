// Package persistence moves the depot collections between memory and
// durable storage.
//
// Two backends implement Gateway: an SQLite database (the default) and a
// pair of JSON flat files. Both follow the same rules:
//
//   - absent storage is seeded with default records, which are saved at once;
//   - present but unreadable storage is logged and yields an empty collection;
//   - saves overwrite the whole collection and report failures as errors
//     wrapping common.ErrPersistenceFailure instead of panicking.
package persistence

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/busdepot/internal/config"
	"github.com/dmitrijs2005/busdepot/internal/filex"
	"github.com/dmitrijs2005/busdepot/internal/logging"
	"github.com/dmitrijs2005/busdepot/internal/models"
)

// Gateway loads and saves the two depot collections.
type Gateway interface {
	LoadRoutes(ctx context.Context) []models.Route
	LoadAccounts(ctx context.Context) []models.UserAccount
	SaveRoutes(ctx context.Context, routes []models.Route) error
	SaveAccounts(ctx context.Context, accounts []models.UserAccount) error
	Close() error
}

// Open creates the data directory and returns the backend selected by
// cfg.Storage.
func Open(ctx context.Context, cfg *config.Config, logger logging.Logger) (Gateway, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	switch cfg.Storage {
	case config.StorageSQLite:
		return OpenSQLite(ctx, cfg.DatabasePath(), cfg.BusyTimeout, logger)
	case config.StorageFile:
		return NewFileGateway(dir, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// loadOrSeed runs the shared load policy for one collection. read returns
// the stored items and whether storage exists at all.
func loadOrSeed[T any](
	ctx context.Context,
	logger logging.Logger,
	collection string,
	read func(context.Context) (items []T, present bool, err error),
	seed func() []T,
	save func(context.Context, []T) error,
) []T {
	items, present, err := read(ctx)
	if err != nil {
		logger.Warn(ctx, "stored data unreadable, starting empty", "collection", collection, "error", err)
		return []T{}
	}
	if !present {
		items = seed()
		logger.Info(ctx, "no stored data, seeding defaults", "collection", collection, "count", len(items))
		// a failed seed save is logged by save; the seed still serves this run
		_ = save(ctx, items)
		return items
	}
	logger.Debug(ctx, "loaded", "collection", collection, "count", len(items))
	return items
}
