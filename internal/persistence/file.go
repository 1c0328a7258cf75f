package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/filex"
	"github.com/dmitrijs2005/busdepot/internal/logging"
	"github.com/dmitrijs2005/busdepot/internal/models"
)

// Flat file names inside the data directory.
const (
	RoutesFileName   = "bus_routes.json"
	AccountsFileName = "user_accounts.json"
)

// FileGateway keeps each collection in its own JSON file.
type FileGateway struct {
	routesPath   string
	accountsPath string
	logger       logging.Logger
}

func NewFileGateway(dir string, logger logging.Logger) *FileGateway {
	return &FileGateway{
		routesPath:   filepath.Join(dir, RoutesFileName),
		accountsPath: filepath.Join(dir, AccountsFileName),
		logger:       logger.With("component", "file", "dir", dir),
	}
}

func readJSON[T any](path string) ([]T, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	items := make([]T, 0)
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, true, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return items, true, nil
}

func (g *FileGateway) writeJSON(ctx context.Context, collection, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err == nil {
		err = filex.WriteFileAtomic(path, data, 0o600)
	}
	if err != nil {
		g.logger.Error(ctx, "save failed", "collection", collection, "error", err)
		return fmt.Errorf("save %s: %w: %w", collection, common.ErrPersistenceFailure, err)
	}
	g.logger.Debug(ctx, "saved", "collection", collection, "path", path)
	return nil
}

func (g *FileGateway) LoadRoutes(ctx context.Context) []models.Route {
	read := func(context.Context) ([]models.Route, bool, error) { return readJSON[models.Route](g.routesPath) }
	return loadOrSeed(ctx, g.logger, "routes", read, SeedRoutes, g.SaveRoutes)
}

func (g *FileGateway) LoadAccounts(ctx context.Context) []models.UserAccount {
	read := func(context.Context) ([]models.UserAccount, bool, error) {
		return readJSON[models.UserAccount](g.accountsPath)
	}
	return loadOrSeed(ctx, g.logger, "accounts", read, SeedAccounts, g.SaveAccounts)
}

func (g *FileGateway) SaveRoutes(ctx context.Context, routes []models.Route) error {
	return g.writeJSON(ctx, "routes", g.routesPath, nonNil(routes))
}

func (g *FileGateway) SaveAccounts(ctx context.Context, accounts []models.UserAccount) error {
	return g.writeJSON(ctx, "accounts", g.accountsPath, nonNil(accounts))
}

func (g *FileGateway) Close() error { return nil }

// nonNil makes an empty collection encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
