package persistence

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/config"
	"github.com/dmitrijs2005/busdepot/internal/logging"
	"github.com/dmitrijs2005/busdepot/internal/models"
	"github.com/dmitrijs2005/busdepot/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, storage string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = filepath.Join(t.TempDir(), "data")
	cfg.Storage = storage
	return cfg
}

func TestFile_MissingFilesAreSeeded(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	g := NewFileGateway(dir, logging.Nop())

	assert.Equal(t, SeedRoutes(), g.LoadRoutes(ctx))
	assert.Equal(t, SeedAccounts(), g.LoadAccounts(ctx))

	assert.FileExists(t, filepath.Join(dir, RoutesFileName))
	assert.FileExists(t, filepath.Join(dir, AccountsFileName))
}

func TestFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	routes := []models.Route{
		{Number: "10", BusType: "City", Destination: "Grodno", Departure: timex.MustClock(0, 0), Arrival: timex.MustClock(23, 59)},
	}
	accounts := []models.UserAccount{{Username: "bob", Password: "pw", IsAdmin: true}}

	g := NewFileGateway(dir, logging.Nop())
	require.NoError(t, g.SaveRoutes(ctx, routes))
	require.NoError(t, g.SaveAccounts(ctx, accounts))

	g2 := NewFileGateway(dir, logging.Nop())
	assert.Equal(t, routes, g2.LoadRoutes(ctx))
	assert.Equal(t, accounts, g2.LoadAccounts(ctx))
}

func TestFile_StoredFormat(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	g := NewFileGateway(dir, logging.Nop())

	require.NoError(t, g.SaveRoutes(ctx, SeedRoutes()))

	data, err := os.ReadFile(filepath.Join(dir, RoutesFileName))
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "09:00", raw[0]["departure_time"])
	assert.Equal(t, "12:00", raw[0]["arrival_time"])
}

func TestFile_EmptySaveWritesArray(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	g := NewFileGateway(dir, logging.Nop())

	require.NoError(t, g.SaveRoutes(ctx, nil))

	data, err := os.ReadFile(filepath.Join(dir, RoutesFileName))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
	assert.Empty(t, g.LoadRoutes(ctx))
}

func TestFile_CorruptFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	logger, buf := bufferLogger(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, RoutesFileName), []byte("{not json"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, AccountsFileName),
		[]byte(`[{"username":"a","password":"b","is_admin":"maybe"}]`), 0o600))

	g := NewFileGateway(dir, logger)

	routes := g.LoadRoutes(ctx)
	assert.NotNil(t, routes)
	assert.Empty(t, routes)
	assert.Empty(t, g.LoadAccounts(ctx))
	assert.Contains(t, buf.String(), "stored data unreadable")

	// the corrupt file is left alone for inspection
	data, err := os.ReadFile(filepath.Join(dir, RoutesFileName))
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestFile_BadTimeIsCorrupt(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, RoutesFileName),
		[]byte(`[{"route_number":"1","bus_type":"x","destination":"y","departure_time":"9:00","arrival_time":"12:00"}]`), 0o600))

	assert.Empty(t, NewFileGateway(dir, logging.Nop()).LoadRoutes(ctx))
}

func TestFile_SaveFailure(t *testing.T) {
	ctx := context.Background()
	missing := filepath.Join(t.TempDir(), "gone")
	g := NewFileGateway(missing, logging.Nop())

	err := g.SaveAccounts(ctx, SeedAccounts())
	require.ErrorIs(t, err, common.ErrPersistenceFailure)

	// a seed that cannot be written still serves the current run
	assert.Equal(t, SeedRoutes(), g.LoadRoutes(ctx))
}
