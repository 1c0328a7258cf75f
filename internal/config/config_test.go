package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ".", c.DataDir)
	assert.Equal(t, StorageSQLite, c.Storage)
	assert.Equal(t, "depot.db", c.DatabaseFile)
	assert.Equal(t, 5*time.Second, c.BusyTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "depot.log", c.LogFile)
	assert.False(t, c.LogJSON)
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"busdepot"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, ".", cfg.DataDir)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /from/file\nstorage: file\n"), 0o600))

	os.Args = []string{"busdepot", "-config", path, "-d", "/from/flag"}
	cfg := LoadConfig()

	assert.Equal(t, "/from/flag", cfg.DataDir)
	assert.Equal(t, StorageFile, cfg.Storage)
}

func TestPaths(t *testing.T) {
	c := Config{DataDir: "/srv/depot", DatabaseFile: "depot.db", LogFile: "depot.log"}
	assert.Equal(t, filepath.Join("/srv/depot", "depot.db"), c.DatabasePath())
	assert.Equal(t, filepath.Join("/srv/depot", "depot.log"), c.LogPath())

	c.DatabaseFile = "/abs/other.db"
	assert.Equal(t, "/abs/other.db", c.DatabasePath())

	c.LogFile = "-"
	assert.Empty(t, c.LogPath())
}
