package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/shared/config"
)

func TestInit_AppliesConnectionPragmas(t *testing.T) {
	cfg := &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "portal.db")}

	require.NoError(t, Init(cfg))
	defer func() {
		require.NoError(t, Close())
	}()

	var journalMode string
	require.NoError(t, Get().Raw("PRAGMA journal_mode").Scan(&journalMode).Error)
	assert.Equal(t, "wal", journalMode)

	var busyTimeout int
	require.NoError(t, Get().Raw("PRAGMA busy_timeout").Scan(&busyTimeout).Error)
	assert.Equal(t, 5000, busyTimeout)

	var foreignKeys int
	require.NoError(t, Get().Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
	assert.Equal(t, 1, foreignKeys)
}
