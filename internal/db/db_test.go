package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesDirectoryAndUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "century.db")
	conn, err := OpenDB(path)
	require.NoError(t, err)
	defer conn.Close()

	var mode string
	require.NoError(t, conn.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, conn.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestOpenDB_MemorySharesOneConnection(t *testing.T) {
	conn := openTestDB(t)
	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)

	_, err := conn.Exec(`INSERT INTO schedules (id, name, start_year, last_year, site_file, initial_crop, initial_tree, created_at, updated_at)
		VALUES ('s1', 'a', 1958, 2025, 'lu_site.100', 'HER', 'CER', '', '')`)
	require.NoError(t, err)

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM schedules`).Scan(&n))
	assert.Equal(t, 1, n)
}
