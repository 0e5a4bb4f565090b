package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_SeriesWithoutCodes simulates upgrading a database
// whose land_cover_series table predates the class_code column. Verifies that
// stored rows survive and the new column gets its default.
func TestMigrate_UpgradePath_SeriesWithoutCodes(t *testing.T) {
	// Create a raw DB without using OpenDB (to manually control schema).
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)

	legacyStatements := []string{
		migrations[0],
		`CREATE TABLE land_cover_series (
			schedule_id TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
			year        INTEGER NOT NULL,
			class_label TEXT NOT NULL,
			PRIMARY KEY(schedule_id, year)
		)`,
		`INSERT INTO schedules (id, name, start_year, last_year, site_file, initial_crop, initial_tree, created_at, updated_at)
			VALUES ('s1', 'Lu_AFGO', 1958, 2025, 'lu_site.100', 'HER', 'CER', '', '')`,
		`INSERT INTO land_cover_series (schedule_id, year, class_label) VALUES ('s1', 1985, 'Formação Savânica')`,
	}
	for _, stmt := range legacyStatements {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var label string
	var code int
	err = db.QueryRow(`SELECT class_label, class_code FROM land_cover_series WHERE schedule_id = 's1' AND year = 1985`).Scan(&label, &code)
	require.NoError(t, err)
	assert.Equal(t, "Formação Savânica", label)
	assert.Equal(t, 0, code)

	// A second pass hits the duplicate column and must still succeed.
	require.NoError(t, Migrate(db))
}
