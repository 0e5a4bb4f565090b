package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedules (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL UNIQUE,
		start_year   INTEGER NOT NULL,
		last_year    INTEGER NOT NULL,
		site_file    TEXT NOT NULL,
		initial_crop TEXT NOT NULL,
		initial_tree TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		CHECK(last_year >= start_year)
	)`,

	`CREATE TABLE IF NOT EXISTS timeline_entries (
		id                TEXT PRIMARY KEY,
		schedule_id       TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		position          INTEGER NOT NULL CHECK(position >= 0),
		kind              TEXT NOT NULL
		                  CHECK(kind IN ('block','header','event','terminator')),
		block_number      INTEGER,
		last_year         INTEGER,
		repeats           INTEGER,
		output_start_year INTEGER,
		output_month      INTEGER,
		output_interval   INTEGER,
		weather           TEXT CHECK(weather IS NULL OR weather IN ('M','S','F','C')),
		description       TEXT NOT NULL DEFAULT '',
		template          TEXT NOT NULL DEFAULT '',
		UNIQUE(schedule_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_timeline_entries_schedule ON timeline_entries(schedule_id)`,

	`CREATE TABLE IF NOT EXISTS entry_events (
		entry_id      TEXT NOT NULL REFERENCES timeline_entries(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		year_offset   INTEGER NOT NULL CHECK(year_offset >= 1),
		month         INTEGER NOT NULL CHECK(month BETWEEN 1 AND 12),
		event_type    TEXT NOT NULL,
		specific_code TEXT NOT NULL DEFAULT '',
		PRIMARY KEY(entry_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entry_events_entry ON entry_events(entry_id)`,

	`CREATE TABLE IF NOT EXISTS land_cover_series (
		schedule_id TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		year        INTEGER NOT NULL,
		class_label TEXT NOT NULL,
		PRIMARY KEY(schedule_id, year)
	)`,

	// Numeric MapBiomas class codes, kept alongside the label.
	`ALTER TABLE land_cover_series ADD COLUMN class_code INTEGER NOT NULL DEFAULT 0`,
}
