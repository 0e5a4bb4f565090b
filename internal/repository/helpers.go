package repository

import (
	"database/sql"
	"time"
)

// nullableInt converts a sql.NullInt64 to an int, treating NULL as 0.
func nullableInt(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}

// nullableString converts a sql.NullString to a string, treating NULL as "".
func nullableString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

// parseTime parses an RFC3339 timestamp stored by this package.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// formatTime renders t in the RFC3339 UTC form used for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
