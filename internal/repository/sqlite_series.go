package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/century/internal/db"
	"github.com/alexanderramin/century/internal/domain"
)

// SQLiteSeriesRepo implements SeriesRepo using a SQLite database.
type SQLiteSeriesRepo struct {
	db db.DBTX
}

// NewSQLiteSeriesRepo creates a new SQLiteSeriesRepo.
func NewSQLiteSeriesRepo(conn db.DBTX) *SQLiteSeriesRepo {
	return &SQLiteSeriesRepo{db: conn}
}

func (r *SQLiteSeriesRepo) Replace(ctx context.Context, scheduleID string, series []domain.YearClass) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM land_cover_series WHERE schedule_id = ?`, scheduleID); err != nil {
		return fmt.Errorf("clearing land-cover series: %w", err)
	}
	for _, yc := range series {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO land_cover_series (schedule_id, year, class_label, class_code) VALUES (?, ?, ?, ?)`,
			scheduleID, yc.Year, yc.Label, yc.Code,
		); err != nil {
			return fmt.Errorf("inserting series year %d: %w", yc.Year, err)
		}
	}
	return nil
}

func (r *SQLiteSeriesRepo) ListBySchedule(ctx context.Context, scheduleID string) ([]domain.YearClass, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT year, class_code, class_label FROM land_cover_series WHERE schedule_id = ? ORDER BY year`,
		scheduleID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing land-cover series: %w", err)
	}
	defer rows.Close()

	var out []domain.YearClass
	for rows.Next() {
		var yc domain.YearClass
		if err := rows.Scan(&yc.Year, &yc.Code, &yc.Label); err != nil {
			return nil, fmt.Errorf("scanning series year: %w", err)
		}
		out = append(out, yc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating land-cover series: %w", err)
	}
	return out, nil
}
