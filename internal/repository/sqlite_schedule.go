package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/century/internal/db"
	"github.com/alexanderramin/century/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

const scheduleColumns = `id, name, start_year, last_year, site_file, initial_crop, initial_tree, created_at, updated_at`

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s *domain.Schedule) error {
	query := `INSERT INTO schedules (` + scheduleColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Params.StartYear,
		s.Params.LastYear,
		s.Params.SiteFile,
		s.Params.InitialCrop,
		s.Params.InitialTree,
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = ?`
	return r.scanSchedule(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteScheduleRepo) GetByName(ctx context.Context, name string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE name = ?`
	return r.scanSchedule(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var out []*domain.Schedule
	for rows.Next() {
		s, err := r.scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}
	return out, nil
}

func (r *SQLiteScheduleRepo) Update(ctx context.Context, s *domain.Schedule) error {
	query := `UPDATE schedules SET name = ?, start_year = ?, last_year = ?, site_file = ?,
		initial_crop = ?, initial_tree = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.Params.StartYear,
		s.Params.LastYear,
		s.Params.SiteFile,
		s.Params.InitialCrop,
		s.Params.InitialTree,
		formatTime(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule: %w", err)
	}
	return requireOneRow(res, "schedule")
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	return requireOneRow(res, "schedule")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteScheduleRepo) scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var s domain.Schedule
	var createdAt, updatedAt string
	err := row.Scan(
		&s.ID, &s.Name,
		&s.Params.StartYear, &s.Params.LastYear,
		&s.Params.SiteFile, &s.Params.InitialCrop, &s.Params.InitialTree,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}

	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}

func requireOneRow(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking %s rows affected: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
