package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/century/internal/db"
	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/repository"
)

// ErrStrictWarning is returned by strict generation runs that ended in a
// warning. Nothing is appended.
var ErrStrictWarning = errors.New("generation warning in strict mode")

// txRepos bundles the repositories bound to one transaction.
type txRepos struct {
	schedules repository.ScheduleRepo
	entries   repository.EntryRepo
	series    repository.SeriesRepo
}

func newTxRepos(tx db.DBTX) txRepos {
	return txRepos{
		schedules: repository.NewSQLiteScheduleRepo(tx),
		entries:   repository.NewSQLiteEntryRepo(tx),
		series:    repository.NewSQLiteSeriesRepo(tx),
	}
}

// loadSchedule reads a schedule by name together with its timeline.
func loadSchedule(ctx context.Context, schedules repository.ScheduleRepo, entries repository.EntryRepo, name string) (*domain.Schedule, error) {
	s, err := schedules.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loading schedule %q: %w", name, err)
	}
	s.Timeline, err = entries.ListBySchedule(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("loading timeline of %q: %w", name, err)
	}
	return s, nil
}

// withinSchedule loads a schedule inside a transaction, runs fn and bumps
// the schedule's updated_at. Any error rolls back every write made by fn.
func withinSchedule(ctx context.Context, uow db.UnitOfWork, name string, fn func(ctx context.Context, r txRepos, s *domain.Schedule) error) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := newTxRepos(tx)
		s, err := loadSchedule(ctx, r.schedules, r.entries, name)
		if err != nil {
			return err
		}
		if err := fn(ctx, r, s); err != nil {
			return err
		}
		s.UpdatedAt = time.Now().UTC()
		return r.schedules.Update(ctx, s)
	})
}

func formatValidationErrors(what string, errs []error) error {
	return fmt.Errorf("%s validation failed (%d errors): %w", what, len(errs), errors.Join(errs...))
}

// observe reports a finished use case to the observer.
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err error) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
