package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/century/internal/db"
	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/importer"
	"github.com/alexanderramin/century/internal/repository"
)

type seriesService struct {
	schedules repository.ScheduleRepo
	series    repository.SeriesRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewSeriesService(
	schedules repository.ScheduleRepo,
	series repository.SeriesRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SeriesService {
	return &seriesService{
		schedules: schedules,
		series:    series,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Import reads a land-cover CSV and replaces the schedule's stored series.
func (s *seriesService) Import(ctx context.Context, name, filePath, point string) (series []domain.YearClass, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"schedule": name, "file": filePath}
	defer func() { observe(ctx, s.observer, "import-series", startedAt, fields, err) }()

	series, err = importer.LoadSeries(filePath, point)
	if err != nil {
		return nil, fmt.Errorf("reading series file: %w", err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("series file %s has no rows", filePath)
	}
	fields["years"] = len(series)

	err = withinSchedule(ctx, s.uow, name, func(ctx context.Context, r txRepos, sched *domain.Schedule) error {
		return r.series.Replace(ctx, sched.ID, series)
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}

func (s *seriesService) Get(ctx context.Context, name string) ([]domain.YearClass, error) {
	sched, err := s.schedules.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loading schedule %q: %w", name, err)
	}
	return s.series.ListBySchedule(ctx, sched.ID)
}
