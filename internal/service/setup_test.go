package service

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/century/internal/db"
	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/repository"
	tmpl "github.com/alexanderramin/century/internal/template"
	"github.com/alexanderramin/century/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db        *sql.DB
	uow       db.UnitOfWork
	catalog   *tmpl.Catalog
	schedules repository.ScheduleRepo
	entries   repository.EntryRepo
	series    repository.SeriesRepo
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat, err := tmpl.DefaultCatalog()
	require.NoError(t, err)
	return testEnv{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		catalog:   cat,
		schedules: repository.NewSQLiteScheduleRepo(database),
		entries:   repository.NewSQLiteEntryRepo(database),
		series:    repository.NewSQLiteSeriesRepo(database),
	}
}

func (e testEnv) scheduleService(observers ...UseCaseObserver) ScheduleService {
	return NewScheduleService(e.schedules, e.entries, e.uow, observers...)
}

func (e testEnv) timelineService(observers ...UseCaseObserver) TimelineService {
	return NewTimelineService(e.uow, e.catalog, observers...)
}

func (e testEnv) seriesService() SeriesService {
	return NewSeriesService(e.schedules, e.series, e.uow)
}

// createSchedule stores a schedule with default parameters.
func (e testEnv) createSchedule(t *testing.T, name string, opts ...testutil.ScheduleOption) *domain.Schedule {
	t.Helper()
	s := testutil.NewTestSchedule(name, opts...)
	require.NoError(t, e.scheduleService().Create(context.Background(), s))
	return s
}

// storeSeries writes a series directly through the repository.
func (e testEnv) storeSeries(t *testing.T, s *domain.Schedule, series []domain.YearClass) {
	t.Helper()
	require.NoError(t, e.series.Replace(context.Background(), s.ID, series))
}

func (e testEnv) timeline(t *testing.T, s *domain.Schedule) *domain.Timeline {
	t.Helper()
	tl, err := e.entries.ListBySchedule(context.Background(), s.ID)
	require.NoError(t, err)
	return tl
}

// writeSeriesCSV writes a two-column series file, one "year,label" pair
// per row.
func writeSeriesCSV(t *testing.T, rows ...string) string {
	t.Helper()
	var b strings.Builder
	fmt.Fprintln(&b, "Ano,Classe_MapBiomas")
	for _, r := range rows {
		fmt.Fprintln(&b, r)
	}
	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func savannaThenPasture() []domain.YearClass {
	return testutil.NewTestSeries(1958,
		"Formação Savânica", "Formação Savânica", "Formação Savânica",
		"Pastagem", "Pastagem", "Pastagem",
	)
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}
