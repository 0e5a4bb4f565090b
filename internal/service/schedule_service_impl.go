package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alexanderramin/century/internal/db"
	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/importer"
	"github.com/alexanderramin/century/internal/repository"
	"github.com/alexanderramin/century/internal/schfile"
	"github.com/google/uuid"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
	entries   repository.EntryRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewScheduleService(
	schedules repository.ScheduleRepo,
	entries repository.EntryRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		schedules: schedules,
		entries:   entries,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Create stores a new schedule and any timeline it already carries.
func (s *scheduleService) Create(ctx context.Context, sched *domain.Schedule) error {
	if err := sched.ValidateName(); err != nil {
		return err
	}
	if err := sched.Params.Validate(); err != nil {
		return err
	}
	if sched.ID == "" {
		sched.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sched.CreatedAt, sched.UpdatedAt = now, now
	if sched.Timeline == nil {
		sched.Timeline = domain.NewTimeline()
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := newTxRepos(tx)
		if err := r.schedules.Create(ctx, sched); err != nil {
			return fmt.Errorf("creating schedule %q: %w", sched.Name, err)
		}
		return r.entries.ReplaceAll(ctx, sched.ID, sched.Timeline)
	})
}

func (s *scheduleService) Get(ctx context.Context, name string) (*domain.Schedule, error) {
	return loadSchedule(ctx, s.schedules, s.entries, name)
}

func (s *scheduleService) List(ctx context.Context) ([]*domain.Schedule, error) {
	return s.schedules.List(ctx)
}

func (s *scheduleService) UpdateParams(ctx context.Context, name string, p domain.GlobalParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return withinSchedule(ctx, s.uow, name, func(_ context.Context, _ txRepos, sched *domain.Schedule) error {
		sched.Params = p
		return nil
	})
}

func (s *scheduleService) Delete(ctx context.Context, name string) error {
	sched, err := s.schedules.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("loading schedule %q: %w", name, err)
	}
	return s.schedules.Delete(ctx, sched.ID)
}

// Render returns the schedule file text without writing it.
func (s *scheduleService) Render(ctx context.Context, name string) (string, error) {
	sched, err := s.Get(ctx, name)
	if err != nil {
		return "", err
	}
	return schfile.RenderDocument(sched.Params, sched.Timeline), nil
}

// Export writes <site>.SCH into dir and returns the written path.
func (s *scheduleService) Export(ctx context.Context, name, dir string) (path string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"schedule": name}
	defer func() { observe(ctx, s.observer, "export-schedule", startedAt, fields, err) }()

	sched, err := s.Get(ctx, name)
	if err != nil {
		return "", err
	}
	fields["entries"] = sched.Timeline.Len()

	path = filepath.Join(dir, sched.FileName())
	if err = schfile.WriteFile(path, schfile.RenderDocument(sched.Params, sched.Timeline)); err != nil {
		return "", fmt.Errorf("exporting %q: %w", name, err)
	}
	fields["path"] = path
	return path, nil
}

func (s *scheduleService) Import(ctx context.Context, filePath string) (*domain.Schedule, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

// ImportFromSchema validates and stores a schedule described by the JSON
// timeline schema.
func (s *scheduleService) ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (sched *domain.Schedule, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"schedule": schema.Schedule.Name}
	defer func() { observe(ctx, s.observer, "import-schedule", startedAt, fields, err) }()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors("import", errs)
	}
	sched, err = importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}
	fields["entries"] = sched.Timeline.Len()

	if err = s.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// Dump returns the stored schedule encoded in the JSON timeline schema.
func (s *scheduleService) Dump(ctx context.Context, name string) ([]byte, error) {
	sched, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return importer.MarshalSchedule(sched)
}
