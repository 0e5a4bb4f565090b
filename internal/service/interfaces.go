package service

import (
	"context"

	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/importer"
	"github.com/alexanderramin/century/internal/scheduler"
)

// ScheduleService manages stored schedules and their .SCH output.
type ScheduleService interface {
	Create(ctx context.Context, s *domain.Schedule) error
	Get(ctx context.Context, name string) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	UpdateParams(ctx context.Context, name string, p domain.GlobalParams) error
	Delete(ctx context.Context, name string) error
	Render(ctx context.Context, name string) (string, error)
	Export(ctx context.Context, name, path string) (string, error)
	Import(ctx context.Context, filePath string) (*domain.Schedule, error)
	ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (*domain.Schedule, error)
	Dump(ctx context.Context, name string) ([]byte, error)
}

// GenerateRequest holds the raw user input of a generation run. Empty
// limits fall back to the timeline's next block number and the schedule's
// last year.
type GenerateRequest struct {
	StartBlock string
	YearLimit  string
	Weather    domain.WeatherMode
	// Strict rejects warning results instead of appending their entries.
	Strict bool
}

// TimelineService edits the timeline of a stored schedule. Every mutation
// is persisted atomically.
type TimelineService interface {
	Generate(ctx context.Context, name string, req GenerateRequest) (scheduler.Result, error)
	AddSavanna(ctx context.Context, name string, req scheduler.PresetRequest) ([]domain.Entry, error)
	AddDeforestation(ctx context.Context, name string, req scheduler.PresetRequest) ([]domain.Entry, error)
	AddHeader(ctx context.Context, name string, h *domain.BlockHeader) error
	AddEvent(ctx context.Context, name string, ev *domain.Event) error
	AddTerminator(ctx context.Context, name string) error
	Remove(ctx context.Context, name string, pos int) (domain.Entry, error)
	Move(ctx context.Context, name string, from, to int) error
	Clear(ctx context.Context, name string) error
}

// SeriesService imports and reads the land-cover series of a schedule.
type SeriesService interface {
	Import(ctx context.Context, name, filePath, point string) ([]domain.YearClass, error)
	Get(ctx context.Context, name string) ([]domain.YearClass, error)
}

// TemplateService exposes the loaded event-template catalog.
type TemplateService interface {
	List(ctx context.Context) []TemplateInfo
	Get(ctx context.Context, id string) (*TemplateInfo, error)
}

// TemplateInfo is a catalog template with its role.
type TemplateInfo struct {
	Template *domain.EventTemplate
	Role     string
}
