package repository

import (
	"context"

	"github.com/alexanderramin/century/internal/domain"
)

// ScheduleRepo persists schedule headers: site name and global parameters.
// Timelines are stored separately through EntryRepo.
type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	GetByName(ctx context.Context, name string) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	Update(ctx context.Context, s *domain.Schedule) error
	Delete(ctx context.Context, id string) error
}

// EntryRepo persists the ordered timeline of a schedule.
type EntryRepo interface {
	ListBySchedule(ctx context.Context, scheduleID string) (*domain.Timeline, error)
	ReplaceAll(ctx context.Context, scheduleID string, tl *domain.Timeline) error
	Append(ctx context.Context, scheduleID string, entries ...domain.Entry) error
	Count(ctx context.Context, scheduleID string) (int, error)
}

// SeriesRepo persists the land-cover series imported for a schedule.
type SeriesRepo interface {
	Replace(ctx context.Context, scheduleID string, series []domain.YearClass) error
	ListBySchedule(ctx context.Context, scheduleID string) ([]domain.YearClass, error)
}
