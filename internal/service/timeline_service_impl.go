package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/century/internal/db"
	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/scheduler"
	tmpl "github.com/alexanderramin/century/internal/template"
)

type timelineService struct {
	uow      db.UnitOfWork
	catalog  *tmpl.Catalog
	observer UseCaseObserver
}

func NewTimelineService(uow db.UnitOfWork, catalog *tmpl.Catalog, observers ...UseCaseObserver) TimelineService {
	return &timelineService{
		uow:      uow,
		catalog:  catalog,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Generate segments the schedule's stored land-cover series from the next
// available year and appends the generated blocks. Error results and, in
// strict mode, warning results leave the timeline untouched.
func (s *timelineService) Generate(ctx context.Context, name string, req GenerateRequest) (res scheduler.Result, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"schedule": name, "strict": req.Strict}
	defer func() { observe(ctx, s.observer, "generate-timeline", startedAt, fields, err) }()

	err = withinSchedule(ctx, s.uow, name, func(ctx context.Context, r txRepos, sched *domain.Schedule) error {
		series, err := r.series.ListBySchedule(ctx, sched.ID)
		if err != nil {
			return err
		}
		if len(series) == 0 {
			return fmt.Errorf("%w: schedule %q has no land-cover series", scheduler.ErrInvalidInput, name)
		}

		startBlock := domain.Coalesce(strings.TrimSpace(req.StartBlock), strconv.Itoa(sched.Timeline.NextBlockNumber()))
		yearLimit := domain.Coalesce(strings.TrimSpace(req.YearLimit), strconv.Itoa(sched.Params.LastYear))
		sb, yl, err := scheduler.ParseLimits(startBlock, yearLimit)
		if err != nil {
			res = scheduler.Result{Status: scheduler.StatusError, Message: err.Error(), Err: err}
			return err
		}
		fields["start_block"] = sb
		fields["year_limit"] = yl

		res = scheduler.Segment(scheduler.SegmentRequest{
			Series:       series,
			StartBlock:   sb,
			YearLimit:    yl,
			Existing:     sched.Timeline,
			Weather:      req.Weather,
			SimStartYear: sched.Params.StartYear,
			Catalog:      s.catalog,
		})
		fields["status"] = string(res.Status)
		fields["blocks"] = len(res.Blocks)

		switch {
		case res.Status == scheduler.StatusError:
			return res.Err
		case res.Status == scheduler.StatusWarning && req.Strict:
			return fmt.Errorf("%w: %s", ErrStrictWarning, res.Message)
		case len(res.Entries) == 0:
			return nil
		}
		return r.entries.Append(ctx, sched.ID, res.Entries...)
	})
	return res, err
}

func (s *timelineService) AddSavanna(ctx context.Context, name string, req scheduler.PresetRequest) ([]domain.Entry, error) {
	return s.appendPreset(ctx, name, "add-savanna-block", req, scheduler.StandardSavannaBlock)
}

func (s *timelineService) AddDeforestation(ctx context.Context, name string, req scheduler.PresetRequest) ([]domain.Entry, error) {
	return s.appendPreset(ctx, name, "add-deforestation-block", req, scheduler.DeforestationBlock)
}

type presetBuilder func(scheduler.TemplateSource, scheduler.PresetRequest) ([]domain.Entry, error)

func (s *timelineService) appendPreset(ctx context.Context, name, useCase string, req scheduler.PresetRequest, build presetBuilder) (entries []domain.Entry, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"schedule": name, "out_year": req.OutputStartYear, "last_year": req.LastYear}
	defer func() { observe(ctx, s.observer, useCase, startedAt, fields, err) }()

	entries, err = build(s.catalog, req)
	if err != nil {
		return nil, err
	}
	err = withinSchedule(ctx, s.uow, name, func(ctx context.Context, r txRepos, sched *domain.Schedule) error {
		return r.entries.Append(ctx, sched.ID, entries...)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AddHeader appends a bare header. Zero fields take the manual-entry
// defaults; the output start year defaults to the next available year.
func (s *timelineService) AddHeader(ctx context.Context, name string, h *domain.BlockHeader) error {
	return withinSchedule(ctx, s.uow, name, func(ctx context.Context, r txRepos, sched *domain.Schedule) error {
		applyHeaderDefaults(h, sched.Timeline.NextAvailableYear(sched.Params.StartYear))
		if err := h.Validate(); err != nil {
			return err
		}
		return r.entries.Append(ctx, sched.ID, h)
	})
}

func applyHeaderDefaults(h *domain.BlockHeader, nextYear int) {
	h.Number = domain.Coalesce(h.Number, scheduler.ManualHeaderNumber)
	h.OutputStartYear = domain.Coalesce(h.OutputStartYear, nextYear)
	h.LastYear = domain.Coalesce(h.LastYear, h.OutputStartYear)
	h.Repeats = domain.Coalesce(h.Repeats, 1)
	h.OutputMonth = domain.Coalesce(h.OutputMonth, 1)
	h.OutputInterval = domain.Coalesce(h.OutputInterval, 1)
	if h.Weather == "" {
		h.Weather = domain.WeatherMean
	}
	if h.Description == "" {
		h.Description = fmt.Sprintf("Manual (%d-%d)", h.OutputStartYear, h.LastYear)
	}
}

// AddEvent appends a stand-alone event after checking it against the
// event-type catalog.
func (s *timelineService) AddEvent(ctx context.Context, name string, ev *domain.Event) error {
	if info, ok := domain.LookupEventType(string(ev.Type)); ok {
		ev.Type = info.Type
	}
	ev.Code = strings.TrimSpace(ev.Code)
	if err := ev.ValidateManual(); err != nil {
		return err
	}
	return withinSchedule(ctx, s.uow, name, func(ctx context.Context, r txRepos, sched *domain.Schedule) error {
		return r.entries.Append(ctx, sched.ID, ev)
	})
}

func (s *timelineService) AddTerminator(ctx context.Context, name string) error {
	return withinSchedule(ctx, s.uow, name, func(ctx context.Context, r txRepos, sched *domain.Schedule) error {
		return r.entries.Append(ctx, sched.ID, domain.Terminator{})
	})
}

func (s *timelineService) Remove(ctx context.Context, name string, pos int) (removed domain.Entry, err error) {
	err = s.rewrite(ctx, name, func(tl *domain.Timeline) error {
		removed, err = tl.Remove(pos)
		return err
	})
	return removed, err
}

func (s *timelineService) Move(ctx context.Context, name string, from, to int) error {
	return s.rewrite(ctx, name, func(tl *domain.Timeline) error {
		return tl.Move(from, to)
	})
}

func (s *timelineService) Clear(ctx context.Context, name string) error {
	return s.rewrite(ctx, name, func(tl *domain.Timeline) error {
		tl.Clear()
		return nil
	})
}

// rewrite applies an in-memory edit and stores the whole timeline again.
func (s *timelineService) rewrite(ctx context.Context, name string, edit func(tl *domain.Timeline) error) error {
	return withinSchedule(ctx, s.uow, name, func(ctx context.Context, r txRepos, sched *domain.Schedule) error {
		if err := edit(sched.Timeline); err != nil {
			return err
		}
		return r.entries.ReplaceAll(ctx, sched.ID, sched.Timeline)
	})
}
