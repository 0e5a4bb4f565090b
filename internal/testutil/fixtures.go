package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/century/internal/domain"
	"github.com/google/uuid"
)

var testSiteCounter atomic.Int64

// Schedule options
type ScheduleOption func(*domain.Schedule)

func WithYears(start, last int) ScheduleOption {
	return func(s *domain.Schedule) {
		s.Params.StartYear = start
		s.Params.LastYear = last
	}
}

func WithSiteFile(name string) ScheduleOption {
	return func(s *domain.Schedule) {
		s.Params.SiteFile = name
	}
}

func WithTimeline(entries ...domain.Entry) ScheduleOption {
	return func(s *domain.Schedule) {
		s.Timeline = domain.NewTimeline(entries...)
	}
}

// NewTestSchedule builds a schedule with default global parameters. An
// empty name yields a unique site name.
func NewTestSchedule(name string, opts ...ScheduleOption) *domain.Schedule {
	if name == "" {
		name = fmt.Sprintf("site_%02d", testSiteCounter.Add(1))
	}
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Schedule{
		ID:        uuid.New().String(),
		Name:      name,
		Params:    domain.DefaultGlobalParams(),
		Timeline:  domain.NewTimeline(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Header options
type HeaderOption func(*domain.BlockHeader)

func WithWeather(w domain.WeatherMode) HeaderOption {
	return func(h *domain.BlockHeader) {
		h.Weather = w
	}
}

func WithDescription(d string) HeaderOption {
	return func(h *domain.BlockHeader) {
		h.Description = d
	}
}

// NewTestHeader builds a header spanning start..last with Repeats matching
// the span.
func NewTestHeader(number, start, last int, opts ...HeaderOption) *domain.BlockHeader {
	h := &domain.BlockHeader{
		Number:          number,
		LastYear:        last,
		Repeats:         last - start + 1,
		OutputStartYear: start,
		OutputMonth:     1,
		OutputInterval:  1,
		Weather:         domain.WeatherContinue,
		Description:     fmt.Sprintf("Test (%d - %d)", start, last),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewTestBlock builds a block over start..last carrying a small pasture
// cycle.
func NewTestBlock(number, start, last int, opts ...HeaderOption) *domain.Block {
	return &domain.Block{
		BlockHeader: *NewTestHeader(number, start, last, opts...),
		Template:    "pasture-maintenance",
		Events: []domain.Event{
			{Year: 1, Month: 1, Type: domain.EventCrop, Code: "BE8"},
			{Year: 1, Month: 1, Type: domain.EventCropFirst},
			{Year: 1, Month: 6, Type: domain.EventGraze, Code: "GM"},
			{Year: 1, Month: 12, Type: domain.EventCropLast},
		},
	}
}

// NewTestSeries builds an ascending series from start with one label per
// year.
func NewTestSeries(start int, labels ...string) []domain.YearClass {
	out := make([]domain.YearClass, len(labels))
	for i, l := range labels {
		out[i] = domain.YearClass{Year: start + i, Label: l}
	}
	return out
}
