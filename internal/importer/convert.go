package importer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/century/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated ImportSchema into a schedule ready for persistence.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*domain.Schedule, error) {
	now := time.Now().UTC()

	params := domain.DefaultGlobalParams()
	params.StartYear = schema.Schedule.StartYear
	params.LastYear = schema.Schedule.LastYear
	params.SiteFile = domain.Coalesce(schema.Schedule.SiteFile, params.SiteFile)
	params.InitialCrop = domain.Coalesce(schema.Schedule.InitialCrop, params.InitialCrop)
	params.InitialTree = domain.Coalesce(schema.Schedule.InitialTree, params.InitialTree)

	tl := domain.NewTimeline()
	for i := range schema.Entries {
		e, err := entryFromImport(&schema.Entries[i])
		if err != nil {
			return nil, fmt.Errorf("entries[%d]: %w", i, err)
		}
		tl.Append(e)
	}

	return &domain.Schedule{
		ID:        uuid.New().String(),
		Name:      schema.Schedule.Name,
		Params:    params,
		Timeline:  tl,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func entryFromImport(e *EntryImport) (domain.Entry, error) {
	switch domain.EntryKind(e.Kind) {
	case domain.EntryBlock:
		b := &domain.Block{BlockHeader: *headerFromImport(e.Header), Template: e.Template}
		for i := range e.Events {
			b.Events = append(b.Events, *eventFromImport(&e.Events[i]))
		}
		return b, nil
	case domain.EntryHeader:
		return headerFromImport(e.Header), nil
	case domain.EntryEvent:
		return eventFromImport(e.Event), nil
	case domain.EntryTerminator:
		return domain.Terminator{}, nil
	}
	return nil, fmt.Errorf("unknown entry kind %q", e.Kind)
}

func headerFromImport(h *HeaderImport) *domain.BlockHeader {
	return &domain.BlockHeader{
		Number:          h.Number,
		LastYear:        h.LastYear,
		Repeats:         h.Repeats,
		OutputStartYear: h.OutputStartYear,
		OutputMonth:     h.OutputMonth,
		OutputInterval:  h.OutputInterval,
		Weather:         domain.ParseWeatherMode(h.Weather),
		Description:     h.Description,
	}
}

func eventFromImport(ev *EventImport) *domain.Event {
	t := domain.EventType(ev.Type)
	if info, ok := domain.LookupEventType(ev.Type); ok {
		t = info.Type
	}
	return &domain.Event{Year: ev.Year, Month: ev.Month, Type: t, Code: ev.Code}
}

// Export converts a schedule into its session JSON structure.
func Export(s *domain.Schedule) *ImportSchema {
	out := &ImportSchema{
		Schedule: ScheduleImport{
			Name:        s.Name,
			StartYear:   s.Params.StartYear,
			LastYear:    s.Params.LastYear,
			SiteFile:    s.Params.SiteFile,
			InitialCrop: s.Params.InitialCrop,
			InitialTree: s.Params.InitialTree,
		},
		Entries: []EntryImport{},
	}
	for _, e := range s.Timeline.Entries() {
		out.Entries = append(out.Entries, entryToImport(e))
	}
	return out
}

// MarshalSchedule renders a schedule as indented session JSON.
func MarshalSchedule(s *domain.Schedule) ([]byte, error) {
	data, err := json.MarshalIndent(Export(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding schedule: %w", err)
	}
	return data, nil
}

func entryToImport(e domain.Entry) EntryImport {
	switch v := e.(type) {
	case *domain.Block:
		out := EntryImport{Kind: string(domain.EntryBlock), Header: headerToImport(&v.BlockHeader), Template: v.Template}
		for i := range v.Events {
			out.Events = append(out.Events, eventToImport(&v.Events[i]))
		}
		return out
	case *domain.BlockHeader:
		return EntryImport{Kind: string(domain.EntryHeader), Header: headerToImport(v)}
	case *domain.Event:
		ev := eventToImport(v)
		return EntryImport{Kind: string(domain.EntryEvent), Event: &ev}
	default:
		return EntryImport{Kind: string(domain.EntryTerminator)}
	}
}

func headerToImport(h *domain.BlockHeader) *HeaderImport {
	return &HeaderImport{
		Number:          h.Number,
		LastYear:        h.LastYear,
		Repeats:         h.Repeats,
		OutputStartYear: h.OutputStartYear,
		OutputMonth:     h.OutputMonth,
		OutputInterval:  h.OutputInterval,
		Weather:         h.Weather.Code(),
		Description:     h.Description,
	}
}

func eventToImport(ev *domain.Event) EventImport {
	return EventImport{Year: ev.Year, Month: ev.Month, Type: string(ev.Type), Code: ev.Code}
}
