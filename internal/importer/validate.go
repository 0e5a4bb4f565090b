package importer

import (
	"fmt"

	"github.com/alexanderramin/century/internal/domain"
)

var validWeatherCodes = map[string]bool{"M": true, "S": true, "F": true, "C": true}

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateSchedule(&schema.Schedule)...)
	for i := range schema.Entries {
		errs = append(errs, validateEntry(fmt.Sprintf("entries[%d]", i), &schema.Entries[i])...)
	}

	return errs
}

func validateSchedule(s *ScheduleImport) []error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, fmt.Errorf("schedule.name is required"))
	} else if err := (&domain.Schedule{Name: s.Name}).ValidateName(); err != nil {
		errs = append(errs, fmt.Errorf("schedule.name: %w", err))
	}
	if s.StartYear <= 0 {
		errs = append(errs, fmt.Errorf("schedule.start_year is required"))
	}
	if s.LastYear <= 0 {
		errs = append(errs, fmt.Errorf("schedule.last_year is required"))
	} else if s.StartYear > 0 && s.LastYear < s.StartYear {
		errs = append(errs, fmt.Errorf("schedule.last_year %d must not precede start_year %d", s.LastYear, s.StartYear))
	}

	return errs
}

func validateEntry(prefix string, e *EntryImport) []error {
	var errs []error

	if !domain.ValidEntryKinds[e.Kind] {
		return []error{fmt.Errorf("%s.kind: invalid value %q", prefix, e.Kind)}
	}

	switch domain.EntryKind(e.Kind) {
	case domain.EntryBlock, domain.EntryHeader:
		if e.Header == nil {
			errs = append(errs, fmt.Errorf("%s.header is required for kind %q", prefix, e.Kind))
		} else {
			errs = append(errs, validateHeader(prefix+".header", e.Header)...)
		}
		if e.Kind == string(domain.EntryBlock) {
			if len(e.Events) == 0 {
				errs = append(errs, fmt.Errorf("%s.events: a block needs at least one event", prefix))
			}
			for i := range e.Events {
				errs = append(errs, validateEvent(fmt.Sprintf("%s.events[%d]", prefix, i), &e.Events[i])...)
			}
		} else if len(e.Events) > 0 {
			errs = append(errs, fmt.Errorf("%s.events: not allowed for kind %q", prefix, e.Kind))
		}
		if e.Event != nil {
			errs = append(errs, fmt.Errorf("%s.event: not allowed for kind %q", prefix, e.Kind))
		}
	case domain.EntryEvent:
		if e.Event == nil {
			errs = append(errs, fmt.Errorf("%s.event is required for kind %q", prefix, e.Kind))
		} else {
			errs = append(errs, validateEvent(prefix+".event", e.Event)...)
		}
		if e.Header != nil || len(e.Events) > 0 {
			errs = append(errs, fmt.Errorf("%s: only event may be set for kind %q", prefix, e.Kind))
		}
	case domain.EntryTerminator:
		if e.Header != nil || e.Event != nil || len(e.Events) > 0 {
			errs = append(errs, fmt.Errorf("%s: a terminator carries no fields", prefix))
		}
	}

	return errs
}

func validateHeader(prefix string, h *HeaderImport) []error {
	var errs []error

	if !validWeatherCodes[h.Weather] {
		errs = append(errs, fmt.Errorf("%s.weather: invalid value %q (expected M, S, F or C)", prefix, h.Weather))
	}
	dh := headerFromImport(h)
	dh.Weather = domain.WeatherMean
	if err := dh.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
	}

	return errs
}

func validateEvent(prefix string, ev *EventImport) []error {
	d := eventFromImport(ev)
	if err := d.Validate(); err != nil {
		return []error{fmt.Errorf("%s: %w", prefix, err)}
	}
	return nil
}
