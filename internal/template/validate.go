package template

import (
	"fmt"

	"github.com/alexanderramin/century/internal/domain"
)

// ValidateSchema checks a TemplateSchema for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateSchema(schema *TemplateSchema) []error {
	var errs []error

	if schema.ID == "" {
		errs = append(errs, fmt.Errorf("template id is required"))
	}
	if schema.Name == "" {
		errs = append(errs, fmt.Errorf("template name is required"))
	}
	switch domain.Regime(schema.Regime) {
	case domain.RegimeSavana, domain.RegimePastagem, domain.RegimeSoja:
	default:
		errs = append(errs, fmt.Errorf("template regime %q is not a managed regime", schema.Regime))
	}
	if schema.Role != RoleMaintenance && schema.Role != RoleTransition {
		errs = append(errs, fmt.Errorf("template role must be %q or %q, got %q", RoleMaintenance, RoleTransition, schema.Role))
	}
	if schema.CycleYears < 1 {
		errs = append(errs, fmt.Errorf("cycle_years must be >= 1, got %d", schema.CycleYears))
	}
	if len(schema.Years) == 0 {
		errs = append(errs, fmt.Errorf("at least one year group is required"))
	}

	// Year groups must cover cycle years in ascending order without overlap.
	prev := 0
	for i, y := range schema.Years {
		if y.Year != 0 && len(y.Repeat) > 0 {
			errs = append(errs, fmt.Errorf("years[%d]: year and repeat are mutually exclusive", i))
			continue
		}
		years, err := CycleYearsOf(y)
		if err != nil {
			errs = append(errs, fmt.Errorf("years[%d]: parsing repeat: %w", i, err))
			continue
		}
		if len(years) == 0 {
			errs = append(errs, fmt.Errorf("years[%d]: repeat covers no years", i))
			continue
		}
		for _, cy := range years {
			if cy < 1 || (schema.CycleYears >= 1 && cy > schema.CycleYears) {
				errs = append(errs, fmt.Errorf("years[%d]: cycle year %d outside 1..%d", i, cy, schema.CycleYears))
			} else if cy <= prev {
				errs = append(errs, fmt.Errorf("years[%d]: cycle year %d is out of order", i, cy))
			}
			prev = max(prev, cy)
		}
		if len(y.Events) == 0 {
			errs = append(errs, fmt.Errorf("years[%d]: at least one event is required", i))
		}
		for j, ec := range y.Events {
			ev := domain.Event{Year: 1, Month: ec.Month, Type: domain.EventType(ec.Type), Code: ec.Code}
			if err := ev.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("years[%d].events[%d]: %w", i, j, err))
			}
		}
	}

	return errs
}
