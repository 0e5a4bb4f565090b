package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/century/internal/domain"
)

// LoadSchema reads and parses a template JSON file.
func LoadSchema(path string) (*TemplateSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

func ParseSchema(data []byte) (*TemplateSchema, error) {
	var schema TemplateSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &schema, nil
}

// Build validates a schema and expands its year groups into the flat,
// ordered event list of a domain template.
func Build(schema *TemplateSchema) (*domain.EventTemplate, error) {
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("template %q: %w", schema.ID, errors.Join(errs...))
	}

	tmpl := &domain.EventTemplate{
		ID:          schema.ID,
		Name:        schema.Name,
		Description: schema.Description,
		Regime:      domain.Regime(schema.Regime),
		CycleYears:  schema.CycleYears,
	}
	for _, yc := range schema.Years {
		years, err := CycleYearsOf(yc)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", schema.ID, err)
		}
		for _, y := range years {
			for _, ec := range yc.Events {
				info, _ := domain.LookupEventType(ec.Type)
				tmpl.Events = append(tmpl.Events, domain.Event{
					Year:  y,
					Month: ec.Month,
					Type:  info.Type,
					Code:  ec.Code,
				})
			}
		}
	}
	return tmpl, nil
}
