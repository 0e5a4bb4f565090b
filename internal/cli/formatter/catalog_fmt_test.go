package formatter

import (
	"testing"

	"github.com/alexanderramin/century/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatTemplateListAndShow(t *testing.T) {
	row := TemplateRow{
		Template: &domain.EventTemplate{
			ID: "pasture-maintenance", Name: "Pasture maintenance", Regime: domain.RegimePastagem,
			CycleYears: 1, Events: []domain.Event{{Year: 1, Month: 6, Type: domain.EventGraze, Code: "GM"}},
		},
		Role: "maintenance",
	}

	list := FormatTemplateList([]TemplateRow{row})
	assert.Contains(t, list, "TEMPLATES")
	assert.Contains(t, list, "pasture-maintenance")
	assert.Contains(t, list, "PASTAGEM")

	show := FormatTemplateShow(row)
	assert.Contains(t, show, "Pasture maintenance")
	assert.Contains(t, show, "GRAZ")
	assert.Contains(t, show, "GM")
}

func TestFormatWeatherModes(t *testing.T) {
	out := FormatWeatherModes()
	for _, w := range domain.WeatherModes() {
		assert.Contains(t, out, w.Description())
	}
}

func TestFormatEventCatalog(t *testing.T) {
	out := FormatEventCatalog()
	assert.Contains(t, out, "CROP")
	assert.Contains(t, out, "required")
	assert.Contains(t, out, "optional")
	assert.Contains(t, out, "BE8")
}
