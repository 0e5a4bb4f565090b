package scheduler

import (
	"fmt"

	"github.com/alexanderramin/century/internal/domain"
)

// Fixed header values of the preset blocks.
const (
	SavannaPresetNumber        = 1
	SavannaPresetRepeats       = 5
	DeforestationPresetNumber  = 2
	DeforestationPresetRepeats = 2

	// ManualHeaderNumber is the default block number offered for a
	// hand-written header, following the two presets.
	ManualHeaderNumber = 3
)

// PresetRequest holds the user-chosen years and weather of a preset block.
type PresetRequest struct {
	OutputStartYear int
	LastYear        int
	Weather         domain.WeatherMode
}

// StandardSavannaBlock builds block 1: the savanna template repeated over a
// five-year cycle, followed by a terminator.
func StandardSavannaBlock(cat TemplateSource, req PresetRequest) ([]domain.Entry, error) {
	tmpl, err := cat.ForRegime(domain.RegimeSavana)
	if err != nil {
		return nil, err
	}
	return presetBlock(tmpl, SavannaPresetNumber, SavannaPresetRepeats, "Padrão Savana", req)
}

// DeforestationBlock builds block 2: one savanna year followed by clearing
// and pasture planting, followed by a terminator.
func DeforestationBlock(cat TemplateSource, req PresetRequest) ([]domain.Entry, error) {
	tmpl, err := cat.Transition()
	if err != nil {
		return nil, err
	}
	return presetBlock(tmpl, DeforestationPresetNumber, DeforestationPresetRepeats, "Desmatamento + Pastagem Tradicional", req)
}

func presetBlock(tmpl *domain.EventTemplate, number, repeats int, label string, req PresetRequest) ([]domain.Entry, error) {
	weather := req.Weather
	if !weather.Valid() {
		weather = domain.WeatherMean
	}
	b := &domain.Block{
		BlockHeader: domain.BlockHeader{
			Number:          number,
			LastYear:        req.LastYear,
			Repeats:         repeats,
			OutputStartYear: req.OutputStartYear,
			OutputMonth:     1,
			OutputInterval:  1,
			Weather:         weather,
			Description:     fmt.Sprintf("%s (%d-%d)", label, req.OutputStartYear, req.LastYear),
		},
		Template: tmpl.ID,
		Events:   tmpl.CloneEvents(),
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return []domain.Entry{b, domain.Terminator{}}, nil
}
