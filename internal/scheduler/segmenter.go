package scheduler

import (
	"fmt"

	"github.com/alexanderramin/century/internal/domain"
)

// SavannaMaxSpan caps the length of a generated savanna block at one full
// cycle of the savanna template.
const SavannaMaxSpan = 5

// transitionSpan is the number of years consumed by a deforestation block.
const transitionSpan = 2

// TemplateSource resolves the event templates used by generated blocks.
type TemplateSource interface {
	ForRegime(r domain.Regime) (*domain.EventTemplate, error)
	Transition() (*domain.EventTemplate, error)
}

// SegmentRequest carries everything a segmentation run reads. Existing is
// only inspected, never modified.
type SegmentRequest struct {
	Series       []domain.YearClass
	StartBlock   int
	YearLimit    int
	Existing     *domain.Timeline
	Weather      domain.WeatherMode
	SimStartYear int
	Catalog      TemplateSource
}

// Segment partitions a land-cover series into management blocks that
// continue the existing timeline. The caller owns appending Result.Entries.
func Segment(req SegmentRequest) Result {
	if err := validateRequest(req); err != nil {
		return errResult(err)
	}

	simStart := req.SimStartYear
	if simStart == 0 {
		simStart = domain.DefaultStartYear
	}
	weather := req.Weather
	if !weather.Valid() {
		weather = domain.WeatherContinue
	}

	next := req.Existing.NextAvailableYear(simStart)
	window := filterYears(req.Series, next, req.YearLimit)
	if len(window) == 0 {
		return warnResult(fmt.Sprintf("no land-cover data between %d and year limit %d", next, req.YearLimit))
	}

	s := &segmenter{
		full:    req.Series,
		window:  window,
		catalog: req.Catalog,
		weather: weather,
		number:  req.StartBlock,
	}
	if err := s.run(); err != nil {
		return errResult(err)
	}

	for _, b := range s.blocks {
		if err := b.CheckSpan(); err != nil {
			return errResult(fmt.Errorf("%w: %v", ErrInternal, err))
		}
	}

	res := okResult(s.entries, s.blocks)
	if first := window[0].Year; first > next {
		res.Status = StatusWarning
		res.Message = fmt.Sprintf("first land-cover year %d is after the expected year %d; %s",
			first, next, res.Message)
	}
	return res
}

func validateRequest(req SegmentRequest) error {
	if req.StartBlock < 1 {
		return fmt.Errorf("%w: starting block number must be >= 1, got %d", ErrInvalidInput, req.StartBlock)
	}
	if req.Catalog == nil {
		return fmt.Errorf("%w: no template catalog", ErrInvalidInput)
	}
	if err := domain.CheckAscending(req.Series); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if last := req.Existing.MaxBlockNumber(); last > 0 && req.StartBlock != last+1 {
		return fmt.Errorf("%w: timeline ends at block %d, starting block must be %d, got %d",
			ErrInvalidInput, last, last+1, req.StartBlock)
	}
	return nil
}

func filterYears(series []domain.YearClass, from, to int) []domain.YearClass {
	var out []domain.YearClass
	for _, yc := range series {
		if yc.Year >= from && yc.Year <= to {
			out = append(out, yc)
		}
	}
	return out
}

type segmenter struct {
	full    []domain.YearClass
	window  []domain.YearClass
	catalog TemplateSource
	weather domain.WeatherMode
	number  int

	entries []domain.Entry
	blocks  []*domain.Block
}

func (s *segmenter) run() error {
	for i := 0; i < len(s.window); {
		regime := s.window[i].Regime()
		if !regime.Managed() {
			i++
			continue
		}

		j := i + 1
		for j < len(s.window) && s.window[j].Regime() == regime && s.window[j].Year == s.window[j-1].Year+1 {
			j++
		}

		if err := s.emitRun(s.window[i:j], regime); err != nil {
			return err
		}
		i = j
	}
	return nil
}

func (s *segmenter) emitRun(run []domain.YearClass, regime domain.Regime) error {
	switch regime {
	case domain.RegimeSavana:
		tmpl, err := s.catalog.ForRegime(regime)
		if err != nil {
			return err
		}
		for k := 0; k < len(run); k += SavannaMaxSpan {
			end := min(k+SavannaMaxSpan, len(run))
			chunk := run[k:end]
			s.emit(tmpl, chunk[0].Year, chunk[len(chunk)-1].Year, rangeDescription(run[0].Label, chunk[0].Year, chunk[len(chunk)-1].Year))
		}
		return nil

	case domain.RegimePastagem, domain.RegimeSoja:
		start := run[0].Year
		last := run[len(run)-1].Year
		remaining := len(run)

		if regime == domain.RegimePastagem && len(run) >= transitionSpan {
			if prev, ok := s.yearBefore(start); ok && prev.Regime() == domain.RegimeSavana {
				tmpl, err := s.catalog.Transition()
				if err != nil {
					return err
				}
				trLast := start + transitionSpan - 1
				desc := fmt.Sprintf("%s -> %s (%d - %d)", prev.Label, run[0].Label, start, trLast)
				s.emit(tmpl, start, trLast, desc)
				start = trLast + 1
				remaining -= transitionSpan
			}
		}
		if remaining == 0 {
			return nil
		}

		tmpl, err := s.catalog.ForRegime(regime)
		if err != nil {
			return err
		}
		s.emit(tmpl, start, last, rangeDescription(run[0].Label, start, last))
		return nil
	}
	return nil
}

// yearBefore looks up the year preceding start in the unfiltered series.
func (s *segmenter) yearBefore(start int) (domain.YearClass, bool) {
	for _, yc := range s.full {
		if yc.Year == start-1 {
			return yc, true
		}
	}
	return domain.YearClass{}, false
}

func (s *segmenter) emit(tmpl *domain.EventTemplate, start, last int, desc string) {
	b := &domain.Block{
		BlockHeader: domain.BlockHeader{
			Number:          s.number,
			LastYear:        last,
			Repeats:         last - start + 1,
			OutputStartYear: start,
			OutputMonth:     1,
			OutputInterval:  1,
			Weather:         s.weather,
			Description:     desc,
		},
		Template: tmpl.ID,
		Events:   tmpl.CloneEvents(),
	}
	s.blocks = append(s.blocks, b)
	s.entries = append(s.entries, b, domain.Terminator{})
	s.number++
}

func rangeDescription(label string, start, last int) string {
	return fmt.Sprintf("%s (%d - %d)", label, start, last)
}
