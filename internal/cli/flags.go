package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/century/internal/domain"
	"github.com/spf13/pflag"
)

// weatherValue is a pflag.Value accepting a weather code (M, S, F, C) or
// its full description.
type weatherValue struct {
	mode *domain.WeatherMode
}

var _ pflag.Value = (*weatherValue)(nil)

func newWeatherValue(def domain.WeatherMode, p *domain.WeatherMode) *weatherValue {
	*p = def
	return &weatherValue{mode: p}
}

func (w *weatherValue) String() string { return string(*w.mode) }

func (w *weatherValue) Set(s string) error {
	trimmed := strings.TrimSpace(s)
	for _, m := range domain.WeatherModes() {
		if strings.EqualFold(trimmed, m.Code()) || trimmed == m.Description() {
			*w.mode = m
			return nil
		}
	}
	return fmt.Errorf("unknown weather mode %q (expected M, S, F or C)", s)
}

func (w *weatherValue) Type() string { return "weather" }

// addWeatherFlag registers --weather on fs.
func addWeatherFlag(fs *pflag.FlagSet, p *domain.WeatherMode, def domain.WeatherMode) {
	fs.Var(newWeatherValue(def, p), "weather", "Weather choice: M (mean), S (stochastic), F (file) or C (continue)")
}

// parsePosition converts a timeline position argument.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid position %q: expected a non-negative integer", arg)
	}
	return n, nil
}
