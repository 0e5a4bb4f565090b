package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/century/internal/cli/formatter"
	"github.com/alexanderramin/century/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// centuryHuhTheme returns a huh theme matching the formatter palette.
func centuryHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// headerFormValues holds the raw text of the header form. Blank fields
// keep the manual-entry defaults.
type headerFormValues struct {
	Number         string
	OutputStart    string
	LastYear       string
	Repeats        string
	OutputMonth    string
	OutputInterval string
	Weather        string
	Description    string
}

func newHeaderFormValues(h *domain.BlockHeader) *headerFormValues {
	itoa := func(n int) string {
		if n == 0 {
			return ""
		}
		return strconv.Itoa(n)
	}
	return &headerFormValues{
		Number:         itoa(h.Number),
		OutputStart:    itoa(h.OutputStartYear),
		LastYear:       itoa(h.LastYear),
		Repeats:        itoa(h.Repeats),
		OutputMonth:    itoa(h.OutputMonth),
		OutputInterval: itoa(h.OutputInterval),
		Weather:        string(domain.Coalesce(h.Weather, domain.WeatherMean)),
		Description:    h.Description,
	}
}

// apply copies the form values into h.
func (v *headerFormValues) apply(h *domain.BlockHeader) error {
	fields := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"block number", v.Number, &h.Number},
		{"output starting year", v.OutputStart, &h.OutputStartYear},
		{"last year", v.LastYear, &h.LastYear},
		{"repeats", v.Repeats, &h.Repeats},
		{"output month", v.OutputMonth, &h.OutputMonth},
		{"output interval", v.OutputInterval, &h.OutputInterval},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(f.raw)
		if raw == "" {
			*f.dst = 0
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", f.name, f.raw)
		}
		*f.dst = n
	}
	h.Weather = domain.ParseWeatherMode(v.Weather)
	h.Description = strings.TrimSpace(v.Description)
	return nil
}

func headerForm(v *headerFormValues) *huh.Form {
	weatherOptions := make([]huh.Option[string], 0, 4)
	for _, w := range domain.WeatherModes() {
		weatherOptions = append(weatherOptions, huh.NewOption(w.Description(), w.Code()))
	}

	intInput := func(title, placeholder string, value *string) *huh.Input {
		return huh.NewInput().
			Title(title).
			Placeholder(placeholder).
			Value(value).
			Validate(validatePositiveInt)
	}

	return huh.NewForm(
		huh.NewGroup(
			intInput("Block #", "3", &v.Number),
			intInput("Output starting year", "next available year", &v.OutputStart),
			intInput("Last year", "output starting year", &v.LastYear),
			intInput("Repeats # years", "1", &v.Repeats),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output month").
				Placeholder("1").
				Value(&v.OutputMonth).
				Validate(validateMonth),
			intInput("Output interval", "1", &v.OutputInterval),
			huh.NewSelect[string]().
				Title("Weather choice").
				Options(weatherOptions...).
				Value(&v.Weather),
			huh.NewInput().
				Title("Description").
				Placeholder("Manual (start-last)").
				Value(&v.Description),
		),
	).WithTheme(centuryHuhTheme()).WithShowHelp(false)
}

// runHeaderForm fills h interactively, starting from its current values.
func runHeaderForm(h *domain.BlockHeader) error {
	v := newHeaderFormValues(h)
	if err := headerForm(v).Run(); err != nil {
		return err
	}
	return v.apply(h)
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateMonth accepts empty or 1..12.
func validateMonth(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 12 {
		return fmt.Errorf("enter a month between 1 and 12")
	}
	return nil
}
