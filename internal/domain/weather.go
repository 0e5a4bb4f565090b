package domain

import "strings"

var weatherDescriptions = []struct {
	mode WeatherMode
	desc string
}{
	{WeatherMean, "M: site.100 mean values"},
	{WeatherStochastic, "S: site.100 means, stochastic precipitation"},
	{WeatherFile, "F: weather file from the start"},
	{WeatherContinue, "C: continue weather file, no rewind"},
}

// WeatherModes returns the four weather modes in M, S, F, C order.
func WeatherModes() []WeatherMode {
	modes := make([]WeatherMode, 0, len(weatherDescriptions))
	for _, w := range weatherDescriptions {
		modes = append(modes, w.mode)
	}
	return modes
}

// ParseWeatherMode accepts a single-letter code (any case), a full
// description, or any string starting with "<code>:". Unrecognized input
// resolves to WeatherContinue.
func ParseWeatherMode(s string) WeatherMode {
	s = strings.TrimSpace(s)
	for _, w := range weatherDescriptions {
		switch {
		case strings.EqualFold(s, string(w.mode)):
			return w.mode
		case s == w.desc:
			return w.mode
		case strings.HasPrefix(strings.ToUpper(s), string(w.mode)+":"):
			return w.mode
		}
	}
	return WeatherContinue
}

// Code returns the single-letter code written to the schedule file.
// The zero value and unknown modes map to "C".
func (w WeatherMode) Code() string {
	for _, d := range weatherDescriptions {
		if d.mode == w {
			return string(w)
		}
	}
	return string(WeatherContinue)
}

func (w WeatherMode) Description() string {
	code := WeatherMode(w.Code())
	for _, d := range weatherDescriptions {
		if d.mode == code {
			return d.desc
		}
	}
	return ""
}

func (w WeatherMode) Valid() bool {
	for _, d := range weatherDescriptions {
		if d.mode == w {
			return true
		}
	}
	return false
}
