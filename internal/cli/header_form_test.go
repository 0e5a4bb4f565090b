package cli

import (
	"testing"

	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/teatest"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderFormValues_RoundTrip(t *testing.T) {
	h := &domain.BlockHeader{Number: 4, OutputStartYear: 2000, Weather: domain.WeatherFile}
	v := newHeaderFormValues(h)
	assert.Equal(t, "4", v.Number)
	assert.Equal(t, "", v.LastYear)
	assert.Equal(t, "F", v.Weather)

	v.LastYear = " 2004 "
	v.Repeats = "5"
	v.Description = "  Custom  "
	var got domain.BlockHeader
	require.NoError(t, v.apply(&got))
	assert.Equal(t, domain.BlockHeader{
		Number: 4, OutputStartYear: 2000, LastYear: 2004, Repeats: 5,
		Weather: domain.WeatherFile, Description: "Custom",
	}, got)
}

func TestHeaderFormValues_RejectsText(t *testing.T) {
	v := &headerFormValues{Repeats: "five", Weather: "M"}
	assert.Error(t, v.apply(&domain.BlockHeader{}))
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validatePositiveInt(""))
	assert.NoError(t, validatePositiveInt("3"))
	assert.Error(t, validatePositiveInt("0"))
	assert.NoError(t, validateMonth("12"))
	assert.Error(t, validateMonth("13"))
}

func TestWeatherValue(t *testing.T) {
	var w domain.WeatherMode
	v := newWeatherValue(domain.WeatherMean, &w)
	assert.Equal(t, "M", v.String())
	assert.Equal(t, "weather", v.Type())

	assert.NoError(t, v.Set("c"))
	assert.Equal(t, domain.WeatherContinue, w)
	assert.NoError(t, v.Set(domain.WeatherFile.Description()))
	assert.Equal(t, domain.WeatherFile, w)
	assert.Error(t, v.Set("Z"))
}

func TestHeaderForm_FilledWithKeys(t *testing.T) {
	v := newHeaderFormValues(&domain.BlockHeader{OutputStartYear: 1987})
	d := teatest.New(t, headerForm(v), teatest.WithSize(100, 40))

	d.Type("4")
	d.Enter(1) // output starting year keeps 1987
	d.Enter(1)
	d.Type("1990")
	d.Enter(1)
	d.Type("4")
	d.Enter(1) // next group
	d.Enter(2) // month and interval left blank
	d.Down()   // weather M -> S
	d.Enter(1)
	d.Type("Cerrado")
	d.Enter(1)

	form, ok := d.Model.(*huh.Form)
	require.True(t, ok)
	require.Equal(t, huh.StateCompleted, form.State)

	var h domain.BlockHeader
	require.NoError(t, v.apply(&h))
	assert.Equal(t, 4, h.Number)
	assert.Equal(t, 1987, h.OutputStartYear)
	assert.Equal(t, 1990, h.LastYear)
	assert.Equal(t, 4, h.Repeats)
	assert.Equal(t, 0, h.OutputMonth)
	assert.Equal(t, domain.WeatherStochastic, h.Weather)
	assert.Equal(t, "Cerrado", h.Description)
}

func TestHeaderForm_RejectsInvalidMonth(t *testing.T) {
	v := newHeaderFormValues(&domain.BlockHeader{})
	d := teatest.New(t, headerForm(v), teatest.WithSize(100, 40))

	d.Enter(4)
	d.Type("13")
	d.Enter(1)

	form := d.Model.(*huh.Form)
	assert.NotEqual(t, huh.StateCompleted, form.State)
	assert.Contains(t, d.View(), "between 1 and 12")
}
