package formatter

import (
	"strings"

	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

// Palette loosely follows land-cover map colors: savanna green, pasture
// ochre, cropland violet.
var (
	ColorGreen  = lipgloss.Color("#6a9955")
	ColorYellow = lipgloss.Color("#d7a74f")
	ColorRed    = lipgloss.Color("#d0584a")
	ColorBlue   = lipgloss.Color("#5f9ea0")
	ColorPurple = lipgloss.Color("#b48ead")
	ColorDim    = lipgloss.Color("#8a8a7a")
	ColorFg     = lipgloss.Color("#e5e0cf")
	ColorHeader = lipgloss.Color("#e08e45")
)

var (
	StyleGreen  = fg(ColorGreen)
	StyleYellow = fg(ColorYellow)
	StyleRed    = fg(ColorRed)
	StyleBlue   = fg(ColorBlue)
	StylePurple = fg(ColorPurple)
	StyleDim    = fg(ColorDim)
	StyleFg     = fg(ColorFg)
	StyleHeader = fg(ColorHeader).Bold(true)
	StyleBold   = fg(ColorFg).Bold(true)
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// RegimeStyle returns the color used for a management regime.
func RegimeStyle(r domain.Regime) lipgloss.Style {
	switch r {
	case domain.RegimeSavana:
		return StyleGreen
	case domain.RegimePastagem:
		return StyleYellow
	case domain.RegimeSoja:
		return StylePurple
	default:
		return StyleDim
	}
}

// RegimeBadge renders a regime as a colored tag such as "● PASTAGEM".
func RegimeBadge(r domain.Regime) string {
	return RegimeStyle(r).Render("● " + string(r))
}

// StatusBadge renders a generation status.
func StatusBadge(s scheduler.Status) string {
	switch s {
	case scheduler.StatusOK:
		return StyleGreen.Render("✔ OK")
	case scheduler.StatusWarning:
		return StyleYellow.Render("▲ WARNING")
	case scheduler.StatusError:
		return StyleRed.Render("✖ ERROR")
	default:
		return StyleDim.Render(string(s))
	}
}

// Header renders a section title over a rule of the same width.
func Header(text string) string {
	title := strings.ToUpper(text)
	return StyleHeader.Render(title) + "\n" + StyleDim.Render(strings.Repeat("─", lipgloss.Width(title)))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
