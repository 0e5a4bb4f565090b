package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/century/internal/domain"
)

// TemplateRow is one catalog template with its role.
type TemplateRow struct {
	Template *domain.EventTemplate
	Role     string
}

// FormatTemplateList renders the template catalog inside a bordered box.
func FormatTemplateList(templates []TemplateRow) string {
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{
			Bold(t.Template.ID),
			t.Template.Name,
			RegimeBadge(t.Template.Regime),
			t.Role,
			strconv.Itoa(t.Template.CycleYears),
			strconv.Itoa(len(t.Template.Events)),
		})
	}
	table := RenderTable([]string{"ID", "NAME", "REGIME", "ROLE", "CYCLE", "EVENTS"}, rows, 4, 5)
	return RenderBox("Templates", table)
}

// FormatTemplateShow renders a template and its events grouped by cycle
// year.
func FormatTemplateShow(t TemplateRow) string {
	tmpl := t.Template
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleBold.Render(tmpl.Name), RegimeBadge(tmpl.Regime))
	if tmpl.Description != "" {
		b.WriteString(Dim(tmpl.Description) + "\n")
	}
	fmt.Fprintf(&b, "\n  %s  %s\n", StyleDim.Render("ID   "), tmpl.ID)
	fmt.Fprintf(&b, "  %s  %s\n", StyleDim.Render("ROLE "), t.Role)
	fmt.Fprintf(&b, "  %s  %d year(s)\n\n", StyleDim.Render("CYCLE"), tmpl.CycleYears)

	rows := make([][]string, 0, len(tmpl.Events))
	for _, ev := range tmpl.Events {
		rows = append(rows, []string{strconv.Itoa(ev.Year), strconv.Itoa(ev.Month), string(ev.Type), ev.Code})
	}
	b.WriteString(RenderTable([]string{"YEAR", "MONTH", "TYPE", "CODE"}, rows, 0, 1))
	return RenderBox("", b.String())
}

// FormatWeatherModes lists the weather choices in presentation order.
func FormatWeatherModes() string {
	modes := domain.WeatherModes()
	rows := make([][]string, 0, len(modes))
	for _, w := range modes {
		rows = append(rows, []string{Bold(w.Code()), w.Description()})
	}
	return RenderTable([]string{"CODE", "DESCRIPTION"}, rows)
}

// FormatEventCatalog lists every event keyword with its accepted codes.
func FormatEventCatalog() string {
	types := domain.EventTypes()
	rows := make([][]string, 0, len(types))
	for _, info := range types {
		var codes []string
		for _, c := range domain.SpecificCodes(info.Type) {
			codes = append(codes, c.Code)
		}
		need := Dim("none")
		switch {
		case info.Type.RequiresCode():
			need = "required"
		case info.TakesCode:
			need = "optional"
		}
		rows = append(rows, []string{Bold(string(info.Type)), info.Description, need, strings.Join(codes, " ")})
	}
	return RenderTable([]string{"TYPE", "DESCRIPTION", "CODE", "ACCEPTED CODES"}, rows)
}
