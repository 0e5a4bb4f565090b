// Package schfile renders a schedule timeline into the fixed-column text
// layout read by the CENTURY model.
package schfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/century/internal/domain"
)

// TerminatorLine ends a block. The consuming model matches it literally.
const TerminatorLine = "-999 -999 X"

// Column width of every value field.
const fieldWidth = 14

// blockLabelPad separates the "Block #" label from the description.
const blockLabelPad = "             "

const manualDescription = "Manual"

// Render returns the text of a single timeline entry. Headers, blocks and
// events carry no trailing newline; a terminator renders with one.
func Render(e domain.Entry) string {
	switch v := e.(type) {
	case *domain.Block:
		var b strings.Builder
		b.WriteString(renderHeader(&v.BlockHeader))
		for i := range v.Events {
			b.WriteByte('\n')
			b.WriteString(renderEvent(&v.Events[i]))
		}
		return b.String()
	case *domain.BlockHeader:
		return renderHeader(v)
	case *domain.Event:
		return renderEvent(v)
	case domain.Terminator:
		return TerminatorLine + "\n"
	default:
		panic(fmt.Sprintf("schfile: unknown entry type %T", e))
	}
}

func field(v any, label string) string {
	return fmt.Sprintf("%-*v%s", fieldWidth, v, label)
}

func renderHeader(h *domain.BlockHeader) string {
	desc := h.Description
	if desc == "" {
		desc = manualDescription
	}
	lines := []string{
		field(h.Number, "Block #") + blockLabelPad + "(" + desc + ")",
		field(h.LastYear, "Last year"),
		field(h.Repeats, "Repeats # years"),
		field(h.OutputStartYear, "Output starting year"),
		field(h.OutputMonth, "Output month"),
		field(h.OutputInterval, "Output interval"),
		field(h.Weather.Code(), "Weather choice"),
	}
	return strings.Join(lines, "\n")
}

func renderEvent(ev *domain.Event) string {
	line := fmt.Sprintf("      %-5d%-5d%s", ev.Year, ev.Month, ev.Type)
	if ev.Code != "" {
		line += "\n" + ev.Code
	}
	return line
}

// RenderGlobals renders the global parameter section that opens every
// schedule file.
func RenderGlobals(p domain.GlobalParams) string {
	lines := []string{
		field(p.StartYear, "Starting year"),
		field(p.LastYear, "Last year"),
		field(p.SiteFile, "Site file name"),
		field(0, "Labeling type"),
		field(-1, "Labeling year"),
		field("-1.00", "Microcosm"),
		field(-1, "CO2 Systems"),
		field(-1, "pH shift"),
		field(-1, "Soil Warming"),
		field(0, "N input scalar option"),
		field(0, "OMAD scalar option"),
		field(0, "Climate scalar option"),
		field(3, "Initial system"),
		field(p.InitialCrop, "Initial crop"),
		field(p.InitialTree, "Initial tree"),
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderDocument renders the complete schedule file: globals, a blank line,
// then every entry in timeline order on its own line.
func RenderDocument(p domain.GlobalParams, tl *domain.Timeline) string {
	var b strings.Builder
	b.WriteString(RenderGlobals(p))
	b.WriteByte('\n')
	for _, e := range tl.Entries() {
		b.WriteString(Render(e))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile writes a rendered document to path.
func WriteFile(path, doc string) error {
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing schedule file: %w", err)
	}
	return nil
}
