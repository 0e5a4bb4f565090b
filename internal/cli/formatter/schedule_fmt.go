package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/scheduler"
)

// FormatScheduleList renders stored schedules with their year ranges.
func FormatScheduleList(schedules []*domain.Schedule) string {
	rows := make([][]string, 0, len(schedules))
	for _, s := range schedules {
		rows = append(rows, []string{
			Bold(s.Name),
			fmt.Sprintf("%d-%d", s.Params.StartYear, s.Params.LastYear),
			s.Params.SiteFile,
			Dim(s.UpdatedAt.Format("2006-01-02 15:04")),
		})
	}
	return RenderBox("Schedules", RenderTable([]string{"SITE", "YEARS", "SITE FILE", "UPDATED"}, rows))
}

// FormatScheduleShow renders the global parameters and the timeline of a
// schedule.
func FormatScheduleShow(s *domain.Schedule) string {
	var b strings.Builder
	b.WriteString(Bold(s.Name) + "  " + Dim(s.FileName()) + "\n\n")
	params := [][2]string{
		{"START YEAR  ", strconv.Itoa(s.Params.StartYear)},
		{"LAST YEAR   ", strconv.Itoa(s.Params.LastYear)},
		{"SITE FILE   ", s.Params.SiteFile},
		{"INITIAL CROP", s.Params.InitialCrop},
		{"INITIAL TREE", s.Params.InitialTree},
	}
	for _, p := range params {
		fmt.Fprintf(&b, "  %s  %s\n", StyleDim.Render(p[0]), p[1])
	}
	b.WriteString("\n")
	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	b.WriteString(FormatTimeline(s.Timeline))
	return RenderBox("", b.String())
}

// FormatTimeline renders one row per timeline entry. Positions are the
// indices accepted by the remove and move commands.
func FormatTimeline(tl *domain.Timeline) string {
	entries := tl.Entries()
	if len(entries) == 0 {
		return Dim("(empty timeline)") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, append([]string{strconv.Itoa(i)}, entryCells(e)...))
	}
	return RenderTable([]string{"POS", "KIND", "BLOCK", "YEARS", "REPEATS", "WEATHER", "DETAIL"}, rows, 0)
}

func entryCells(e domain.Entry) []string {
	switch v := e.(type) {
	case *domain.Block:
		detail := fmt.Sprintf("%s %s", v.Description, Dim(fmt.Sprintf("[%s, %d events]", v.Template, len(v.Events))))
		return headerCells(StyleGreen.Render("block"), &v.BlockHeader, detail)
	case *domain.BlockHeader:
		return headerCells(StyleBlue.Render("header"), v, v.Description)
	case *domain.Event:
		return []string{StylePurple.Render("event"), "", "", "", "", FormatEvent(v)}
	case domain.Terminator:
		return []string{Dim("end"), "", "", "", "", Dim("-999 -999 X")}
	default:
		return []string{fmt.Sprintf("%T", e)}
	}
}

func headerCells(kind string, h *domain.BlockHeader, detail string) []string {
	return []string{
		kind,
		strconv.Itoa(h.Number),
		fmt.Sprintf("%d-%d", h.OutputStartYear, h.LastYear),
		strconv.Itoa(h.Repeats),
		h.Weather.Code(),
		detail,
	}
}

// FormatEvent renders an event as "Y1 M10 CROP SJ".
func FormatEvent(ev *domain.Event) string {
	s := fmt.Sprintf("Y%d M%d %s", ev.Year, ev.Month, ev.Type)
	if ev.Code != "" {
		s += " " + ev.Code
	}
	return s
}

// FormatSeries renders a land-cover series with the regime of every year.
func FormatSeries(series []domain.YearClass) string {
	rows := make([][]string, 0, len(series))
	for _, yc := range series {
		code := ""
		if yc.Code != 0 {
			code = strconv.Itoa(yc.Code)
		}
		rows = append(rows, []string{strconv.Itoa(yc.Year), code, yc.Label, RegimeBadge(yc.Regime())})
	}
	return RenderTable([]string{"YEAR", "CODE", "CLASS", "REGIME"}, rows, 1)
}

// FormatResult summarizes a generation run and lists the generated blocks.
func FormatResult(res scheduler.Result) string {
	var b strings.Builder
	b.WriteString(StatusBadge(res.Status) + "  " + res.Message + "\n")
	if len(res.Blocks) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	rows := make([][]string, 0, len(res.Blocks))
	for _, blk := range res.Blocks {
		rows = append(rows, []string{
			strconv.Itoa(blk.Number),
			fmt.Sprintf("%d-%d", blk.OutputStartYear, blk.LastYear),
			blk.Template,
			blk.Description,
		})
	}
	b.WriteString(RenderTable([]string{"BLOCK", "YEARS", "TEMPLATE", "DESCRIPTION"}, rows, 0))
	return b.String()
}
