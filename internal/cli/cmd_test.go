package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/repository"
	"github.com/alexanderramin/century/internal/service"
	tmpl "github.com/alexanderramin/century/internal/template"
	"github.com/alexanderramin/century/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)
	cat, err := tmpl.DefaultCatalog()
	require.NoError(t, err)

	schedules := repository.NewSQLiteScheduleRepo(db)
	entries := repository.NewSQLiteEntryRepo(db)
	series := repository.NewSQLiteSeriesRepo(db)

	return &App{
		Schedules: service.NewScheduleService(schedules, entries, uow),
		Timeline:  service.NewTimelineService(uow, cat),
		Series:    service.NewSeriesService(schedules, series, uow),
		Templates: service.NewTemplateService(cat),
		Defaults:  domain.DefaultGlobalParams(),
		ExportDir: t.TempDir(),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, "century %v\n%s", args, out)
	return out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScheduleNew_UsesFlagsAndDefaults(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "schedule", "new", "Lu_AFGO", "--start-year", "1960", "--site-file", "afgo.100")
	assert.Contains(t, out, "Created schedule Lu_AFGO (1960-2025)")

	s, err := app.Schedules.Get(context.Background(), "Lu_AFGO")
	require.NoError(t, err)
	assert.Equal(t, 1960, s.Params.StartYear)
	assert.Equal(t, "afgo.100", s.Params.SiteFile)
	assert.Equal(t, domain.DefaultInitialTree, s.Params.InitialTree)
}

func TestScheduleList_Empty(t *testing.T) {
	app := testApp(t)
	out := mustExecute(t, app, "schedule", "list")
	assert.Contains(t, out, "No schedules found.")

	mustExecute(t, app, "schedule", "new", "alpha")
	out = mustExecute(t, app, "schedule", "list")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "1958-2025")
}

func TestEndToEnd_SeriesGeneratePreviewExport(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "schedule", "new", "site")

	csv := writeFile(t, "site.csv", "Ano,Classe_MapBiomas\n"+
		"1958,Formação Savânica\n1959,Formação Savânica\n"+
		"1960,Pastagem\n1961,Pastagem\n1962,Pastagem\n")
	out := mustExecute(t, app, "series", "import", "site", csv)
	assert.Contains(t, out, "Imported 5 years (1958-1962) into site")

	out = mustExecute(t, app, "series", "show", "site")
	assert.Contains(t, out, "SAVANA")
	assert.Contains(t, out, "PASTAGEM")

	out = mustExecute(t, app, "timeline", "generate", "site", "--weather", "M")
	assert.Contains(t, out, "3 block(s) generated")
	assert.Contains(t, out, "deforestation-pasture")

	preview := mustExecute(t, app, "schedule", "preview", "site")
	assert.Contains(t, preview, "1958          Starting year")
	assert.Contains(t, preview, "Formação Savânica -> Pastagem (1960 - 1961)")
	assert.Contains(t, preview, "M             Weather choice")

	out = mustExecute(t, app, "schedule", "export", "site")
	path := filepath.Join(app.ExportDir, "site.SCH")
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, preview, string(data))
}

func TestTimelineGenerate_StrictWarningFails(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "schedule", "new", "gap")
	csv := writeFile(t, "gap.csv", "Ano,Classe_MapBiomas\n1970,Pastagem\n")
	mustExecute(t, app, "series", "import", "gap", csv)

	out, err := executeCmd(t, app, "timeline", "generate", "gap", "--strict")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrStrictWarning)
	assert.Contains(t, out, "WARNING")

	out = mustExecute(t, app, "timeline", "generate", "gap")
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "1 block(s) generated")
}

func TestTimelinePresetsHeaderEventClose(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "schedule", "new", "manual")

	out := mustExecute(t, app, "timeline", "savanna", "manual", "--out-year", "1958", "--last-year", "1984")
	assert.Contains(t, out, "Appended block 1: Padrão Savana (1958-1984)")
	out = mustExecute(t, app, "timeline", "deforest", "manual", "--out-year", "1985", "--last-year", "1986", "--weather", "s")
	assert.Contains(t, out, "Appended block 2")

	out = mustExecute(t, app, "timeline", "header", "manual", "--last-year", "1990")
	assert.Contains(t, out, "Appended header 3 (1987-1990)")

	mustExecute(t, app, "timeline", "event", "manual", "--type", "crop", "--month", "10", "--code", "SJ")
	mustExecute(t, app, "timeline", "event", "manual", "--type", "PLTM", "--month", "10")
	mustExecute(t, app, "timeline", "close", "manual")

	s, err := app.Schedules.Get(context.Background(), "manual")
	require.NoError(t, err)
	kinds := make([]domain.EntryKind, 0, s.Timeline.Len())
	for _, e := range s.Timeline.Entries() {
		kinds = append(kinds, e.Kind())
	}
	assert.Equal(t, []domain.EntryKind{
		domain.EntryBlock, domain.EntryTerminator,
		domain.EntryBlock, domain.EntryTerminator,
		domain.EntryHeader, domain.EntryEvent, domain.EntryEvent, domain.EntryTerminator,
	}, kinds)

	out = mustExecute(t, app, "schedule", "show", "manual")
	assert.Contains(t, out, "Manual (1987-1990)")
	assert.Contains(t, out, "Y1 M10 CROP SJ")
}

func TestTimelineEvent_RequiresCode(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "schedule", "new", "ev")

	_, err := executeCmd(t, app, "timeline", "event", "ev", "--type", "CROP", "--month", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a specific code")
}

func TestTimelineHeader_InteractiveNeedsTerminal(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "schedule", "new", "tty")

	_, err := executeCmd(t, app, "timeline", "header", "tty", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a terminal")
}

func TestTimelineRemoveMoveClear(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "schedule", "new", "edit")
	mustExecute(t, app, "timeline", "header", "edit", "--out-year", "2000")
	mustExecute(t, app, "timeline", "close", "edit")

	out := mustExecute(t, app, "timeline", "move", "edit", "1", "0")
	assert.Contains(t, out, "Moved entry 1 to 0")

	out = mustExecute(t, app, "timeline", "remove", "edit", "0")
	assert.Contains(t, out, "Removed terminator at position 0")

	_, err := executeCmd(t, app, "timeline", "remove", "edit", "-3")
	assert.Error(t, err)
	_, err = executeCmd(t, app, "timeline", "remove", "edit", "9")
	assert.Error(t, err)

	mustExecute(t, app, "timeline", "clear", "edit")
	out = mustExecute(t, app, "schedule", "show", "edit")
	assert.Contains(t, out, "empty timeline")
}

func TestScheduleDumpImportDelete(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "schedule", "new", "orig")
	mustExecute(t, app, "timeline", "savanna", "orig", "--out-year", "1958", "--last-year", "1984")

	dump := filepath.Join(t.TempDir(), "orig.json")
	mustExecute(t, app, "schedule", "dump", "orig", "--out", dump)

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	renamed := bytes.Replace(data, []byte(`"orig"`), []byte(`"copy"`), 1)
	out := mustExecute(t, app, "schedule", "import", writeFile(t, "copy.json", string(renamed)))
	assert.Contains(t, out, "Imported schedule copy (2 entries)")

	mustExecute(t, app, "schedule", "delete", "orig")
	_, err = executeCmd(t, app, "schedule", "show", "orig")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTemplateAndCatalogCommands(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "template", "list")
	for _, id := range []string{tmpl.SavannaStandard, tmpl.DeforestationPasture, tmpl.PastureMaintenance, tmpl.SoyRotation} {
		assert.Contains(t, out, id)
	}

	out = mustExecute(t, app, "template", "show", tmpl.SoyRotation)
	assert.Contains(t, out, "FRST")

	_, err := executeCmd(t, app, "template", "show", "nope")
	assert.ErrorIs(t, err, tmpl.ErrTemplateNotFound)

	out = mustExecute(t, app, "weather")
	assert.Contains(t, out, "C")

	out = mustExecute(t, app, "events")
	assert.Contains(t, out, "TREM")
}

func TestWeatherFlag_RejectsUnknown(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "schedule", "new", "w")
	_, err := executeCmd(t, app, "timeline", "generate", "w", "--weather", "Q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown weather mode")
}
