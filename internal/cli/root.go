package cli

import (
	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Schedules service.ScheduleService
	Timeline  service.TimelineService
	Series    service.SeriesService
	Templates service.TemplateService

	// Defaults seeds the global parameters of new schedules.
	Defaults domain.GlobalParams
	// ExportDir is where export writes .SCH files unless --out is given.
	ExportDir string
	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "century" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "century",
		Short:         "Build CENTURY schedule (.SCH) files from land-cover series",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newScheduleCmd(app),
		newSeriesCmd(app),
		newTimelineCmd(app),
		newTemplateCmd(app),
		newWeatherCmd(),
		newEventsCmd(),
	)

	return root
}
