package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/century/internal/cli/formatter"
	"github.com/alexanderramin/century/internal/domain"
	"github.com/alexanderramin/century/internal/scheduler"
	"github.com/alexanderramin/century/internal/service"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Edit a schedule's timeline",
	}

	cmd.AddCommand(
		newTimelineGenerateCmd(app),
		newTimelinePresetCmd("savanna", "Append the standard savanna block (block 1, 5-year cycle)",
			func(ctx context.Context, name string, req scheduler.PresetRequest) ([]domain.Entry, error) {
				return app.Timeline.AddSavanna(ctx, name, req)
			}),
		newTimelinePresetCmd("deforest", "Append the deforestation + pasture block (block 2, 2-year cycle)",
			func(ctx context.Context, name string, req scheduler.PresetRequest) ([]domain.Entry, error) {
				return app.Timeline.AddDeforestation(ctx, name, req)
			}),
		newTimelineHeaderCmd(app),
		newTimelineEventCmd(app),
		newTimelineCloseCmd(app),
		newTimelineRemoveCmd(app),
		newTimelineMoveCmd(app),
		newTimelineClearCmd(app),
	)

	return cmd
}

func newTimelineGenerateCmd(app *App) *cobra.Command {
	var req service.GenerateRequest

	cmd := &cobra.Command{
		Use:   "generate NAME",
		Short: "Generate blocks from the stored land-cover series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Timeline.Generate(context.Background(), args[0], req)
			if res.Status != "" {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResult(res))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&req.StartBlock, "start-block", "", "First block number (default: next after the timeline)")
	cmd.Flags().StringVar(&req.YearLimit, "year-limit", "", "Last year to cover (default: schedule last year)")
	addWeatherFlag(cmd.Flags(), &req.Weather, domain.WeatherContinue)
	cmd.Flags().BoolVar(&req.Strict, "strict", false, "Treat warnings as errors and append nothing")

	return cmd
}

type presetFunc func(ctx context.Context, name string, req scheduler.PresetRequest) ([]domain.Entry, error)

func newTimelinePresetCmd(use, short string, add presetFunc) *cobra.Command {
	var req scheduler.PresetRequest

	cmd := &cobra.Command{
		Use:   use + " NAME",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := add(context.Background(), args[0], req)
			if err != nil {
				return err
			}
			if b, ok := entries[0].(*domain.Block); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Appended block %d: %s\n", b.Number, b.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&req.OutputStartYear, "out-year", 0, "Output starting year")
	cmd.Flags().IntVar(&req.LastYear, "last-year", 0, "Last year of the block")
	addWeatherFlag(cmd.Flags(), &req.Weather, domain.WeatherMean)
	_ = cmd.MarkFlagRequired("out-year")
	_ = cmd.MarkFlagRequired("last-year")

	return cmd
}

func newTimelineHeaderCmd(app *App) *cobra.Command {
	var h domain.BlockHeader
	var interactive bool

	cmd := &cobra.Command{
		Use:   "header NAME",
		Short: "Append a bare block header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				if err := runHeaderForm(&h); err != nil {
					return err
				}
			}
			if err := app.Timeline.AddHeader(context.Background(), args[0], &h); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Appended header %d (%d-%d)\n", h.Number, h.OutputStartYear, h.LastYear)
			return nil
		},
	}

	cmd.Flags().IntVar(&h.Number, "num", 0, fmt.Sprintf("Block number (default %d)", scheduler.ManualHeaderNumber))
	cmd.Flags().IntVar(&h.LastYear, "last-year", 0, "Last year (default: output starting year)")
	cmd.Flags().IntVar(&h.Repeats, "repeats", 0, "Repeats # years (default 1)")
	cmd.Flags().IntVar(&h.OutputStartYear, "out-year", 0, "Output starting year (default: next available year)")
	cmd.Flags().IntVar(&h.OutputMonth, "month", 0, "Output month (default 1)")
	cmd.Flags().IntVar(&h.OutputInterval, "interval", 0, "Output interval (default 1)")
	cmd.Flags().StringVar(&h.Description, "description", "", "Description shown after the block number")
	addWeatherFlag(cmd.Flags(), &h.Weather, domain.WeatherMean)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the header in a form")

	return cmd
}

func newTimelineEventCmd(app *App) *cobra.Command {
	var ev domain.Event
	var eventType string

	cmd := &cobra.Command{
		Use:   "event NAME",
		Short: "Append a single event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev.Type = domain.EventType(strings.ToUpper(strings.TrimSpace(eventType)))
			if err := app.Timeline.AddEvent(context.Background(), args[0], &ev); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Appended event %s\n", formatter.FormatEvent(&ev))
			return nil
		},
	}

	cmd.Flags().StringVar(&eventType, "type", "", "Event keyword (see `century events`)")
	cmd.Flags().IntVar(&ev.Month, "month", 0, "Month 1-12")
	cmd.Flags().IntVar(&ev.Year, "year", 1, "Year within the block cycle")
	cmd.Flags().StringVar(&ev.Code, "code", "", "Specific code")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func newTimelineCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close NAME",
		Short: "Append a block terminator (-999 -999 X)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Timeline.AddTerminator(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Appended terminator")
			return nil
		},
	}
}

func newTimelineRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME POS",
		Short: "Remove the entry at POS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			removed, err := app.Timeline.Remove(context.Background(), args[0], pos)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s at position %d\n", removed.Kind(), pos)
			return nil
		},
	}
}

func newTimelineMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move NAME FROM TO",
		Short: "Move the entry at FROM to position TO",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[2])
			if err != nil {
				return err
			}
			if err := app.Timeline.Move(context.Background(), args[0], from, to); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved entry %d to %d\n", from, to)
			return nil
		},
	}
}

func newTimelineClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear NAME",
		Short: "Remove every timeline entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Timeline.Clear(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared timeline of %s\n", args[0])
			return nil
		},
	}
}
