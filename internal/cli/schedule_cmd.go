package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/century/internal/cli/formatter"
	"github.com/alexanderramin/century/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage site schedules",
	}

	cmd.AddCommand(
		newScheduleNewCmd(app),
		newScheduleListCmd(app),
		newScheduleShowCmd(app),
		newScheduleDeleteCmd(app),
		newSchedulePreviewCmd(app),
		newScheduleExportCmd(app),
		newScheduleImportCmd(app),
		newScheduleDumpCmd(app),
	)

	return cmd
}

func newScheduleNewCmd(app *App) *cobra.Command {
	p := app.Defaults

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Create a schedule for a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Schedule{Name: args[0], Params: p}
			if err := app.Schedules.Create(context.Background(), s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created schedule %s (%d-%d)\n", s.Name, p.StartYear, p.LastYear)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.StartYear, "start-year", p.StartYear, "Simulation starting year")
	cmd.Flags().IntVar(&p.LastYear, "end-year", p.LastYear, "Simulation last year")
	cmd.Flags().StringVar(&p.SiteFile, "site-file", p.SiteFile, "Site parameter file name")
	cmd.Flags().StringVar(&p.InitialCrop, "crop", p.InitialCrop, "Initial crop")
	cmd.Flags().StringVar(&p.InitialTree, "tree", p.InitialTree, "Initial tree")

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := app.Schedules.List(context.Background())
			if err != nil {
				return err
			}
			if len(schedules) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No schedules found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScheduleList(schedules))
			return nil
		},
	}
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show global parameters and timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Schedules.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScheduleShow(s))
			return nil
		},
	}
}

func newScheduleDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a schedule with its timeline and series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedules.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted schedule %s\n", args[0])
			return nil
		},
	}
}

func newSchedulePreviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "preview NAME",
		Short: "Print the schedule file without writing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Schedules.Render(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), doc)
			return nil
		},
	}
}

func newScheduleExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export NAME",
		Short: "Write NAME.SCH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := domain.Coalesce(dir, app.ExportDir, ".")
			path, err := app.Schedules.Export(context.Background(), args[0], out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "out", "", "Output directory (default from CENTURY_EXPORT_DIR)")

	return cmd
}

func newScheduleImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create a schedule from a JSON timeline file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Schedules.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported schedule %s (%d entries)\n", s.Name, s.Timeline.Len())
			return nil
		},
	}
}

func newScheduleDumpCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "dump NAME",
		Short: "Write a schedule as a JSON timeline file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Schedules.Dump(context.Background(), args[0])
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")

	return cmd
}
