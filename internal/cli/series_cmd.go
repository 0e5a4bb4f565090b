package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/century/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSeriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Manage a schedule's land-cover series",
	}
	cmd.AddCommand(newSeriesImportCmd(app), newSeriesShowCmd(app))
	return cmd
}

func newSeriesImportCmd(app *App) *cobra.Command {
	var point string

	cmd := &cobra.Command{
		Use:   "import NAME FILE",
		Short: "Load a land-cover CSV (Ano, Classe_MapBiomas[, Codigo_MapBiomas, ponto])",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := app.Series.Import(context.Background(), args[0], args[1], point)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d years (%d-%d) into %s\n",
				len(series), series[0].Year, series[len(series)-1].Year, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&point, "point", "", "Keep only rows whose ponto column matches")

	return cmd
}

func newSeriesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show the stored series with the regime of each year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := app.Series.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			if len(series) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No land-cover series for %s.\n", args[0])
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSeries(series))
			return nil
		},
	}
}
