package cli

import (
	"fmt"

	"github.com/alexanderramin/century/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWeatherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weather",
		Short: "List weather choices",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeatherModes())
		},
	}
}

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List event keywords and their specific codes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEventCatalog())
		},
	}
}
