package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/century/internal/cli/formatter"
	"github.com/alexanderramin/century/internal/service"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect the event-template catalog",
	}
	cmd.AddCommand(newTemplateListCmd(app), newTemplateShowCmd(app))
	return cmd
}

func templateRow(info service.TemplateInfo) formatter.TemplateRow {
	return formatter.TemplateRow{Template: info.Template, Role: info.Role}
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := app.Templates.List(context.Background())
			rows := make([]formatter.TemplateRow, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, templateRow(info))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplateList(rows))
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a template's events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := app.Templates.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplateShow(templateRow(*info)))
			return nil
		},
	}
}
