package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Work with budgets",
	}

	cmd.AddCommand(newBudgetExportCmd(app))
	return cmd
}

func newBudgetExportCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a budget as a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := app.Budgets.Export(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("exporting budget %s: %w", args[0], err)
			}
			path := out
			if path == "" {
				path = exp.FileName
			}
			if err := writeOutput(cmd, path, exp.Content); err != nil {
				return err
			}
			if path != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default derived from the budget name, - for stdout)")
	return cmd
}
