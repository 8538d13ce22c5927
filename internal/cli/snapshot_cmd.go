package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export, import or reset the persisted state",
	}

	cmd.AddCommand(
		newSnapshotExportCmd(app),
		newSnapshotImportCmd(app),
		newSnapshotResetCmd(app),
	)
	return cmd
}

func newSnapshotExportCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current state as a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Snapshot.Export(cmd.Context())
			if err != nil {
				return fmt.Errorf("exporting snapshot: %w", err)
			}
			return writeOutput(cmd, out, data)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newSnapshotImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the collections present in a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if err := app.Snapshot.Import(cmd.Context(), data); err != nil {
				return fmt.Errorf("importing snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
			return nil
		},
	}
}

func newSnapshotResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Snapshot.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("resetting snapshot: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "State reset to the built-in data set")
			return nil
		},
	}
}
