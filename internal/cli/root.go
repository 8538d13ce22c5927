// Package cli implements moapctl, the administration command line for the
// dashboard's persisted state.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"moap_dashboard/internal/usecase"
)

// App holds the use cases the commands drive.
type App struct {
	Snapshot  usecase.ISnapshotUseCase
	Dashboard usecase.IDashboardUseCase
	Budgets   usecase.IBudgetUseCase
}

// NewRootCmd creates the top-level "moapctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "moapctl",
		Short:         "Administer the MOAP dashboard state",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSnapshotCmd(app),
		newSummaryCmd(app),
		newBudgetCmd(app),
	)

	return root
}

// writeOutput writes data to path, or to the command output when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
