package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"moap_dashboard/internal/adapter/http/dto/response"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard indicators",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Dashboard.Summary(cmd.Context())
			if err != nil {
				return fmt.Errorf("computing summary: %w", err)
			}
			data, err := json.MarshalIndent(response.FromSummary(s), "", "  ")
			if err != nil {
				return err
			}
			return writeOutput(cmd, "", append(data, '\n'))
		},
	}
}
