package cli

import (
	"github.com/spf13/cobra"

	"dipgauge/internal/app"
)

var (
	sessionTank      string
	sessionExportCSV string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive measuring session",
	Long: `Start an interactive measuring session.

Readings typed at the prompt are converted as you go; "save" keeps the current
reading in a history of the most recent measurements. The history lives only
for the session unless --export-csv is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.SessionOptions{
			Tank:      sessionTank,
			ExportCSV: sessionExportCSV,
		}
		return getApp().RunSession(cmd.Context(), opts)
	},
}

func init() {
	sessionCmd.Flags().StringVar(&sessionTank, "tank", "", "Initial tank type (defaults to config)")
	sessionCmd.Flags().StringVar(&sessionExportCSV, "export-csv", "", "Write the history to this CSV file on exit")
}
