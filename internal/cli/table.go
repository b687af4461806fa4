package cli

import (
	"github.com/spf13/cobra"

	"dipgauge/internal/app"
)

var tableTank string

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the dip chart of a tank",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().ShowTable(cmd.Context(), app.TableOptions{Tank: tableTank})
	},
}

var tanksCmd = &cobra.Command{
	Use:   "tanks",
	Short: "List known tank types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().ListTanks(cmd.Context())
	},
}

func init() {
	tableCmd.Flags().StringVar(&tableTank, "tank", "", "Tank type (defaults to config)")
}
