package cli

import (
	"github.com/spf13/cobra"

	"dipgauge/internal/app"
)

var (
	computeTank string
	computeCopy bool
	computeJSON bool
)

var computeCmd = &cobra.Command{
	Use:     "compute <cm>",
	Aliases: []string{"calc"},
	Short:   "Convert one dipstick reading into liters",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ComputeOptions{
			Raw:  args[0],
			Tank: computeTank,
			Copy: computeCopy,
			JSON: computeJSON,
		}
		return getApp().Compute(cmd.Context(), opts)
	},
}

func init() {
	computeCmd.Flags().StringVar(&computeTank, "tank", "", "Tank type (30000L, 15000L; defaults to config)")
	computeCmd.Flags().BoolVar(&computeCopy, "copy", false, `Print only "<liters> L" for pasting`)
	computeCmd.Flags().BoolVar(&computeJSON, "json", false, "Print the result as JSON")
	computeCmd.MarkFlagsMutuallyExclusive("copy", "json")
}
