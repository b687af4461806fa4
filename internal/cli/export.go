package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dipgauge/internal/app"
)

var (
	exportTanks   []string
	exportPNGPath string
	exportCSVPath string
	exportStep    float64
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export volume curves as CSV and/or PNG chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportStep < 0 {
			return fmt.Errorf("--step must not be negative")
		}

		opts := app.ExportOptions{
			Tanks:   exportTanks,
			PNGPath: exportPNGPath,
			CSVPath: exportCSVPath,
			StepCM:  exportStep,
		}

		return getApp().Export(cmd.Context(), opts)
	},
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportTanks, "tank", nil, "Tank types to export (repeatable; defaults to config)")
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write PNG chart")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write CSV data")
	exportCmd.Flags().Float64Var(&exportStep, "step", 0, "Sampling step in cm (defaults to config)")
}
