package app

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"dipgauge/internal/tank"
)

// ShowTable prints the dip chart of a tank as base rows by unit columns.
func (a *App) ShowTable(ctx context.Context, opts TableOptions) error {
	spec, err := a.resolveTank(opts.Tank)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "%s (%s), capacity %s\n\n", spec.Label, spec.Type, a.formatCapacity(spec.Capacity))

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', tabwriter.AlignRight)
	header := []string{"cm"}
	for u := 0; u < tank.Cols; u++ {
		header = append(header, fmt.Sprintf("+%d", u))
	}
	fmt.Fprintln(writer, strings.Join(header, "\t")+"\t")

	for base := 0; base <= tank.MaxBase; base += tank.BaseStep {
		row, _ := spec.Table.Row(base)
		cells := []string{fmt.Sprintf("%d", base)}
		for _, v := range row {
			cells = append(cells, a.printer.Sprintf("%d", int(v)))
		}
		fmt.Fprintln(writer, strings.Join(cells, "\t")+"\t")
	}

	return writer.Flush()
}

// ListTanks prints the registered tank types.
func (a *App) ListTanks(ctx context.Context) error {
	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Type\tLabel\tCapacity\tDefault")

	def := a.Config.DefaultTank()
	for _, t := range tank.Types() {
		spec, _ := tank.Lookup(t)
		marker := ""
		if t == def {
			marker = "*"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", spec.Type, spec.Label, a.formatCapacity(spec.Capacity), marker)
	}

	return writer.Flush()
}
