package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	chart "github.com/wcharczuk/go-chart/v2"

	"dipgauge/internal/gauge"
	"dipgauge/internal/ledger"
	"dipgauge/internal/tank"
)

// curve is a sampled depth/volume series for one tank.
type curve struct {
	spec    tank.Spec
	depths  []float64
	volumes []float64
}

// Export samples the volume curve of one or more tanks and writes CSV and/or PNG.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	if opts.CSVPath == "" && opts.PNGPath == "" {
		return errors.New("at least one of --csv or --png must be provided")
	}

	specs, err := a.resolveTanks(opts.Tanks)
	if err != nil {
		return err
	}

	step := a.Config.ResolveStep(opts.StepCM)
	curves := make([]curve, 0, len(specs))
	for _, spec := range specs {
		curves = append(curves, sampleCurve(spec, step))
	}
	a.Logger.Info().Int("tanks", len(curves)).Int("points", len(curves[0].depths)).Float64("step_cm", step).Msg("exporting volume curves")

	if opts.CSVPath != "" {
		if err := writeCurvesCSV(opts.CSVPath, curves); err != nil {
			return err
		}
	}

	if opts.PNGPath != "" {
		if err := writeCurvesPNG(opts.PNGPath, curves, a.Config.Export.Width, a.Config.Export.Height); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) resolveTanks(names []string) ([]tank.Spec, error) {
	if len(names) == 0 {
		spec, err := a.resolveTank("")
		if err != nil {
			return nil, err
		}
		return []tank.Spec{spec}, nil
	}

	specs := make([]tank.Spec, 0, len(names))
	seen := make(map[tank.Type]bool, len(names))
	for _, name := range names {
		spec, err := a.resolveTank(name)
		if err != nil {
			return nil, err
		}
		if seen[spec.Type] {
			continue
		}
		seen[spec.Type] = true
		specs = append(specs, spec)
	}
	return specs, nil
}

// sampleCurve walks 0..MaxDepthCM in step increments. Depths are built from
// the step count in decimal so long walks do not drift off the grid.
func sampleCurve(spec tank.Spec, step float64) curve {
	stepDec := decimal.NewFromFloat(step)
	limit := decimal.NewFromInt(gauge.MaxDepthCM)

	c := curve{spec: spec}
	for i := int64(0); ; i++ {
		depth := stepDec.Mul(decimal.NewFromInt(i))
		if depth.GreaterThan(limit) {
			break
		}
		d := depth.InexactFloat64()
		c.depths = append(c.depths, d)
		c.volumes = append(c.volumes, gauge.VolumeAt(d, spec.Table))
	}
	return c
}

func writeCurvesCSV(path string, curves []curve) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"depth_cm"}
	for _, c := range curves {
		header = append(header, fmt.Sprintf("volume_l_%s", c.spec.Type))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, depth := range curves[0].depths {
		record := []string{formatDecimal(decimal.NewFromFloat(depth), 2)}
		for _, c := range curves {
			record = append(record, formatDecimal(decimal.NewFromFloat(c.volumes[i]), 2))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeCurvesPNG(path string, curves []curve, width, height int) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	series := make([]chart.Series, 0, len(curves))
	for _, c := range curves {
		series = append(series, chart.ContinuousSeries{
			Name:    c.spec.Label,
			XValues: c.depths,
			YValues: c.volumes,
		})
	}

	litersFormatter := func(v interface{}) string {
		return chart.FloatValueFormatterWithFormat(v, "%.0f")
	}
	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:           "Depth (cm)",
			ValueFormatter: litersFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Volume (L)",
			ValueFormatter: litersFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func writeLedgerCSV(path string, records []ledger.MeasurementRecord) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"id", "created_at", "tank_type", "raw", "depth_cm", "liters"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		record := []string{
			rec.ID.String(),
			rec.CreatedAt.UTC().Format(time.RFC3339),
			string(rec.Tank),
			rec.Raw,
			strconv.FormatFloat(rec.DepthCM, 'f', -1, 64),
			strconv.Itoa(rec.Liters),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func formatDecimal(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}
