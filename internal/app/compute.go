package app

import (
	"context"
	"encoding/json"
	"fmt"

	"dipgauge/internal/gauge"
	"dipgauge/internal/tank"
)

// Result is the machine-readable form of a conversion.
type Result struct {
	Tank        tank.Type    `json:"tankType"`
	Raw         string       `json:"raw"`
	DepthCM     float64      `json:"depthCm"`
	Volume      float64      `json:"volume"`
	Liters      int          `json:"liters"`
	Capacity    float64      `json:"capacity"`
	FillPercent int          `json:"fillPercent"`
	Status      gauge.Status `json:"status"`
}

// Convert runs a reading through the dip chart of spec.
func Convert(raw string, spec tank.Spec) Result {
	reading := gauge.Default.Measure(raw, spec.Table)
	liters := reading.Liters()
	return Result{
		Tank:        spec.Type,
		Raw:         raw,
		DepthCM:     reading.Depth,
		Volume:      reading.Volume,
		Liters:      liters,
		Capacity:    spec.Capacity,
		FillPercent: gauge.FillPercent(liters, spec.Capacity),
		Status:      reading.Status,
	}
}

// Compute converts a single reading and prints it.
func (a *App) Compute(ctx context.Context, opts ComputeOptions) error {
	spec, err := a.resolveTank(opts.Tank)
	if err != nil {
		return err
	}

	res := Convert(opts.Raw, spec)
	a.Logger.Debug().
		Str("tank", string(spec.Type)).
		Str("raw", opts.Raw).
		Int("liters", res.Liters).
		Str("status", string(res.Status)).
		Msg("reading converted")

	switch {
	case opts.JSON:
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	case opts.Copy:
		_, err := fmt.Fprintln(a.Out, gauge.ClipboardText(res.Liters))
		return err
	}

	a.printResult(spec, res)
	return nil
}

func (a *App) printResult(spec tank.Spec, res Result) {
	fmt.Fprintf(a.Out, "%s (%s)\n", spec.Label, spec.Type)
	fmt.Fprintf(a.Out, "Volume: %s\n", a.highlight(a.formatLiters(res.Liters)))
	fmt.Fprintf(a.Out, "Fill:   %d%% of %s\n", res.FillPercent, a.formatCapacity(spec.Capacity))
	if note := statusNote(res.Status); note != "" {
		fmt.Fprintf(a.Out, "Note:   %s\n", note)
	}
}

func statusNote(s gauge.Status) string {
	switch s {
	case gauge.StatusInvalid:
		return "reading is not a non-negative number of centimeters"
	case gauge.StatusClamped:
		return fmt.Sprintf("reading is beyond the dipstick, read as %d cm", gauge.MaxDepthCM)
	case gauge.StatusUncalibrated:
		return "no calibration row for this depth"
	case gauge.StatusBoundary:
		return "top of the chart reached, fraction ignored"
	}
	return ""
}
