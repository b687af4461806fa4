// Package gauge converts dipstick readings into volumes using a tank's dip chart.
//
// Every function here is total: malformed or out-of-range readings degrade to a
// defined volume instead of an error. Measure additionally reports a Status for
// callers that want to tell the user why a reading produced the value it did.
package gauge

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"dipgauge/internal/tank"
)

// MaxDepthCM is the deepest reading the dipstick can physically show.
const MaxDepthCM = 254

// Status explains how a Reading's volume was obtained.
type Status string

const (
	StatusOK           Status = "ok"
	StatusInvalid      Status = "invalid"
	StatusClamped      Status = "clamped"
	StatusUncalibrated Status = "uncalibrated"
	StatusBoundary     Status = "boundary"
)

// Reading is the outcome of a single conversion.
type Reading struct {
	// Depth is the depth actually looked up, after clamping.
	Depth  float64
	Volume float64
	Status Status
}

// Liters is the volume rounded to the nearest whole liter.
func (r Reading) Liters() int {
	return Liters(r.Volume)
}

// Calculator carries the gauge limit used for clamping.
type Calculator struct {
	MaxDepth float64
}

// Default is the calculator for the station's dipstick.
var Default = Calculator{MaxDepth: MaxDepthCM}

// Volume converts a raw depth string into liters using the default gauge.
func Volume(raw string, t *tank.Table) float64 {
	return Default.Measure(raw, t).Volume
}

// VolumeAt converts a depth in centimeters into liters using the default gauge.
func VolumeAt(depth float64, t *tank.Table) float64 {
	return Default.MeasureAt(depth, t).Volume
}

// Measure parses raw and converts it.
func (c Calculator) Measure(raw string, t *tank.Table) Reading {
	depth, ok := ParseDepth(raw)
	if !ok {
		return Reading{Status: StatusInvalid}
	}
	return c.MeasureAt(depth, t)
}

// MeasureAt converts depth, interpolating linearly between tabulated centimeters.
func (c Calculator) MeasureAt(depth float64, t *tank.Table) Reading {
	if math.IsNaN(depth) || depth < 0 {
		return Reading{Status: StatusInvalid}
	}

	status := StatusOK
	limit := c.maxDepth()
	if depth > limit {
		depth = limit
		status = StatusClamped
	}

	d := decimal.NewFromFloat(depth)
	whole := d.Floor()
	cm := whole.IntPart()
	base := int(cm / tank.BaseStep * tank.BaseStep)
	unit := int(cm % tank.BaseStep)
	fraction := d.Sub(whole).InexactFloat64()

	row, ok := t.Row(base)
	if !ok {
		return Reading{Depth: depth, Status: StatusUncalibrated}
	}

	result := row[unit]
	if fraction <= 0 {
		return Reading{Depth: depth, Volume: result, Status: status}
	}

	var next float64
	switch {
	case unit < tank.Cols-1:
		next = row[unit+1]
	case base+tank.BaseStep <= tank.MaxBase:
		// The unit offset 9 interpolates towards the first cell of the next row.
		nextRow, ok := t.Row(base + tank.BaseStep)
		if !ok {
			return Reading{Depth: depth, Volume: result, Status: StatusBoundary}
		}
		next = nextRow[0]
	default:
		// No tabulated point above the last row; never extrapolate.
		return Reading{Depth: depth, Volume: result, Status: StatusBoundary}
	}

	return Reading{
		Depth:  depth,
		Volume: result + (next-result)*fraction,
		Status: status,
	}
}

func (c Calculator) maxDepth() float64 {
	if c.MaxDepth <= 0 {
		return MaxDepthCM
	}
	return c.MaxDepth
}

// Liters rounds a volume to the nearest whole liter, halves away from zero.
func Liters(volume float64) int {
	return int(math.Round(volume))
}

// FillPercent reports liters as a whole percentage of capacity, clamped to [0, 100].
func FillPercent(liters int, capacity float64) int {
	if capacity <= 0 {
		return 0
	}
	pct := math.Round(float64(liters) / capacity * 100)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return int(pct)
}

// ClipboardText renders a volume the way it is pasted into stock sheets.
func ClipboardText(liters int) string {
	return fmt.Sprintf("%d L", liters)
}
