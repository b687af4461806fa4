package tank

import "fmt"

const (
	// BaseStep is the depth spacing between calibration rows, in centimeters.
	BaseStep = 10
	// Cols is the number of unit offsets per row.
	Cols = 10
	// Rows covers base depths 0, 10, ..., MaxBase.
	Rows = 26
	// MaxBase is the deepest tabulated base depth.
	MaxBase = (Rows - 1) * BaseStep
)

// Row holds the volumes at base+0 .. base+9 cm.
type Row [Cols]float64

// Table is an immutable dip chart mapping depth to volume in liters.
type Table struct {
	rows [Rows]Row
}

// NewTable copies rows into a new Table.
func NewTable(rows [Rows]Row) *Table {
	return &Table{rows: rows}
}

// Row returns the calibration row for base. ok is false when base is not a
// multiple of BaseStep inside 0..MaxBase.
func (t *Table) Row(base int) (Row, bool) {
	if t == nil || base < 0 || base > MaxBase || base%BaseStep != 0 {
		return Row{}, false
	}
	return t.rows[base/BaseStep], true
}

// At returns the tabulated volume at an integer depth.
func (t *Table) At(depth int) (float64, bool) {
	if depth < 0 {
		return 0, false
	}
	row, ok := t.Row(depth - depth%BaseStep)
	if !ok {
		return 0, false
	}
	return row[depth%BaseStep], true
}

// Max returns the largest tabulated volume.
func (t *Table) Max() float64 {
	return t.rows[Rows-1][Cols-1]
}

// Validate checks that volumes are non-negative and never shrink as depth grows.
func (t *Table) Validate() error {
	prev := 0.0
	for i, row := range t.rows {
		for u, v := range row {
			depth := i*BaseStep + u
			if v < 0 {
				return fmt.Errorf("negative volume %.0f at %d cm", v, depth)
			}
			if v < prev {
				return fmt.Errorf("volume decreases at %d cm: %.0f < %.0f", depth, v, prev)
			}
			prev = v
		}
	}
	return nil
}
