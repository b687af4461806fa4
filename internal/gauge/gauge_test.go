package gauge

import (
	"math"
	"strconv"
	"testing"

	"dipgauge/internal/tank"
)

func mustTable(t *testing.T, typ tank.Type) *tank.Table {
	t.Helper()
	spec, err := tank.Get(typ)
	if err != nil {
		t.Fatalf("lookup %s: %v", typ, err)
	}
	return spec.Table
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWholeCentimetersHitTheChart(t *testing.T) {
	for _, typ := range tank.Types() {
		table := mustTable(t, typ)
		for base := 0; base <= tank.MaxBase; base += tank.BaseStep {
			row, _ := table.Row(base)
			for u := 0; u < tank.Cols; u++ {
				depth := base + u
				if depth > MaxDepthCM {
					continue
				}
				if got := VolumeAt(float64(depth), table); got != row[u] {
					t.Fatalf("%s: VolumeAt(%d) = %v; want %v", typ, depth, got, row[u])
				}
				if got := Volume(strconv.Itoa(depth), table); got != row[u] {
					t.Fatalf("%s: Volume(%q) = %v; want %v", typ, strconv.Itoa(depth), got, row[u])
				}
			}
		}
	}
}

func TestInterpolationStaysBetweenNeighbours(t *testing.T) {
	table := mustTable(t, tank.Tank30K)
	for tenth := 0; tenth < MaxDepthCM*10; tenth++ {
		depth := float64(tenth) / 10
		lo, _ := table.At(int(depth))
		hi, _ := table.At(int(depth) + 1)
		got := VolumeAt(depth, table)
		if got < lo || got > hi {
			t.Fatalf("VolumeAt(%.1f) = %v outside [%v, %v]", depth, got, lo, hi)
		}
	}
}

func TestInterpolationWeights(t *testing.T) {
	table := mustTable(t, tank.Tank30K)
	row, _ := table.Row(150)

	want := row[6] + (row[7]-row[6])*0.5
	if got := Volume("156.5", table); !almostEqual(got, want) {
		t.Fatalf("Volume(156.5) = %v; want %v", got, want)
	}

	want = row[6] + (row[7]-row[6])*0.7
	if got := Volume("156.7", table); !almostEqual(got, want) {
		t.Fatalf("Volume(156.7) = %v; want %v", got, want)
	}
}

func TestUnitNineInterpolatesIntoNextRow(t *testing.T) {
	table := mustTable(t, tank.Tank15K)
	row, _ := table.Row(120)
	next, _ := table.Row(130)

	want := row[9] + (next[0]-row[9])*0.25
	if got := VolumeAt(129.25, table); !almostEqual(got, want) {
		t.Fatalf("VolumeAt(129.25) = %v; want %v", got, want)
	}
}

func TestInvalidReadingsAreZero(t *testing.T) {
	table := mustTable(t, tank.Tank30K)
	for _, raw := range []string{"", "abc", "-1", "-5", "-0.1", ".", "-", "cm 12", "-Infinity"} {
		r := Default.Measure(raw, table)
		if r.Volume != 0 {
			t.Fatalf("Volume(%q) = %v; want 0", raw, r.Volume)
		}
		if r.Status != StatusInvalid {
			t.Fatalf("Measure(%q).Status = %s; want %s", raw, r.Status, StatusInvalid)
		}
	}
	if got := VolumeAt(-5, table); got != 0 {
		t.Fatalf("VolumeAt(-5) = %v; want 0", got)
	}
	if got := VolumeAt(math.NaN(), table); got != 0 {
		t.Fatalf("VolumeAt(NaN) = %v; want 0", got)
	}
}

func TestClamp(t *testing.T) {
	for _, typ := range tank.Types() {
		table := mustTable(t, typ)
		top := Volume("254", table)
		for _, raw := range []string{"999", "254.0001", "1e9", "Infinity"} {
			r := Default.Measure(raw, table)
			if r.Volume != top {
				t.Fatalf("%s: Volume(%q) = %v; want %v", typ, raw, r.Volume, top)
			}
			if r.Status != StatusClamped || r.Depth != MaxDepthCM {
				t.Fatalf("%s: Measure(%q) = %+v; want clamped at %d", typ, raw, r, MaxDepthCM)
			}
		}
		if VolumeAt(math.Inf(1), table) != top {
			t.Fatalf("%s: +Inf should clamp", typ)
		}
	}
}

// The last row has nothing above it to interpolate towards. With the station
// charts the top row is flat, so 250.5 reads the same as 250.
func TestLastRowReading(t *testing.T) {
	for _, typ := range tank.Types() {
		table := mustTable(t, typ)
		if a, b := Volume("250.5", table), Volume("250", table); a != b {
			t.Fatalf("%s: Volume(250.5) = %v; Volume(250) = %v", typ, a, b)
		}
	}
}

// Past offset 9 of the last row there is no next point: the reading keeps the
// tabulated value instead of extrapolating. Only reachable with a longer gauge.
func TestNoInterpolationPastLastRow(t *testing.T) {
	var rows [tank.Rows]tank.Row
	for i := range rows {
		for u := range rows[i] {
			rows[i][u] = float64(i*tank.BaseStep + u)
		}
	}
	table := tank.NewTable(rows)
	long := Calculator{MaxDepth: 259.9}

	r := long.MeasureAt(259.5, table)
	if r.Volume != 259 || r.Status != StatusBoundary {
		t.Fatalf("MeasureAt(259.5) = %+v; want 259 boundary", r)
	}

	r = long.MeasureAt(249.5, table)
	if !almostEqual(r.Volume, 249.5) || r.Status != StatusOK {
		t.Fatalf("MeasureAt(249.5) = %+v; want 249.5 ok", r)
	}
}

func TestMissingRowIsZero(t *testing.T) {
	table := mustTable(t, tank.Tank30K)
	long := Calculator{MaxDepth: 400}

	r := long.MeasureAt(265, table)
	if r.Volume != 0 || r.Status != StatusUncalibrated {
		t.Fatalf("MeasureAt(265) = %+v; want 0 uncalibrated", r)
	}
	if got := Default.MeasureAt(10, nil); got.Volume != 0 || got.Status != StatusUncalibrated {
		t.Fatalf("nil table = %+v", got)
	}
}

func TestZeroMaxDepthUsesGaugeLimit(t *testing.T) {
	table := mustTable(t, tank.Tank30K)
	if got, want := (Calculator{}).MeasureAt(999, table), Default.MeasureAt(999, table); got != want {
		t.Fatalf("zero calculator = %+v; want %+v", got, want)
	}
}

func TestRoundingIsStable(t *testing.T) {
	table := mustTable(t, tank.Tank15K)
	for _, raw := range []string{"0.3", "33.3", "156.75", "201.49", "253.9"} {
		first := Liters(Volume(raw, table))
		for i := 0; i < 5; i++ {
			if got := Liters(Volume(raw, table)); got != first {
				t.Fatalf("Liters(Volume(%q)) changed: %d then %d", raw, first, got)
			}
		}
	}
}

func TestEndToEnd30K(t *testing.T) {
	table := mustTable(t, tank.Tank30K)
	tests := []struct {
		raw  string
		want int
	}{
		{"156", 20546},
		{"254", 31309},
		{"999", 31309},
		{"", 0},
		{"-1", 0},
		{"0", 0},
		{"1", 13},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			if got := Default.Measure(tc.raw, table).Liters(); got != tc.want {
				t.Fatalf("Liters(%q) = %d; want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestFillPercent(t *testing.T) {
	tests := []struct {
		name     string
		liters   int
		capacity float64
		want     int
	}{
		{"empty", 0, 31309, 0},
		{"full", 31309, 31309, 100},
		{"half", 15654, 31309, 50},
		{"over capacity", 40000, 31309, 100},
		{"negative", -10, 31309, 0},
		{"no capacity", 100, 0, 0},
		{"156 cm", 20546, 31309, 66},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FillPercent(tc.liters, tc.capacity); got != tc.want {
				t.Fatalf("FillPercent(%d, %v) = %d; want %d", tc.liters, tc.capacity, got, tc.want)
			}
		})
	}
}

func TestClipboardText(t *testing.T) {
	if got := ClipboardText(20546); got != "20546 L" {
		t.Fatalf("ClipboardText = %q", got)
	}
}
