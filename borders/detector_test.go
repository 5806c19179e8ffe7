package borders

import (
	"math"
	"testing"

	"github.com/kmorwood/tagcheck/geom"
	"github.com/kmorwood/tagcheck/tree"
)

func horizontal(page int, y, x1, x2 float64) geom.Line {
	return geom.Line{
		PageIndex: page,
		Start:     geom.Point{X: x1, Y: y},
		End:       geom.Point{X: x2, Y: y},
	}
}

func vertical(page int, x, y1, y2 float64) geom.Line {
	return geom.Line{
		PageIndex: page,
		Start:     geom.Point{X: x, Y: y1},
		End:       geom.Point{X: x, Y: y2},
	}
}

// gridLines builds a full grid on page 0: vertical lines at xs, horizontal
// lines at ys, each spanning the opposite axis range.
func gridLines(xs, ys []float64) []geom.Line {
	var lines []geom.Line
	for _, x := range xs {
		lines = append(lines, vertical(0, x, ys[0], ys[len(ys)-1]))
	}
	for _, y := range ys {
		lines = append(lines, horizontal(0, y, xs[0], xs[len(xs)-1]))
	}
	return lines
}

func approxEqual(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestDetector_FullGrid(t *testing.T) {
	xs := []float64{72, 200, 328}
	ys := []float64{500, 520, 540, 560}

	border, ok := NewDetector().Detect(gridLines(xs, ys))
	if !ok {
		t.Fatal("expected a border")
	}
	if !approxEqual(border.XLines, xs) {
		t.Errorf("XLines = %v, want %v", border.XLines, xs)
	}
	if !approxEqual(border.YLines, ys) {
		t.Errorf("YLines = %v, want %v", border.YLines, ys)
	}
	if border.ColumnCount() != 2 {
		t.Errorf("ColumnCount = %d, want 2", border.ColumnCount())
	}
	if border.RowCount() != 3 {
		t.Errorf("RowCount = %d, want 3", border.RowCount())
	}
}

func TestDetector_MergesNearbySegments(t *testing.T) {
	// Two horizontal strokes drawn 2pt apart merge into one grid line at
	// their mean; the pair at 540 stays separate.
	lines := []geom.Line{
		horizontal(0, 500, 72, 328),
		horizontal(0, 502, 72, 328),
		horizontal(0, 540, 72, 328),
		vertical(0, 72, 500, 540),
		vertical(0, 328, 500, 540),
	}

	border, ok := NewDetector().Detect(lines)
	if !ok {
		t.Fatal("expected a border")
	}
	if !approxEqual(border.YLines, []float64{501, 540}) {
		t.Errorf("YLines = %v, want [501 540]", border.YLines)
	}
}

func TestDetector_ClusterDoesNotDrift(t *testing.T) {
	// A chain of segments each within tolerance of its neighbor must not
	// collapse into one line once the chain spans more than twice the
	// tolerance.
	lines := []geom.Line{
		horizontal(0, 500, 72, 328),
		horizontal(0, 503, 72, 328),
		horizontal(0, 506, 72, 328),
		horizontal(0, 509, 72, 328),
		vertical(0, 72, 490, 520),
		vertical(0, 328, 490, 520),
	}

	border, ok := NewDetector().Detect(lines)
	if !ok {
		t.Fatal("expected a border")
	}
	if len(border.YLines) < 2 {
		t.Errorf("chained segments collapsed into %v", border.YLines)
	}
}

func TestDetector_FiltersShortSegments(t *testing.T) {
	lines := gridLines([]float64{72, 328}, []float64{500, 540})
	// Decorative tick well under MinLineLength.
	lines = append(lines, horizontal(0, 520, 100, 104))

	border, ok := NewDetector().Detect(lines)
	if !ok {
		t.Fatal("expected a border")
	}
	if !approxEqual(border.YLines, []float64{500, 540}) {
		t.Errorf("short segment not filtered: YLines = %v", border.YLines)
	}
}

func TestDetector_IgnoresDiagonals(t *testing.T) {
	lines := gridLines([]float64{72, 328}, []float64{500, 540})
	lines = append(lines, geom.Line{
		PageIndex: 0,
		Start:     geom.Point{X: 72, Y: 500},
		End:       geom.Point{X: 328, Y: 540},
	})

	border, ok := NewDetector().Detect(lines)
	if !ok {
		t.Fatal("expected a border")
	}
	if len(border.XLines) != 2 || len(border.YLines) != 2 {
		t.Errorf("diagonal leaked into grid: %v / %v", border.XLines, border.YLines)
	}
}

func TestDetector_IgnoresOtherPages(t *testing.T) {
	lines := gridLines([]float64{72, 328}, []float64{500, 540})
	lines = append(lines, horizontal(3, 520, 72, 328))

	border, ok := NewDetector().Detect(lines)
	if !ok {
		t.Fatal("expected a border")
	}
	if border.PageIndex != 0 {
		t.Errorf("PageIndex = %d, want 0", border.PageIndex)
	}
	if len(border.YLines) != 2 {
		t.Errorf("segment from page 3 leaked in: %v", border.YLines)
	}
}

func TestDetector_TooFewLines(t *testing.T) {
	cases := []struct {
		name  string
		lines []geom.Line
	}{
		{"empty", nil},
		{"horizontals only", []geom.Line{
			horizontal(0, 500, 72, 328),
			horizontal(0, 540, 72, 328),
		}},
		{"single vertical", []geom.Line{
			horizontal(0, 500, 72, 328),
			horizontal(0, 540, 72, 328),
			vertical(0, 72, 500, 540),
		}},
	}

	d := NewDetector()
	for _, tc := range cases {
		if _, ok := d.Detect(tc.lines); ok {
			t.Errorf("%s: expected no border", tc.name)
		}
	}
}

func TestDetector_AttachToTable(t *testing.T) {
	table := tree.NewTable("t")
	d := NewDetector()

	if !d.AttachToTable(table, gridLines([]float64{72, 200, 328}, []float64{500, 540})) {
		t.Fatal("expected border to attach")
	}
	xs, ys, ok := table.VisualBorder()
	if !ok {
		t.Fatal("table has no visual border after attach")
	}
	if len(xs) != 3 || len(ys) != 2 {
		t.Errorf("attached border %v / %v", xs, ys)
	}

	fresh := tree.NewTable("u")
	if d.AttachToTable(fresh, nil) {
		t.Error("no segments must not attach a border")
	}
	if _, _, ok := fresh.VisualBorder(); ok {
		t.Error("failed detection must leave the table untouched")
	}
}

func TestSnapToGrid(t *testing.T) {
	positions := []float64{72, 200, 328}

	cases := []struct {
		value     float64
		tolerance float64
		want      int
	}{
		{72, 3, 0},
		{201.5, 3, 1},
		{330, 3, 2},
		{150, 3, -1},
		{150, 60, 1},
	}
	for _, tc := range cases {
		if got := SnapToGrid(tc.value, positions, tc.tolerance); got != tc.want {
			t.Errorf("SnapToGrid(%v, tol %v) = %d, want %d", tc.value, tc.tolerance, got, tc.want)
		}
	}
}
