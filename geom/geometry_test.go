package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBox_Edges(t *testing.T) {
	b := NewBox(0, 10, 20, 100, 50)

	if b.Left() != 10 {
		t.Errorf("expected left 10, got %f", b.Left())
	}
	if b.Right() != 110 {
		t.Errorf("expected right 110, got %f", b.Right())
	}
	if b.Bottom() != 20 {
		t.Errorf("expected bottom 20, got %f", b.Bottom())
	}
	if b.Top() != 70 {
		t.Errorf("expected top 70, got %f", b.Top())
	}
	if c := b.Center(); c.X != 60 || c.Y != 45 {
		t.Errorf("expected center (60, 45), got (%f, %f)", c.X, c.Y)
	}
}

func TestBox_UnionSamePage(t *testing.T) {
	a := NewBox(0, 0, 0, 10, 10)
	b := NewBox(0, 20, 20, 10, 10)

	union, ok := a.Union(b)
	if !ok {
		t.Fatal("expected union on same page")
	}
	if union.X != 0 || union.Y != 0 || union.Width != 30 || union.Height != 30 {
		t.Errorf("unexpected union: %+v", union)
	}
	if union.PageIndex != 0 {
		t.Errorf("expected page 0, got %d", union.PageIndex)
	}
}

func TestBox_CrossPageSafety(t *testing.T) {
	a := NewBox(0, 0, 0, 10, 10)
	b := NewBox(1, 0, 0, 10, 10)

	if _, ok := a.Union(b); ok {
		t.Error("cross-page union should report no result")
	}
	if _, ok := a.Intersection(b); ok {
		t.Error("cross-page intersection should report no result")
	}
	if a.Contains(b) {
		t.Error("cross-page containment should be false")
	}
	if got := a.OverlapPercentage(b); got != 0 {
		t.Errorf("cross-page overlap should be 0, got %f", got)
	}
	if a.Intersects(b) {
		t.Error("cross-page boxes should not intersect")
	}
}

func TestBox_Intersection(t *testing.T) {
	a := NewBox(0, 0, 0, 10, 10)
	b := NewBox(0, 5, 5, 10, 10)

	intersection, ok := a.Intersection(b)
	if !ok {
		t.Fatal("expected intersection")
	}
	if intersection.X != 5 || intersection.Y != 5 || intersection.Width != 5 || intersection.Height != 5 {
		t.Errorf("unexpected intersection: %+v", intersection)
	}
}

func TestBox_OverlapPercentage(t *testing.T) {
	tests := []struct {
		name string
		a    Box
		b    Box
		want float64
	}{
		{
			name: "identical boxes overlap fully",
			a:    NewBox(0, 0, 0, 10, 10),
			b:    NewBox(0, 0, 0, 10, 10),
			want: 1.0,
		},
		{
			name: "half of smaller box",
			a:    NewBox(0, 0, 0, 10, 10),
			b:    NewBox(0, 5, 0, 10, 10),
			want: 0.5,
		},
		{
			name: "disjoint boxes",
			a:    NewBox(0, 0, 0, 10, 10),
			b:    NewBox(0, 20, 20, 10, 10),
			want: 0,
		},
		{
			name: "degenerate zero-area box",
			a:    NewBox(0, 0, 0, 0, 0),
			b:    NewBox(0, 0, 0, 10, 10),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.OverlapPercentage(tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("expected overlap %f, got %f", tt.want, got)
			}
		})
	}
}

func TestBox_Contains(t *testing.T) {
	outer := NewBox(0, 0, 0, 100, 100)
	inner := NewBox(0, 10, 10, 20, 20)

	if !outer.Contains(inner) {
		t.Error("expected outer to contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
	if !outer.ContainsPoint(Point{X: 50, Y: 50}) {
		t.Error("expected point inside box")
	}
}

func TestBox_VerticalOverlap(t *testing.T) {
	a := NewBox(0, 0, 0, 10, 10)
	b := NewBox(0, 50, 5, 10, 10)

	if got := a.VerticalOverlap(b); !almostEqual(got, 5) {
		t.Errorf("expected vertical overlap 5, got %f", got)
	}

	c := NewBox(0, 50, 30, 10, 10)
	if got := a.VerticalOverlap(c); got != 0 {
		t.Errorf("expected no vertical overlap, got %f", got)
	}
}

func TestLine_DistanceToPoint(t *testing.T) {
	l := Line{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}}

	if got := l.DistanceToPoint(Point{X: 5, Y: 3}); !almostEqual(got, 3) {
		t.Errorf("expected distance 3, got %f", got)
	}

	// Point beyond the segment end clamps to the endpoint.
	if got := l.DistanceToPoint(Point{X: 14, Y: 3}); !almostEqual(got, 5) {
		t.Errorf("expected distance 5, got %f", got)
	}
}

func TestLine_ZeroLengthFallsBackToStart(t *testing.T) {
	l := Line{Start: Point{X: 2, Y: 2}, End: Point{X: 2, Y: 2}}

	if got := l.DistanceToPoint(Point{X: 5, Y: 6}); !almostEqual(got, 5) {
		t.Errorf("expected distance to start point 5, got %f", got)
	}
}

func TestMultiBox_AggregatesPerPage(t *testing.T) {
	m := NewMultiBox()
	m.Add(NewBox(0, 0, 0, 10, 10))
	m.Add(NewBox(0, 20, 20, 10, 10))
	m.Add(NewBox(2, 5, 5, 10, 10))

	if m.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", m.PageCount())
	}

	pages := m.Pages()
	if len(pages) != 2 || pages[0] != 0 || pages[1] != 2 {
		t.Errorf("unexpected pages: %v", pages)
	}

	b, ok := m.BoxForPage(0)
	if !ok {
		t.Fatal("expected box for page 0")
	}
	if b.Width != 30 || b.Height != 30 {
		t.Errorf("expected unioned 30x30 box, got %+v", b)
	}

	if _, ok := m.BoxForPage(1); ok {
		t.Error("expected no box for page 1")
	}
}
