package geom

import "math"

// Point represents a 2D point in page coordinate space.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Line represents a drawn line segment on a page.
type Line struct {
	PageIndex int
	Start     Point
	End       Point
	Width     float64
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// IsHorizontal reports whether the line is horizontal within tolerance.
func (l Line) IsHorizontal(tolerance float64) bool {
	return math.Abs(l.End.Y-l.Start.Y) <= tolerance
}

// IsVertical reports whether the line is vertical within tolerance.
func (l Line) IsVertical(tolerance float64) bool {
	return math.Abs(l.End.X-l.Start.X) <= tolerance
}

// DistanceToPoint returns the shortest distance from p to the segment.
// A zero-length segment falls back to the distance to the start point.
func (l Line) DistanceToPoint(p Point) float64 {
	dx := l.End.X - l.Start.X
	dy := l.End.Y - l.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return p.Distance(l.Start)
	}

	t := ((p.X-l.Start.X)*dx + (p.Y-l.Start.Y)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))

	closest := Point{
		X: l.Start.X + t*dx,
		Y: l.Start.Y + t*dy,
	}
	return p.Distance(closest)
}

// Box represents a page-scoped bounding box. X and Y locate the bottom-left
// corner of the rectangle on the page identified by PageIndex.
type Box struct {
	PageIndex int
	X         float64
	Y         float64
	Width     float64
	Height    float64
}

// NewBox creates a bounding box on the given page.
func NewBox(pageIndex int, x, y, width, height float64) Box {
	return Box{PageIndex: pageIndex, X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (b Box) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate.
func (b Box) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate.
func (b Box) Bottom() float64 {
	return b.Y
}

// Top returns the top edge Y coordinate.
func (b Box) Top() float64 {
	return b.Y + b.Height
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Area returns the area of the box.
func (b Box) Area() float64 {
	return b.Width * b.Height
}

// IsValid reports whether the box has positive dimensions.
func (b Box) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// SamePage reports whether both boxes live on the same page.
func (b Box) SamePage(other Box) bool {
	return b.PageIndex == other.PageIndex
}

// Intersects reports whether the two boxes intersect. Boxes on different
// pages never intersect.
func (b Box) Intersects(other Box) bool {
	if !b.SamePage(other) {
		return false
	}
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Top() < other.Bottom() ||
		b.Bottom() > other.Top())
}

// Union returns the smallest box covering both operands. The second return
// value is false when the boxes are on different pages, in which case no
// union exists.
func (b Box) Union(other Box) (Box, bool) {
	if !b.SamePage(other) {
		return Box{}, false
	}

	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Bottom(), other.Bottom())
	right := math.Max(b.Right(), other.Right())
	top := math.Max(b.Top(), other.Top())

	return Box{
		PageIndex: b.PageIndex,
		X:         x,
		Y:         y,
		Width:     right - x,
		Height:    top - y,
	}, true
}

// Intersection returns the overlapping region of the two boxes. The second
// return value is false when the boxes are on different pages or do not
// intersect.
func (b Box) Intersection(other Box) (Box, bool) {
	if !b.Intersects(other) {
		return Box{}, false
	}

	x := math.Max(b.Left(), other.Left())
	y := math.Max(b.Bottom(), other.Bottom())
	right := math.Min(b.Right(), other.Right())
	top := math.Min(b.Top(), other.Top())

	return Box{
		PageIndex: b.PageIndex,
		X:         x,
		Y:         y,
		Width:     right - x,
		Height:    top - y,
	}, true
}

// Contains reports whether other lies entirely within b. Boxes on different
// pages are never contained in one another.
func (b Box) Contains(other Box) bool {
	if !b.SamePage(other) {
		return false
	}
	return other.Left() >= b.Left() && other.Right() <= b.Right() &&
		other.Bottom() >= b.Bottom() && other.Top() <= b.Top()
}

// ContainsPoint reports whether the point lies inside the box.
func (b Box) ContainsPoint(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Bottom() && p.Y <= b.Top()
}

// OverlapPercentage returns the overlap ratio of the two boxes: the area of
// their intersection divided by the smaller of the two areas. It returns 0
// for disjoint boxes, boxes on different pages, and degenerate (zero-area)
// boxes.
func (b Box) OverlapPercentage(other Box) float64 {
	intersection, ok := b.Intersection(other)
	if !ok {
		return 0
	}

	minArea := math.Min(b.Area(), other.Area())
	if minArea <= 0 {
		return 0
	}

	return intersection.Area() / minArea
}

// VerticalOverlap returns the length of the Y range shared by the boxes, or
// 0 when they share none (or are on different pages).
func (b Box) VerticalOverlap(other Box) float64 {
	if !b.SamePage(other) {
		return 0
	}
	overlap := math.Min(b.Top(), other.Top()) - math.Max(b.Bottom(), other.Bottom())
	if overlap < 0 {
		return 0
	}
	return overlap
}
