// Package borders infers a table's visual border from drawn line segments.
//
// The detector classifies segments as horizontal or vertical, filters out
// short decorative strokes, and clusters the remaining segments into aligned
// groups within a tolerance. The result is the pair of sorted coordinate
// lists (vertical line x positions, horizontal line y positions) that the
// table validator consumes for its visual-agreement check.
package borders

import (
	"math"
	"sort"

	"github.com/kmorwood/tagcheck/geom"
	"github.com/kmorwood/tagcheck/tree"
)

// Config holds the clustering parameters of the border detector.
type Config struct {
	// AlignmentTolerance is the maximum distance, in points, between two
	// segments still considered to lie on the same grid line.
	AlignmentTolerance float64

	// AxisTolerance is the maximum deviation from the axis for a segment
	// to count as horizontal or vertical.
	AxisTolerance float64

	// MinLineLength filters out segments shorter than this.
	MinLineLength float64

	// MinLines is the minimum number of grid lines per axis for a border
	// to be reported. A grid needs at least two lines on each axis to
	// enclose a single cell.
	MinLines int
}

// DefaultConfig returns the default border detection configuration.
func DefaultConfig() Config {
	return Config{
		AlignmentTolerance: 3.0,
		AxisTolerance:      2.0,
		MinLineLength:      10.0,
		MinLines:           2,
	}
}

// Border is a detected table border: the sorted positions of its vertical
// and horizontal grid lines on one page.
type Border struct {
	PageIndex int

	// XLines are the x positions of the vertical grid lines, ascending.
	XLines []float64

	// YLines are the y positions of the horizontal grid lines, ascending.
	YLines []float64
}

// RowCount returns the number of rows the border encloses.
func (b *Border) RowCount() int {
	if len(b.YLines) < 2 {
		return 0
	}
	return len(b.YLines) - 1
}

// ColumnCount returns the number of columns the border encloses.
func (b *Border) ColumnCount() int {
	if len(b.XLines) < 2 {
		return 0
	}
	return len(b.XLines) - 1
}

// Detector clusters drawn line segments into a table border.
type Detector struct {
	config Config
}

// NewDetector creates a border detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a border detector with custom configuration.
func NewDetectorWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// Detect clusters the given segments into a border. All segments must lie
// on one page; segments on other pages than the first segment's are
// ignored. The second return value is false when the segments do not form
// at least a MinLines x MinLines grid.
func (d *Detector) Detect(lines []geom.Line) (*Border, bool) {
	if len(lines) == 0 {
		return nil, false
	}
	page := lines[0].PageIndex

	var horizontals, verticals []geom.Line
	for _, l := range lines {
		if l.PageIndex != page || l.Length() < d.config.MinLineLength {
			continue
		}
		switch {
		case l.IsHorizontal(d.config.AxisTolerance):
			horizontals = append(horizontals, l)
		case l.IsVertical(d.config.AxisTolerance):
			verticals = append(verticals, l)
		}
	}

	yLines := d.clusterPositions(horizontals, true)
	xLines := d.clusterPositions(verticals, false)

	if len(xLines) < d.config.MinLines || len(yLines) < d.config.MinLines {
		return nil, false
	}

	return &Border{PageIndex: page, XLines: xLines, YLines: yLines}, true
}

// AttachToTable detects a border from the segments and attaches it to the
// table when one is found. It reports whether a border was attached.
func (d *Detector) AttachToTable(table *tree.TableNode, lines []geom.Line) bool {
	border, ok := d.Detect(lines)
	if !ok {
		return false
	}
	table.SetVisualBorder(border.XLines, border.YLines)
	return true
}

// clusterPositions sorts the segments' axis positions and merges positions
// within the alignment tolerance into one grid line at their mean.
func (d *Detector) clusterPositions(lines []geom.Line, horizontal bool) []float64 {
	if len(lines) == 0 {
		return nil
	}

	positions := make([]float64, len(lines))
	for i, l := range lines {
		if horizontal {
			positions[i] = (l.Start.Y + l.End.Y) / 2
		} else {
			positions[i] = (l.Start.X + l.End.X) / 2
		}
	}
	sort.Float64s(positions)

	var clustered []float64
	clusterSum := positions[0]
	clusterCount := 1
	clusterStart := positions[0]

	for _, pos := range positions[1:] {
		mean := clusterSum / float64(clusterCount)
		if pos-mean <= d.config.AlignmentTolerance && pos-clusterStart <= 2*d.config.AlignmentTolerance {
			clusterSum += pos
			clusterCount++
			continue
		}
		clustered = append(clustered, clusterSum/float64(clusterCount))
		clusterSum = pos
		clusterCount = 1
		clusterStart = pos
	}
	clustered = append(clustered, clusterSum/float64(clusterCount))

	return clustered
}

// SnapToGrid returns the index of the grid line in positions closest to
// value, or -1 when none lies within tolerance.
func SnapToGrid(value float64, positions []float64, tolerance float64) int {
	best := -1
	bestDistance := math.MaxFloat64
	for i, pos := range positions {
		d := math.Abs(value - pos)
		if d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	if best >= 0 && bestDistance <= tolerance {
		return best
	}
	return -1
}
