// Package readingorder provides the reading order validator: per-page
// spatial analysis of the document-order node sequence, detecting backward
// vertical jumps, reverse-direction runs on one visual line, excessive
// overlap, and backward jumps across a multi-column layout.
package readingorder

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kmorwood/tagcheck/geom"
	"github.com/kmorwood/tagcheck/report"
	"github.com/kmorwood/tagcheck/tree"
)

// Error codes reported by the reading order validator.
const (
	CodeOutOfOrder       tree.ErrorCode = "out-of-order"
	CodeReverseDirection tree.ErrorCode = "reverse-direction"
	CodeOverlapping      tree.ErrorCode = "overlapping"
	CodeColumnJump       tree.ErrorCode = "column-jump"
)

// Direction is the primary reading direction of the document.
type Direction int

const (
	// LeftToRight is the default for most Western scripts.
	LeftToRight Direction = iota
	// RightToLeft is used for Arabic, Hebrew and similar scripts.
	RightToLeft
)

// String returns a short name for the direction.
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Config holds the tolerances and switches of the reading order validator.
// All tolerances are in page points.
type Config struct {
	// Direction is the expected reading direction.
	Direction Direction

	// VerticalTolerance is how far above the current node's bottom edge the
	// next node's top edge may sit before the pair is out of order.
	VerticalTolerance float64

	// HorizontalTolerance is how far backward (against the reading
	// direction) a same-line neighbor may start before the pair reads in
	// reverse.
	HorizontalTolerance float64

	// CheckOverlap enables the pairwise overlap check.
	CheckOverlap bool

	// OverlapThreshold is the overlap percentage (0-1) above which two
	// consecutive nodes are reported as overlapping. The comparison is
	// strict: overlap equal to the threshold does not report.
	OverlapThreshold float64

	// CheckColumns enables column clustering and the column-jump check.
	CheckColumns bool

	// ColumnGapThreshold is the minimum gap between sorted left-x
	// coordinates that starts a new column.
	ColumnGapThreshold float64

	// BlockLevelOnly restricts the analysis to block-level nodes.
	BlockLevelOnly bool
}

// DefaultConfig returns the default reading order configuration.
func DefaultConfig() Config {
	return Config{
		Direction:           LeftToRight,
		VerticalTolerance:   10.0,
		HorizontalTolerance: 5.0,
		CheckOverlap:        true,
		OverlapThreshold:    0.10,
		CheckColumns:        true,
		ColumnGapThreshold:  50.0,
		BlockLevelOnly:      true,
	}
}

// StrictConfig returns a preset with tightened tolerances.
func StrictConfig() Config {
	cfg := DefaultConfig()
	cfg.VerticalTolerance = 2.0
	cfg.HorizontalTolerance = 2.0
	cfg.OverlapThreshold = 0.05
	cfg.ColumnGapThreshold = 30.0
	return cfg
}

// RightToLeftConfig returns the default preset with the horizontal
// comparison mirrored for right-to-left scripts.
func RightToLeftConfig() Config {
	cfg := DefaultConfig()
	cfg.Direction = RightToLeft
	return cfg
}

// Issue is one reading order defect.
type Issue struct {
	// Code identifies the kind of defect.
	Code tree.ErrorCode

	// Severity ranks the issue.
	Severity report.Severity

	// NodeID identifies the affected node (the later node of the pair).
	NodeID string

	// PreviousNodeID identifies the earlier node of the pair.
	PreviousNodeID string

	// Message describes the defect.
	Message string

	// PageIndex is the page the pair sits on.
	PageIndex int

	// Context carries check-specific details.
	Context map[string]string
}

// Result holds the outcome of one reading order validation.
type Result struct {
	// Issues in document order.
	Issues []Issue

	// TotalNodeCount is the number of spatial nodes considered.
	TotalNodeCount int

	// PageCount is the number of pages that had spatial nodes.
	PageCount int
}

// Findings converts the result to the flat reporting contract.
func (r *Result) Findings() []report.Finding {
	findings := make([]report.Finding, 0, len(r.Issues))
	for _, is := range r.Issues {
		ctx := is.Context
		if is.PreviousNodeID != "" {
			if ctx == nil {
				ctx = make(map[string]string)
			}
			ctx["previousNodeId"] = is.PreviousNodeID
		}
		findings = append(findings, report.Finding{
			Category:  report.CategoryReadingOrder,
			Code:      is.Code,
			Severity:  is.Severity,
			NodeID:    is.NodeID,
			Message:   is.Message,
			PageIndex: is.PageIndex,
			Context:   ctx,
		})
	}
	return findings
}

// spatialNode is one collected node with its box.
type spatialNode struct {
	node tree.Node
	box  geom.Box
}

// Validator checks that the logical order of a document matches a plausible
// top-to-bottom, direction-consistent visual order.
type Validator struct {
	config Config
}

// NewValidator creates a reading order validator with default configuration.
func NewValidator() *Validator {
	return &Validator{config: DefaultConfig()}
}

// NewValidatorWithConfig creates a reading order validator with custom
// configuration.
func NewValidatorWithConfig(config Config) *Validator {
	return &Validator{config: config}
}

// Validate buckets the spatial nodes under root by page and analyzes each
// page independently. Nodes on different pages are never compared.
func (v *Validator) Validate(root tree.Node) *Result {
	result := &Result{}

	nodes := v.collect(root)
	result.TotalNodeCount = len(nodes)

	pages := make(map[int][]spatialNode)
	var pageOrder []int
	for _, sn := range nodes {
		page := sn.box.PageIndex
		if _, seen := pages[page]; !seen {
			pageOrder = append(pageOrder, page)
		}
		pages[page] = append(pages[page], sn)
	}
	result.PageCount = len(pages)

	for _, page := range pageOrder {
		v.validatePage(pages[page], result)
	}

	return result
}

// collect gathers nodes with spatial presence in document order. Grouping
// containers are descended through, presentational subtrees are skipped, and
// a collected node's own subtree is not descended into so that each piece of
// content is considered once.
func (v *Validator) collect(root tree.Node) []spatialNode {
	var nodes []spatialNode
	tree.Walk(root, func(n tree.Node) bool {
		if n.Role().IsPresentational() {
			return false
		}
		box, ok := n.Box()
		if !ok || n.Role().IsGrouping() {
			return true
		}
		if v.config.BlockLevelOnly && !n.Role().IsBlockLevel() {
			return true
		}
		nodes = append(nodes, spatialNode{node: n, box: box})
		return false
	})
	return nodes
}

func (v *Validator) validatePage(nodes []spatialNode, result *Result) {
	for i := 0; i+1 < len(nodes); i++ {
		v.checkPair(nodes[i], nodes[i+1], result)
	}

	if v.config.CheckColumns && len(nodes) >= 3 {
		v.checkColumns(nodes, result)
	}
}

// checkPair runs the spatial order, reverse-direction and overlap checks on
// one consecutive pair of nodes.
func (v *Validator) checkPair(current, next spatialNode, result *Result) {
	sameLine := onSameLine(current.box, next.box)

	if sameLine {
		gap := next.box.Left() - current.box.Right()
		if v.config.Direction == RightToLeft {
			gap = current.box.Left() - next.box.Right()
		}
		if gap < -v.config.HorizontalTolerance {
			v.record(result, current, next, CodeReverseDirection, report.SeverityWarning,
				fmt.Sprintf("content on the same line reads against the %s direction", v.config.Direction),
				map[string]string{"horizontalGap": formatFloat(gap)})
		}
	} else if horizontalOverlap(current.box, next.box) > 0 {
		// Vertically stacked flow. Pairs with no shared x range are
		// column or region transitions, which the column check judges.
		verticalGap := next.box.Top() - current.box.Bottom()
		if verticalGap > v.config.VerticalTolerance {
			v.record(result, current, next, CodeOutOfOrder, report.SeverityCritical,
				fmt.Sprintf("next node starts %.1f points above the previous node's bottom", verticalGap),
				map[string]string{"verticalGap": formatFloat(verticalGap)})
		}
	}

	if v.config.CheckOverlap {
		overlap := current.box.OverlapPercentage(next.box)
		if overlap > v.config.OverlapThreshold {
			v.record(result, current, next, CodeOverlapping, report.SeverityWarning,
				fmt.Sprintf("consecutive nodes overlap by %.0f%%", overlap*100),
				map[string]string{"overlap": formatFloat(overlap)})
		}
	}
}

// horizontalOverlap returns the length of the x range shared by the boxes.
func horizontalOverlap(a, b geom.Box) float64 {
	overlap := math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
	if overlap < 0 {
		return 0
	}
	return overlap
}

// onSameLine reports whether the two boxes sit on one visual line: their
// vertical overlap exceeds half the shorter box's height.
func onSameLine(a, b geom.Box) bool {
	minHeight := a.Height
	if b.Height < minHeight {
		minHeight = b.Height
	}
	if minHeight <= 0 {
		return false
	}
	return a.VerticalOverlap(b) > minHeight/2
}

// checkColumns clusters the page's nodes into columns by their left-x
// coordinates and reports pairs whose document order jumps backward to an
// earlier column.
func (v *Validator) checkColumns(nodes []spatialNode, result *Result) {
	boundaries := detectColumns(nodes, v.config.ColumnGapThreshold)
	if len(boundaries) < 2 {
		return
	}

	columns := make([]int, len(nodes))
	for i, sn := range nodes {
		columns[i] = nearestColumn(sn.box.Left(), boundaries, v.config.ColumnGapThreshold)
	}

	for i := 0; i+1 < len(nodes); i++ {
		cur, next := columns[i], columns[i+1]
		if cur < 0 || next < 0 {
			continue
		}
		if next < cur {
			v.record(result, nodes[i], nodes[i+1], CodeColumnJump, report.SeverityWarning,
				fmt.Sprintf("logical order jumps backward from column %d to column %d", cur+1, next+1),
				map[string]string{
					"fromColumn": strconv.Itoa(cur + 1),
					"toColumn":   strconv.Itoa(next + 1),
				})
		}
	}
}

func (v *Validator) record(result *Result, current, next spatialNode, code tree.ErrorCode, severity report.Severity, message string, context map[string]string) {
	next.node.MarkError(code)
	result.Issues = append(result.Issues, Issue{
		Code:           code,
		Severity:       severity,
		NodeID:         next.node.ID(),
		PreviousNodeID: current.node.ID(),
		Message:        message,
		PageIndex:      next.box.PageIndex,
		Context:        context,
	})
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
