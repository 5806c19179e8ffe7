// Package tablecheck provides the table structural validator: regularity
// checks over a table's declared row/cell grid and agreement checking
// between that grid and the visual border inferred from drawn lines.
package tablecheck

import (
	"fmt"
	"strconv"

	"github.com/kmorwood/tagcheck/report"
	"github.com/kmorwood/tagcheck/tree"
)

// Error codes reported by the table validator.
const (
	CodeMissingHeaders      tree.ErrorCode = "missing-headers"
	CodeColumnCountMismatch tree.ErrorCode = "column-count-mismatch"
	CodeEmptyRow            tree.ErrorCode = "empty-row"
	CodeVisualRowMismatch   tree.ErrorCode = "visual-row-mismatch"
	CodeVisualColMismatch   tree.ErrorCode = "visual-column-mismatch"
	CodeInvalidCellRole     tree.ErrorCode = "invalid-cell-role"
)

// Violation is one table defect. Severities are fixed per check: grid
// defects are errors, visual disagreements are warnings.
type Violation struct {
	// Code identifies the kind of defect.
	Code tree.ErrorCode

	// Severity ranks the violation.
	Severity report.Severity

	// NodeID identifies the affected node (the table, a row, or a cell).
	NodeID string

	// Message describes the defect.
	Message string

	// PageIndex is the affected page, or report.NoPage.
	PageIndex int

	// Context carries check-specific details.
	Context map[string]string
}

// Result holds the outcome of validating one table (or, via ValidateAll,
// every table under a root).
type Result struct {
	// Violations in check order.
	Violations []Violation

	// TableCount is the number of tables validated.
	TableCount int
}

// Findings converts the result to the flat reporting contract.
func (r *Result) Findings() []report.Finding {
	findings := make([]report.Finding, 0, len(r.Violations))
	for _, v := range r.Violations {
		findings = append(findings, report.Finding{
			Category:  report.CategoryTable,
			Code:      v.Code,
			Severity:  v.Severity,
			NodeID:    v.NodeID,
			Message:   v.Message,
			PageIndex: v.PageIndex,
			Context:   v.Context,
		})
	}
	return findings
}

// Passed reports whether the result contains no error-severity violation.
// Warnings alone still pass.
func (r *Result) Passed() bool {
	for _, v := range r.Violations {
		if v.Severity.IsFailing() {
			return false
		}
	}
	return true
}

// Validator checks the structural regularity of tables.
type Validator struct{}

// NewValidator creates a table validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs all table checks against one table. Every check runs
// regardless of prior results; nothing is fatal.
//
// The column regularity check counts header and data cells per row and
// ignores row and column spans, so tables relying on spans for a regular
// visual grid are reported as irregular.
func (v *Validator) Validate(table *tree.TableNode) *Result {
	result := &Result{}
	v.validateInto(table, result)
	return result
}

// ValidateAll walks the subtree under root and validates every table node.
func (v *Validator) ValidateAll(root tree.Node) *Result {
	result := &Result{}
	tree.Walk(root, func(n tree.Node) bool {
		if table, ok := n.(*tree.TableNode); ok {
			v.validateInto(table, result)
		}
		return true
	})
	return result
}

func (v *Validator) validateInto(table *tree.TableNode, result *Result) {
	result.TableCount++

	rows := table.Rows()

	v.checkHeaders(table, rows, result)
	v.checkColumnRegularity(table, rows, result)
	v.checkEmptyRows(table, rows, result)
	v.checkVisualAgreement(table, rows, result)
	v.checkCellRoles(table, rows, result)
}

// checkHeaders requires at least one header cell in any table with more
// than one row.
func (v *Validator) checkHeaders(table *tree.TableNode, rows []tree.Node, result *Result) {
	if len(rows) <= 1 {
		return
	}
	if len(table.HeaderCells()) > 0 {
		return
	}
	v.record(result, table, CodeMissingHeaders, report.SeverityError,
		fmt.Sprintf("table with %d rows has no header cells", len(rows)),
		map[string]string{"rowCount": strconv.Itoa(len(rows))})
}

// checkColumnRegularity compares cell counts across rows. Spans are
// ignored; the check reports once per table however many rows differ.
func (v *Validator) checkColumnRegularity(table *tree.TableNode, rows []tree.Node, result *Result) {
	if len(rows) < 2 {
		return
	}

	first := len(tree.Cells(rows[0]))
	minCount, maxCount := first, first
	regular := true
	for _, row := range rows[1:] {
		count := len(tree.Cells(row))
		if count != first {
			regular = false
		}
		if count < minCount {
			minCount = count
		}
		if count > maxCount {
			maxCount = count
		}
	}

	if regular {
		return
	}
	v.record(result, table, CodeColumnCountMismatch, report.SeverityError,
		fmt.Sprintf("rows have between %d and %d cells", minCount, maxCount),
		map[string]string{
			"minCells": strconv.Itoa(minCount),
			"maxCells": strconv.Itoa(maxCount),
		})
}

func (v *Validator) checkEmptyRows(table *tree.TableNode, rows []tree.Node, result *Result) {
	for _, row := range rows {
		if len(tree.Cells(row)) == 0 {
			v.record(result, row, CodeEmptyRow, report.SeverityError,
				"table row has no cells", nil)
		}
	}
}

// checkVisualAgreement compares the declared grid against the visual border
// attached to the table, when one is present. The visual signal is a
// heuristic corroboration, so disagreements are warnings rather than
// errors. Tables without an attached border skip this check entirely.
func (v *Validator) checkVisualAgreement(table *tree.TableNode, rows []tree.Node, result *Result) {
	xLines, yLines, ok := table.VisualBorder()
	if !ok {
		return
	}

	visualRows := len(yLines) - 1
	visualCols := len(xLines) - 1
	if visualRows < 1 || visualCols < 1 {
		return
	}

	declaredRows := len(rows)
	declaredCols := 0
	for _, row := range rows {
		if count := len(tree.Cells(row)); count > declaredCols {
			declaredCols = count
		}
	}

	if visualRows != declaredRows {
		v.record(result, table, CodeVisualRowMismatch, report.SeverityWarning,
			fmt.Sprintf("table declares %d rows but its drawn border suggests %d", declaredRows, visualRows),
			map[string]string{
				"declaredRows": strconv.Itoa(declaredRows),
				"visualRows":   strconv.Itoa(visualRows),
			})
	}
	if visualCols != declaredCols {
		v.record(result, table, CodeVisualColMismatch, report.SeverityWarning,
			fmt.Sprintf("table declares %d columns but its drawn border suggests %d", declaredCols, visualCols),
			map[string]string{
				"declaredCols": strconv.Itoa(declaredCols),
				"visualCols":   strconv.Itoa(visualCols),
			})
	}
}

func (v *Validator) checkCellRoles(table *tree.TableNode, rows []tree.Node, result *Result) {
	for _, row := range rows {
		for _, c := range row.Children() {
			switch c.Role() {
			case tree.RoleTableHeaderCell, tree.RoleTableDataCell:
			default:
				v.record(result, c, CodeInvalidCellRole, report.SeverityError,
					fmt.Sprintf("row child has role %s, expected TH or TD", c.Role()),
					map[string]string{"role": c.Role().String()})
			}
		}
	}
}

func (v *Validator) record(result *Result, n tree.Node, code tree.ErrorCode, severity report.Severity, message string, context map[string]string) {
	page := report.NoPage
	if box, ok := n.Box(); ok {
		page = box.PageIndex
	}
	n.MarkError(code)
	result.Violations = append(result.Violations, Violation{
		Code:      code,
		Severity:  severity,
		NodeID:    n.ID(),
		Message:   message,
		PageIndex: page,
		Context:   context,
	})
}
