package tree

import "sort"

// TableNode is the table variant. It adds accessors that recover the
// declared grid (row groups, rows, cells) from the node's children, plus an
// optional visual border attached externally once border detection has run.
type TableNode struct {
	baseNode

	borderX   []float64
	borderY   []float64
	hasBorder bool
}

// NewTable creates a table node with role Table. An empty id is replaced
// with a generated UUID.
func NewTable(id string) *TableNode {
	return &TableNode{baseNode: newBase(id, RoleTable)}
}

// RowGroups returns the table's declared row groups (THead, TBody, TFoot
// children) in document order.
func (n *TableNode) RowGroups() []Node {
	var groups []Node
	for _, c := range n.children {
		switch c.Role() {
		case RoleTableHead, RoleTableBody, RoleTableFoot:
			groups = append(groups, c)
		}
	}
	return groups
}

// Rows returns the table's rows in document order: direct TR children plus
// TR children of any row group.
func (n *TableNode) Rows() []Node {
	var rows []Node
	for _, c := range n.children {
		switch c.Role() {
		case RoleTableRow:
			rows = append(rows, c)
		case RoleTableHead, RoleTableBody, RoleTableFoot:
			for _, gc := range c.Children() {
				if gc.Role() == RoleTableRow {
					rows = append(rows, gc)
				}
			}
		}
	}
	return rows
}

// Cells returns the header and data cells of a row, in document order.
// Children of the row with any other role are not cells and are excluded.
func Cells(row Node) []Node {
	var cells []Node
	for _, c := range row.Children() {
		switch c.Role() {
		case RoleTableHeaderCell, RoleTableDataCell:
			cells = append(cells, c)
		}
	}
	return cells
}

// HeaderCells returns every header cell in the table, in document order.
func (n *TableNode) HeaderCells() []Node {
	return n.cellsByRole(RoleTableHeaderCell)
}

// DataCells returns every data cell in the table, in document order.
func (n *TableNode) DataCells() []Node {
	return n.cellsByRole(RoleTableDataCell)
}

func (n *TableNode) cellsByRole(role Role) []Node {
	var cells []Node
	for _, row := range n.Rows() {
		for _, c := range row.Children() {
			if c.Role() == role {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// SetVisualBorder attaches the visual border detected for this table: the x
// positions of its vertical grid lines and the y positions of its horizontal
// grid lines. Both lists are copied and kept sorted ascending.
func (n *TableNode) SetVisualBorder(xLines, yLines []float64) {
	n.borderX = make([]float64, len(xLines))
	copy(n.borderX, xLines)
	sort.Float64s(n.borderX)

	n.borderY = make([]float64, len(yLines))
	copy(n.borderY, yLines)
	sort.Float64s(n.borderY)

	n.hasBorder = true
}

// VisualBorder returns the attached visual border line positions. The third
// return value is false when no border was ever attached, in which case the
// visual-agreement check does not apply to this table.
func (n *TableNode) VisualBorder() (xLines, yLines []float64, ok bool) {
	if !n.hasBorder {
		return nil, nil, false
	}
	return n.borderX, n.borderY, true
}
