package structure

import "github.com/kmorwood/tagcheck/tree"

// legalChildren maps each constrained parent role to the set of child roles
// it may contain. Parents absent from the table accept any child.
var legalChildren = map[tree.Role]map[tree.Role]bool{
	tree.RoleTable: {
		tree.RoleTableRow:  true,
		tree.RoleTableHead: true,
		tree.RoleTableBody: true,
		tree.RoleTableFoot: true,
		tree.RoleCaption:   true,
	},
	tree.RoleTableHead: {
		tree.RoleTableRow: true,
	},
	tree.RoleTableBody: {
		tree.RoleTableRow: true,
	},
	tree.RoleTableFoot: {
		tree.RoleTableRow: true,
	},
	tree.RoleTableRow: {
		tree.RoleTableHeaderCell: true,
		tree.RoleTableDataCell:   true,
	},
	tree.RoleList: {
		tree.RoleListItem: true,
		tree.RoleCaption:  true,
	},
	tree.RoleListItem: {
		tree.RoleLabel:    true,
		tree.RoleListBody: true,
	},
	tree.RoleTOC: {
		tree.RoleTOC:     true,
		tree.RoleTOCItem: true,
		tree.RoleCaption: true,
	},
	tree.RoleRuby: {
		tree.RoleRubyBase:        true,
		tree.RoleRubyText:        true,
		tree.RoleRubyPunctuation: true,
	},
	tree.RoleWarichu: {
		tree.RoleWarichuText:        true,
		tree.RoleWarichuPunctuation: true,
	},
}

// childAllowed reports whether child may appear directly under parent.
func childAllowed(parent, child tree.Role) bool {
	allowed, constrained := legalChildren[parent]
	if !constrained {
		return true
	}
	return allowed[child]
}

// mayBeEmpty lists roles that are structurally permitted to have neither
// children nor content: artifacts, pagination, notes, and pure containers.
var mayBeEmpty = map[tree.Role]bool{
	tree.RoleArtifact: true,
	tree.RoleHeader:   true,
	tree.RoleFooter:   true,
	tree.RoleNote:     true,
	tree.RoleDocument: true,
	tree.RolePart:     true,
	tree.RoleArticle:  true,
	tree.RoleSection:  true,
	tree.RoleDivision: true,
}
