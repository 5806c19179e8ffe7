package tree

// ListKind classifies the numbering style detected for a list. Detection
// itself is an ingestion concern; the tree only records the result.
type ListKind int

const (
	ListKindUnknown ListKind = iota
	ListKindUnordered
	ListKindArabic
	ListKindRomanUpper
	ListKindRomanLower
	ListKindAlphaUpper
	ListKindAlphaLower
	ListKindCircled
)

// String returns a short name for the list kind.
func (k ListKind) String() string {
	switch k {
	case ListKindUnordered:
		return "unordered"
	case ListKindArabic:
		return "arabic"
	case ListKindRomanUpper:
		return "roman-upper"
	case ListKindRomanLower:
		return "roman-lower"
	case ListKindAlphaUpper:
		return "alpha-upper"
	case ListKindAlphaLower:
		return "alpha-lower"
	case ListKindCircled:
		return "circled"
	default:
		return "unknown"
	}
}

// IsOrdered reports whether the kind denotes an ordered numbering style.
func (k ListKind) IsOrdered() bool {
	switch k {
	case ListKindArabic, ListKindRomanUpper, ListKindRomanLower,
		ListKindAlphaUpper, ListKindAlphaLower, ListKindCircled:
		return true
	default:
		return false
	}
}

// ListNode is the list variant. It records the detected numbering kind, an
// optional start number, and the list's nesting level (0 for a top-level
// list).
type ListNode struct {
	baseNode

	kind         ListKind
	startNumber  int
	hasStart     bool
	nestingLevel int
}

// NewList creates a list node with role L. An empty id is replaced with a
// generated UUID.
func NewList(id string) *ListNode {
	return &ListNode{baseNode: newBase(id, RoleList)}
}

// Kind returns the detected numbering kind.
func (n *ListNode) Kind() ListKind { return n.kind }

// SetKind records the detected numbering kind.
func (n *ListNode) SetKind(k ListKind) { n.kind = k }

// StartNumber returns the detected starting number of an ordered list. The
// second return value is false when no start number was detected.
func (n *ListNode) StartNumber() (int, bool) {
	return n.startNumber, n.hasStart
}

// SetStartNumber records the detected starting number.
func (n *ListNode) SetStartNumber(start int) {
	n.startNumber = start
	n.hasStart = true
}

// NestingLevel returns how deeply this list is nested inside other lists.
func (n *ListNode) NestingLevel() int { return n.nestingLevel }

// SetNestingLevel records the list's nesting level.
func (n *ListNode) SetNestingLevel(level int) { n.nestingLevel = level }

// Items returns the list's LI children in document order.
func (n *ListNode) Items() []Node {
	var items []Node
	for _, c := range n.children {
		if c.Role() == RoleListItem {
			items = append(items, c)
		}
	}
	return items
}
