package geom

import "sort"

// MultiBox aggregates the spatial extent of content that spans several
// pages. It keeps at most one box per page: adding a second box for a page
// unions it with the existing one.
type MultiBox struct {
	boxes map[int]Box
}

// NewMultiBox creates an empty multi-page box.
func NewMultiBox() *MultiBox {
	return &MultiBox{boxes: make(map[int]Box)}
}

// Add merges a box into the aggregate. Boxes on already-covered pages are
// unioned with the existing extent for that page.
func (m *MultiBox) Add(b Box) {
	existing, ok := m.boxes[b.PageIndex]
	if !ok {
		m.boxes[b.PageIndex] = b
		return
	}
	union, ok := existing.Union(b)
	if ok {
		m.boxes[b.PageIndex] = union
	}
}

// BoxForPage returns the aggregate box for a page. The second return value
// is false when the aggregate has no content on that page.
func (m *MultiBox) BoxForPage(pageIndex int) (Box, bool) {
	b, ok := m.boxes[pageIndex]
	return b, ok
}

// Pages returns the covered page indexes in ascending order.
func (m *MultiBox) Pages() []int {
	pages := make([]int, 0, len(m.boxes))
	for p := range m.boxes {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// IsEmpty reports whether the aggregate covers no pages.
func (m *MultiBox) IsEmpty() bool {
	return len(m.boxes) == 0
}

// PageCount returns the number of pages the aggregate covers.
func (m *MultiBox) PageCount() int {
	return len(m.boxes)
}
