package tree

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kmorwood/tagcheck/geom"
)

// Node is the capability interface shared by the four node variants.
// Implementations are *ContentNode, *FigureNode, *TableNode and *ListNode;
// the set is closed.
type Node interface {
	// ID returns the node identifier, unique within one tree and stable
	// for the node's lifetime.
	ID() string

	// Role returns the structural role of the node.
	Role() Role

	// Box returns the node's spatial extent. The second return value is
	// false for nodes without spatial presence.
	Box() (geom.Box, bool)

	// Children returns the ordered child nodes.
	Children() []Node

	// Attribute looks up a source-format attribute by its reserved key.
	Attribute(key string) (AttrValue, bool)

	// Attributes returns the full attribute map.
	Attributes() map[string]AttrValue

	// Depth returns the node's depth in the tree; the root has depth 0 and
	// a child's depth is always one greater than its parent's.
	Depth() int

	// MarkError records a detected defect on the node. Insert-only and
	// safe for concurrent use.
	MarkError(code ErrorCode)

	// HasError reports whether the given defect was recorded on the node.
	HasError(code ErrorCode) bool

	// ErrorCodes returns the recorded defects in sorted order.
	ErrorCodes() []ErrorCode

	// base anchors the closed variant set to this package.
	base() *baseNode
}

// baseNode carries the fields common to all variants.
type baseNode struct {
	id       string
	role     Role
	box      *geom.Box
	children []Node
	attrs    map[string]AttrValue
	depth    int
	errs     errorSet
}

func newBase(id string, role Role) baseNode {
	if id == "" {
		id = uuid.NewString()
	}
	return baseNode{id: id, role: role}
}

func (b *baseNode) base() *baseNode { return b }

// ID returns the node identifier.
func (b *baseNode) ID() string { return b.id }

// Role returns the structural role of the node.
func (b *baseNode) Role() Role { return b.role }

// Box returns the node's spatial extent, if it has one.
func (b *baseNode) Box() (geom.Box, bool) {
	if b.box == nil {
		return geom.Box{}, false
	}
	return *b.box, true
}

// SetBox attaches a spatial extent to the node.
func (b *baseNode) SetBox(box geom.Box) {
	b.box = &box
}

// Children returns the ordered child nodes.
func (b *baseNode) Children() []Node { return b.children }

// AddChild appends a child and renumbers the child subtree's depths so that
// every node sits exactly one level below its parent.
func (b *baseNode) AddChild(child Node) {
	setDepths(child, b.depth+1)
	b.children = append(b.children, child)
}

// Attribute looks up a source-format attribute by key.
func (b *baseNode) Attribute(key string) (AttrValue, bool) {
	v, ok := b.attrs[key]
	return v, ok
}

// Attributes returns the full attribute map.
func (b *baseNode) Attributes() map[string]AttrValue { return b.attrs }

// SetAttribute sets a source-format attribute.
func (b *baseNode) SetAttribute(key string, v AttrValue) {
	if b.attrs == nil {
		b.attrs = make(map[string]AttrValue)
	}
	b.attrs[key] = v
}

// Depth returns the node's depth in the tree.
func (b *baseNode) Depth() int { return b.depth }

// SetDepth sets the node's depth without touching its children. Ingesting
// callers that assign depths directly must keep the parent+1 invariant.
func (b *baseNode) SetDepth(depth int) { b.depth = depth }

// MarkError records a detected defect on the node.
func (b *baseNode) MarkError(code ErrorCode) { b.errs.add(code) }

// HasError reports whether the given defect was recorded on the node.
func (b *baseNode) HasError(code ErrorCode) bool { return b.errs.has(code) }

// ErrorCodes returns the recorded defects in sorted order.
func (b *baseNode) ErrorCodes() []ErrorCode { return b.errs.all() }

func setDepths(n Node, depth int) {
	bn := n.base()
	bn.depth = depth
	for _, c := range bn.children {
		setDepths(c, depth+1)
	}
}

// ContentNode is the generic content variant: any tagged element that is not
// a figure, table or list. Text content is carried as ordered blocks of
// lines of chunks.
type ContentNode struct {
	baseNode

	blocks []TextBlock

	fontOnce sync.Once
	dominant FontMetrics
}

// NewContent creates a generic content node. An empty id is replaced with a
// generated UUID.
func NewContent(id string, role Role) *ContentNode {
	return &ContentNode{baseNode: newBase(id, role)}
}

// AddBlock appends a text block to the node.
func (n *ContentNode) AddBlock(b TextBlock) {
	n.blocks = append(n.blocks, b)
}

// Blocks returns the node's ordered text blocks.
func (n *ContentNode) Blocks() []TextBlock { return n.blocks }

// Text returns the node's own text, blocks joined by newlines. Text carried
// by child nodes is not included; use the package-level Text for that.
func (n *ContentNode) Text() string {
	var sb strings.Builder
	for i, b := range n.blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// DominantFont returns the font properties carrying the most text in this
// node. The result is computed once and cached.
func (n *ContentNode) DominantFont() FontMetrics {
	n.fontOnce.Do(func() {
		n.dominant = n.computeDominantFont()
	})
	return n.dominant
}

func (n *ContentNode) computeDominantFont() FontMetrics {
	type key struct {
		size  float64
		name  string
		style TextStyle
	}
	weights := make(map[key]int)
	var best key
	bestWeight := -1

	for _, b := range n.blocks {
		for _, l := range b.Lines {
			for _, c := range l.Chunks {
				k := key{size: c.FontSize, name: c.FontName, style: c.Style}
				weights[k] += len(c.Text)
				if weights[k] > bestWeight {
					best = k
					bestWeight = weights[k]
				}
			}
		}
	}

	if bestWeight < 0 {
		return FontMetrics{}
	}
	return FontMetrics{Size: best.size, Name: best.name, Style: best.style}
}

// ImageChunk is a raster image placed inside a figure.
type ImageChunk struct {
	Box      geom.Box
	WidthPx  int
	HeightPx int
	DPI      float64
}

// FigureNode is the figure variant: raster images and vector line art.
type FigureNode struct {
	baseNode

	images  []ImageChunk
	lineArt []geom.Line
}

// NewFigure creates a figure node with role Figure. An empty id is replaced
// with a generated UUID.
func NewFigure(id string) *FigureNode {
	return &FigureNode{baseNode: newBase(id, RoleFigure)}
}

// AddImage appends a raster image chunk.
func (n *FigureNode) AddImage(img ImageChunk) {
	n.images = append(n.images, img)
}

// Images returns the figure's raster image chunks.
func (n *FigureNode) Images() []ImageChunk { return n.images }

// AddLineArt appends a vector line-art segment.
func (n *FigureNode) AddLineArt(l geom.Line) {
	n.lineArt = append(n.lineArt, l)
}

// LineArt returns the figure's vector line-art segments.
func (n *FigureNode) LineArt() []geom.Line { return n.lineArt }

// Caption returns the figure's caption: the first child with the caption
// role. The second return value is false when the figure has none.
func (n *FigureNode) Caption() (Node, bool) {
	for _, c := range n.children {
		if c.Role() == RoleCaption {
			return c, true
		}
	}
	return nil, false
}

// Walk visits the subtree rooted at n in pre-order. Returning false from
// visit prunes the node's children.
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, visit)
	}
}

// Text returns the concatenated text of all content nodes in the subtree, in
// document order, joined by single spaces.
func Text(n Node) string {
	var parts []string
	Walk(n, func(node Node) bool {
		if cn, ok := node.(*ContentNode); ok {
			if t := cn.Text(); t != "" {
				parts = append(parts, t)
			}
		}
		return true
	})
	return strings.Join(parts, " ")
}

// TextAlternative returns the node's text alternative: the Alt attribute if
// present, else ActualText, else the empty string.
func TextAlternative(n Node) string {
	if v, ok := n.Attribute(AttrKeyAlt); ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	if v, ok := n.Attribute(AttrKeyActualText); ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	return ""
}

// HasTextAlternative reports whether the node carries a non-empty text
// alternative.
func HasTextAlternative(n Node) bool {
	return strings.TrimSpace(TextAlternative(n)) != ""
}
