package tree

import "github.com/kmorwood/tagcheck/geom"

// Color represents an RGB text color.
type Color struct {
	R, G, B uint8
}

// TextStyle represents the styling of a run of text.
type TextStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	Color     Color
}

// TextChunk is a positioned run of text with uniform font properties.
type TextChunk struct {
	Text     string
	Box      geom.Box
	FontSize float64
	FontName string
	Style    TextStyle
}

// TextLine is one visual line of text made of chunks in reading order.
type TextLine struct {
	Chunks []TextChunk
	Box    geom.Box
}

// Text returns the line's text with chunks joined directly.
func (l TextLine) Text() string {
	var s string
	for _, c := range l.Chunks {
		s += c.Text
	}
	return s
}

// TextBlock is a group of lines belonging to one logical block.
type TextBlock struct {
	Lines []TextLine
	Box   geom.Box
}

// Text returns the block's text with lines joined by newlines.
func (b TextBlock) Text() string {
	var s string
	for i, l := range b.Lines {
		if i > 0 {
			s += "\n"
		}
		s += l.Text()
	}
	return s
}

// FontMetrics describes the dominant font properties of a content node,
// weighted by the amount of text each font carries.
type FontMetrics struct {
	Size  float64
	Name  string
	Style TextStyle
}
