// Package geom provides the geometric primitives used by the validation
// engine: page-scoped bounding boxes, points, line segments, and a
// multi-page box aggregate.
//
// All coordinates follow the PDF convention: the origin is at the bottom
// left of the page and Y increases upward. A [Box] is always bound to a
// single page through its PageIndex; operations that combine two boxes
// (union, intersection, containment, overlap) are defined only when both
// operands share a page. Cross-page combinations report "no result" rather
// than silently coercing pages.
package geom
