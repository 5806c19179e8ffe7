// Package tree provides the document tree model for tagged documents.
//
// A tagged document is represented as a tree of [Node] values rooted at a
// document-role node. The variant set is closed: every node is one of
// [ContentNode] (generic tagged content, including text), [FigureNode]
// (images and vector line art), [TableNode] (tabular structure), or
// [ListNode] (list structure). Consumers dispatch with a type switch; there
// is deliberately no way to add a fifth variant from outside the package.
//
// # Roles
//
// Every node carries a [Role], a closed enumeration mirroring the standard
// structure types of tagged documents (Document, Sect, P, H1–H6, L, LI,
// Table, TR, TH, TD, Figure, ...). Role is the single source of truth for
// role semantics: facts such as IsHeading, HeadingLevel, IsBlockLevel and
// RequiresAlternativeText are answered by the Role itself, never recomputed
// by analyzers.
//
// # Shape and annotation
//
// The tree shape is built once by the ingesting caller and never modified by
// analyzers. The one mutable slot on each node is its error-code set, which
// analyzers append to via [Node.MarkError]. The set is guarded internally so
// multiple analyzers may annotate the same tree concurrently. Nodes hold no
// parent pointers; algorithms needing ancestor context carry an explicit
// path during traversal.
//
// # Attributes
//
// Source-format attributes (Alt, ActualText, Lang, Title, Level, ...) are
// carried in a generic attribute map of [AttrValue] entries, keyed by the
// reserved key constants in this package.
package tree
