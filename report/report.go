// Package report defines the flat finding type every analyzer hands to the
// external aggregation and formatting layer. The engine itself performs no
// formatting, localization, or persistence.
package report

import "github.com/kmorwood/tagcheck/tree"

// Category identifies which analyzer produced a finding.
type Category int

const (
	CategoryStructure Category = iota
	CategoryHeading
	CategoryReadingOrder
	CategoryTable
)

// String returns a short name for the category.
func (c Category) String() string {
	switch c {
	case CategoryStructure:
		return "structure"
	case CategoryHeading:
		return "heading"
	case CategoryReadingOrder:
		return "reading-order"
	case CategoryTable:
		return "table"
	default:
		return "unknown"
	}
}

// Severity ranks how serious a finding is. Critical and Error findings fail
// a document; warnings and infos alone do not.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String returns a short name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// IsFailing reports whether a finding of this severity should fail the
// document on its own.
func (s Severity) IsFailing() bool {
	return s >= SeverityError
}

// NoPage marks findings that are not tied to a page.
const NoPage = -1

// Finding is one reported defect.
type Finding struct {
	// Category identifies the analyzer that produced the finding.
	Category Category

	// Code identifies the kind of defect.
	Code tree.ErrorCode

	// Severity ranks the finding.
	Severity Severity

	// NodeID identifies the affected node.
	NodeID string

	// Message is a human-readable description of the defect.
	Message string

	// PageIndex is the page the finding refers to, or NoPage.
	PageIndex int

	// Context carries check-specific details as key/value pairs.
	Context map[string]string
}
