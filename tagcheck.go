// Package tagcheck validates the logical structure of a tagged document
// against accessibility rules: role nesting, heading-level sequencing,
// spatial reading order, and table regularity.
//
// Basic usage:
//
//	result := tagcheck.New().Validate(root)
//	if !result.Passed() {
//	    for _, f := range result.Findings {
//	        log.Printf("%s [%s] %s: %s", f.Category, f.Severity, f.NodeID, f.Message)
//	    }
//	}
//
// With configuration:
//
//	result := tagcheck.New().
//	    Strict().
//	    RightToLeft().
//	    Validate(root)
//
// The four analyzers are independent and can also be driven directly
// through the structure, headings, readingorder and tablecheck packages.
package tagcheck

import (
	"github.com/kmorwood/tagcheck/headings"
	"github.com/kmorwood/tagcheck/readingorder"
	"github.com/kmorwood/tagcheck/report"
	"github.com/kmorwood/tagcheck/structure"
	"github.com/kmorwood/tagcheck/tablecheck"
	"github.com/kmorwood/tagcheck/tree"
)

// Validator runs all four analyzers over a document tree.
type Validator struct {
	structureConfig    structure.Config
	headingsConfig     headings.Config
	readingOrderConfig readingorder.Config
}

// New creates a validator with default configuration for every analyzer.
func New() *Validator {
	return &Validator{
		structureConfig:    structure.DefaultConfig(),
		headingsConfig:     headings.DefaultConfig(),
		readingOrderConfig: readingorder.DefaultConfig(),
	}
}

// Strict tightens the reading order tolerances.
func (v *Validator) Strict() *Validator {
	direction := v.readingOrderConfig.Direction
	v.readingOrderConfig = readingorder.StrictConfig()
	v.readingOrderConfig.Direction = direction
	return v
}

// RightToLeft mirrors the horizontal reading order comparison for
// right-to-left scripts.
func (v *Validator) RightToLeft() *Validator {
	v.readingOrderConfig.Direction = readingorder.RightToLeft
	return v
}

// Structure replaces the structure analyzer configuration.
func (v *Validator) Structure(cfg structure.Config) *Validator {
	v.structureConfig = cfg
	return v
}

// Headings replaces the heading checker configuration.
func (v *Validator) Headings(cfg headings.Config) *Validator {
	v.headingsConfig = cfg
	return v
}

// ReadingOrder replaces the reading order validator configuration.
func (v *Validator) ReadingOrder(cfg readingorder.Config) *Validator {
	v.readingOrderConfig = cfg
	return v
}

// Result aggregates the outcome of all four analyzers.
type Result struct {
	Structure    *structure.Result
	Headings     *headings.Result
	ReadingOrder *readingorder.Result
	Tables       *tablecheck.Result

	// Findings is the flat list of every analyzer's findings, in analyzer
	// then document order.
	Findings []report.Finding
}

// Passed reports whether no finding fails the document. Findings of error
// or critical severity fail; warnings and infos alone do not.
func (r *Result) Passed() bool {
	for _, f := range r.Findings {
		if f.Severity.IsFailing() {
			return false
		}
	}
	return true
}

// CountBySeverity returns the number of findings per severity.
func (r *Result) CountBySeverity() map[report.Severity]int {
	counts := make(map[report.Severity]int)
	for _, f := range r.Findings {
		counts[f.Severity]++
	}
	return counts
}

// Validate runs all four analyzers over the tree rooted at root. Analyzers
// are independent: each recomputes what it needs from the tree and none
// reads another's findings.
func (v *Validator) Validate(root tree.Node) *Result {
	result := &Result{
		Structure:    structure.NewAnalyzerWithConfig(v.structureConfig).Analyze(root),
		Headings:     headings.NewCheckerWithConfig(v.headingsConfig).Validate(root),
		ReadingOrder: readingorder.NewValidatorWithConfig(v.readingOrderConfig).Validate(root),
		Tables:       tablecheck.NewValidator().ValidateAll(root),
	}

	result.Findings = append(result.Findings, result.Structure.Findings()...)
	result.Findings = append(result.Findings, result.Headings.Findings()...)
	result.Findings = append(result.Findings, result.ReadingOrder.Findings()...)
	result.Findings = append(result.Findings, result.Tables.Findings()...)

	return result
}
