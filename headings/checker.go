// Package headings provides the heading hierarchy checker: a linear scan
// over the document-order sequence of heading nodes enforcing level
// sequencing (one H1, no skipped levels) and per-heading content rules.
package headings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kmorwood/tagcheck/report"
	"github.com/kmorwood/tagcheck/tree"
)

// Error codes reported by the heading checker.
const (
	CodeMultipleH1        tree.ErrorCode = "multiple-h1"
	CodeNoH1              tree.ErrorCode = "no-h1"
	CodeFirstNotH1        tree.ErrorCode = "first-heading-not-h1"
	CodeLevelSkipped      tree.ErrorCode = "heading-level-skipped"
	CodeEmptyHeading      tree.ErrorCode = "empty-heading"
	CodeNonMeaningfulText tree.ErrorCode = "non-meaningful-heading"
	CodeLevelTooDeep      tree.ErrorCode = "heading-level-too-deep"
)

// Config holds the configuration of the heading checker.
type Config struct {
	// CheckFirstHeadingIsH1 warns when the document's first heading is not
	// a level-1 heading.
	CheckFirstHeadingIsH1 bool

	// MinTextLength is the minimum trimmed length for heading text to be
	// considered meaningful.
	MinTextLength int

	// GenericPhrases is a denylist of heading texts that convey no meaning
	// on their own. Comparison is exact after trimming and lowercasing.
	GenericPhrases []string

	// MaxLevel is the deepest heading level considered valid.
	MaxLevel int
}

// DefaultConfig returns the default heading checker configuration.
func DefaultConfig() Config {
	return Config{
		CheckFirstHeadingIsH1: true,
		MinTextLength:         3,
		GenericPhrases:        []string{"heading", "untitled", "click here", "title"},
		MaxLevel:              6,
	}
}

// Issue is one heading hierarchy defect.
type Issue struct {
	// Code identifies the kind of defect.
	Code tree.ErrorCode

	// Severity ranks the issue.
	Severity report.Severity

	// NodeID identifies the affected heading node.
	NodeID string

	// Level is the resolved level of the affected heading.
	Level int

	// Message describes the defect.
	Message string

	// PageIndex is the affected page, or report.NoPage.
	PageIndex int

	// Context carries check-specific details (for skipped levels, the gap
	// size).
	Context map[string]string
}

// Result holds the outcome of one heading hierarchy check.
type Result struct {
	// Issues in document order of the offending headings.
	Issues []Issue

	// TotalHeadingCount is the number of heading nodes found.
	TotalHeadingCount int

	// HeadingsByLevel counts headings per resolved level.
	HeadingsByLevel map[int]int
}

// Findings converts the result to the flat reporting contract.
func (r *Result) Findings() []report.Finding {
	findings := make([]report.Finding, 0, len(r.Issues))
	for _, is := range r.Issues {
		findings = append(findings, report.Finding{
			Category:  report.CategoryHeading,
			Code:      is.Code,
			Severity:  is.Severity,
			NodeID:    is.NodeID,
			Message:   is.Message,
			PageIndex: is.PageIndex,
			Context:   is.Context,
		})
	}
	return findings
}

// HasCritical reports whether any critical issue was found.
func (r *Result) HasCritical() bool {
	for _, is := range r.Issues {
		if is.Severity == report.SeverityCritical {
			return true
		}
	}
	return false
}

// heading is one collected heading with its resolved level.
type heading struct {
	node  tree.Node
	level int
}

// Checker validates the heading hierarchy of a document.
type Checker struct {
	config Config
}

// NewChecker creates a heading checker with default configuration.
func NewChecker() *Checker {
	return &Checker{config: DefaultConfig()}
}

// NewCheckerWithConfig creates a heading checker with custom configuration.
func NewCheckerWithConfig(config Config) *Checker {
	return &Checker{config: config}
}

// Validate collects all heading nodes under root in document order and
// checks level sequencing and per-heading content rules.
func (c *Checker) Validate(root tree.Node) *Result {
	result := &Result{HeadingsByLevel: make(map[int]int)}

	headings := collectHeadings(root)
	result.TotalHeadingCount = len(headings)
	for _, h := range headings {
		result.HeadingsByLevel[h.level]++
	}

	if len(headings) == 0 {
		return result
	}

	c.checkH1Count(headings, result)
	if c.config.CheckFirstHeadingIsH1 && headings[0].level != 1 && result.HeadingsByLevel[1] > 0 {
		c.record(result, headings[0], CodeFirstNotH1, report.SeverityWarning,
			fmt.Sprintf("first heading has level %d, expected level 1", headings[0].level),
			nil)
	}
	c.checkSequence(headings, result)

	for _, h := range headings {
		c.checkContent(h, result)
		if h.level > c.config.MaxLevel {
			c.record(result, h, CodeLevelTooDeep, report.SeverityWarning,
				fmt.Sprintf("heading level %d exceeds the maximum level %d", h.level, c.config.MaxLevel),
				map[string]string{"level": strconv.Itoa(h.level), "maxLevel": strconv.Itoa(c.config.MaxLevel)})
		}
	}

	return result
}

// collectHeadings gathers heading-role nodes in pre-order and resolves each
// one's level: H1-H6 map directly, a generic H falls back to its Level
// attribute, else level 1.
func collectHeadings(root tree.Node) []heading {
	var headings []heading
	tree.Walk(root, func(n tree.Node) bool {
		if n.Role().IsHeading() {
			headings = append(headings, heading{node: n, level: resolveLevel(n)})
		}
		return true
	})
	return headings
}

func resolveLevel(n tree.Node) int {
	if level, ok := n.Role().HeadingLevel(); ok {
		return level
	}
	if v, ok := n.Attribute(tree.AttrKeyLevel); ok {
		if level, ok := v.AsInt(); ok && level > 0 {
			return int(level)
		}
	}
	return 1
}

// checkH1Count reports every level-1 heading when there is more than one,
// and the first heading when there is none.
func (c *Checker) checkH1Count(headings []heading, result *Result) {
	count := 0
	for _, h := range headings {
		if h.level == 1 {
			count++
		}
	}

	switch {
	case count > 1:
		for _, h := range headings {
			if h.level == 1 {
				c.record(result, h, CodeMultipleH1, report.SeverityCritical,
					fmt.Sprintf("document has %d level-1 headings, expected exactly one", count),
					map[string]string{"h1Count": strconv.Itoa(count)})
			}
		}
	case count == 0:
		c.record(result, headings[0], CodeNoH1, report.SeverityCritical,
			"document has no level-1 heading",
			nil)
	}
}

// checkSequence scans headings in order and reports every skipped level.
// previousLevel is updated unconditionally so one out-of-range heading does
// not cascade false positives onto subsequent legal ones.
func (c *Checker) checkSequence(headings []heading, result *Result) {
	previousLevel := 0
	for i, h := range headings {
		if i > 0 && h.level > previousLevel+1 {
			gap := h.level - previousLevel - 1
			c.record(result, h, CodeLevelSkipped, report.SeverityCritical,
				fmt.Sprintf("heading level jumps from %d to %d, skipping %d level(s)", previousLevel, h.level, gap),
				map[string]string{
					"previousLevel": strconv.Itoa(previousLevel),
					"level":         strconv.Itoa(h.level),
					"gap":           strconv.Itoa(gap),
				})
		}
		previousLevel = h.level
	}
}

func (c *Checker) checkContent(h heading, result *Result) {
	text := strings.TrimSpace(tree.Text(h.node))
	if text == "" {
		text = strings.TrimSpace(tree.TextAlternative(h.node))
	}

	if len(h.node.Children()) == 0 && text == "" {
		c.record(result, h, CodeEmptyHeading, report.SeverityCritical,
			"heading has no children and no text alternative",
			nil)
		return
	}

	if text == "" {
		return
	}

	lowered := strings.ToLower(text)
	if len([]rune(text)) < c.config.MinTextLength {
		c.record(result, h, CodeNonMeaningfulText, report.SeverityWarning,
			fmt.Sprintf("heading text %q is shorter than %d characters", text, c.config.MinTextLength),
			map[string]string{"text": text})
		return
	}
	for _, phrase := range c.config.GenericPhrases {
		if lowered == phrase {
			c.record(result, h, CodeNonMeaningfulText, report.SeverityWarning,
				fmt.Sprintf("heading text %q is a generic phrase", text),
				map[string]string{"text": text})
			return
		}
	}
}

func (c *Checker) record(result *Result, h heading, code tree.ErrorCode, severity report.Severity, message string, context map[string]string) {
	page := report.NoPage
	if box, ok := h.node.Box(); ok {
		page = box.PageIndex
	}
	h.node.MarkError(code)
	result.Issues = append(result.Issues, Issue{
		Code:      code,
		Severity:  severity,
		NodeID:    h.node.ID(),
		Level:     h.level,
		Message:   message,
		PageIndex: page,
		Context:   context,
	})
}
