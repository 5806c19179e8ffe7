// Package structure provides the structure analyzer: a depth-first pass over
// a document tree enforcing parent/child role compatibility, required-child
// presence, required attributes, emptiness, and identifier uniqueness.
package structure

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/kmorwood/tagcheck/report"
	"github.com/kmorwood/tagcheck/tree"
)

// Error codes reported by the structure analyzer.
const (
	CodeNestingViolation     tree.ErrorCode = "nesting-violation"
	CodeMissingRequiredChild tree.ErrorCode = "missing-required-child"
	CodeEmptyElement         tree.ErrorCode = "empty-element"
	CodeDuplicateID          tree.ErrorCode = "duplicate-id"
	CodeMissingAltText       tree.ErrorCode = "missing-alt-text"
	CodeLinkNoContent        tree.ErrorCode = "link-no-content"
	CodeInvalidLanguage      tree.ErrorCode = "invalid-language"
	CodeMaxDepthExceeded     tree.ErrorCode = "max-depth-exceeded"
)

// Config holds the independent switches of the structure analyzer.
type Config struct {
	// CheckNesting enables parent/child role compatibility checking.
	CheckNesting bool

	// CheckRequiredChildren enables role-specific required-child rules.
	CheckRequiredChildren bool

	// CheckAttributes enables role-specific attribute rules (alternative
	// text on figures, link content, Lang well-formedness).
	CheckAttributes bool

	// CheckEmptyElements enables flagging of nodes with neither children
	// nor content, outside the allow-list of permitted-empty roles.
	CheckEmptyElements bool

	// CheckDuplicateIDs enables identifier uniqueness checking.
	CheckDuplicateIDs bool

	// MaxDepth flags nodes nested deeper than this when > 0.
	// 0 disables the check.
	MaxDepth int
}

// DefaultConfig returns the default configuration with every check enabled
// and no depth limit.
func DefaultConfig() Config {
	return Config{
		CheckNesting:          true,
		CheckRequiredChildren: true,
		CheckAttributes:       true,
		CheckEmptyElements:    true,
		CheckDuplicateIDs:     true,
		MaxDepth:              0,
	}
}

// Violation is one structural defect. The analyzer reports raw structural
// facts; severity is assigned when converting to report findings.
type Violation struct {
	// Code identifies the kind of defect.
	Code tree.ErrorCode

	// NodeID identifies the affected node.
	NodeID string

	// Role is the role of the affected node.
	Role tree.Role

	// Message describes the defect.
	Message string

	// PageIndex is the affected page, or report.NoPage.
	PageIndex int

	// Context carries check-specific details (for nesting violations, the
	// parent and child role names).
	Context map[string]string
}

// Result holds the outcome of one analysis pass.
type Result struct {
	// Violations in traversal order.
	Violations []Violation

	// TotalNodeCount is the number of nodes visited.
	TotalNodeCount int

	// MaxDepth is the deepest node depth encountered.
	MaxDepth int
}

// Findings converts the result to the flat reporting contract. Every
// structure violation maps to error severity.
func (r *Result) Findings() []report.Finding {
	findings := make([]report.Finding, 0, len(r.Violations))
	for _, v := range r.Violations {
		findings = append(findings, report.Finding{
			Category:  report.CategoryStructure,
			Code:      v.Code,
			Severity:  report.SeverityError,
			NodeID:    v.NodeID,
			Message:   v.Message,
			PageIndex: v.PageIndex,
			Context:   v.Context,
		})
	}
	return findings
}

// Analyzer enforces the general structural rules of a tagged document.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates a structure analyzer with default configuration.
func NewAnalyzer() *Analyzer {
	return &Analyzer{config: DefaultConfig()}
}

// NewAnalyzerWithConfig creates a structure analyzer with custom
// configuration.
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// Analyze traverses the tree rooted at root and reports every structural
// defect it finds. Findings are additive: no check suppresses another, and
// an invalid subtree never stops traversal of its siblings.
func (a *Analyzer) Analyze(root tree.Node) *Result {
	result := &Result{}
	if root == nil {
		return result
	}

	seen := make(map[string]bool)
	a.visit(root, nil, seen, result)
	return result
}

func (a *Analyzer) visit(n tree.Node, parent tree.Node, seen map[string]bool, result *Result) {
	result.TotalNodeCount++
	if n.Depth() > result.MaxDepth {
		result.MaxDepth = n.Depth()
	}

	if a.config.CheckDuplicateIDs {
		a.checkDuplicateID(n, seen, result)
	}
	if a.config.CheckNesting && parent != nil {
		a.checkNesting(parent, n, result)
	}
	if a.config.CheckRequiredChildren {
		a.checkRequiredChildren(n, result)
	}
	if a.config.CheckAttributes {
		a.checkAttributes(n, result)
	}
	if a.config.CheckEmptyElements {
		a.checkEmpty(n, result)
	}
	if a.config.MaxDepth > 0 && n.Depth() > a.config.MaxDepth {
		a.record(result, n, CodeMaxDepthExceeded,
			fmt.Sprintf("%s nested at depth %d exceeds the maximum depth %d", n.Role(), n.Depth(), a.config.MaxDepth),
			map[string]string{"depth": strconv.Itoa(n.Depth()), "maxDepth": strconv.Itoa(a.config.MaxDepth)})
	}

	for _, c := range n.Children() {
		a.visit(c, n, seen, result)
	}
}

// checkDuplicateID reports every repeated identifier. The first occurrence
// wins; repeats are reported and traversal continues.
func (a *Analyzer) checkDuplicateID(n tree.Node, seen map[string]bool, result *Result) {
	if seen[n.ID()] {
		a.record(result, n, CodeDuplicateID,
			fmt.Sprintf("identifier %q is used by more than one node", n.ID()),
			map[string]string{"id": n.ID()})
		return
	}
	seen[n.ID()] = true
}

func (a *Analyzer) checkNesting(parent, child tree.Node, result *Result) {
	if childAllowed(parent.Role(), child.Role()) {
		return
	}
	a.record(result, child, CodeNestingViolation,
		fmt.Sprintf("%s is not a legal child of %s", child.Role(), parent.Role()),
		map[string]string{
			"parentRole": parent.Role().String(),
			"childRole":  child.Role().String(),
		})
}

func (a *Analyzer) checkRequiredChildren(n tree.Node, result *Result) {
	switch n.Role() {
	case tree.RoleListItem:
		for _, c := range n.Children() {
			if c.Role() == tree.RoleListBody {
				return
			}
		}
		a.record(result, n, CodeMissingRequiredChild,
			"list item has no list body",
			map[string]string{"requiredRole": tree.RoleListBody.String()})

	case tree.RoleTable, tree.RoleTableRow:
		if len(n.Children()) == 0 {
			a.record(result, n, CodeMissingRequiredChild,
				fmt.Sprintf("%s has no children", n.Role()),
				map[string]string{"role": n.Role().String()})
		}
	}
}

func (a *Analyzer) checkAttributes(n tree.Node, result *Result) {
	if n.Role().RequiresAlternativeText() && !tree.HasTextAlternative(n) {
		a.record(result, n, CodeMissingAltText,
			fmt.Sprintf("%s has neither Alt nor ActualText", n.Role()),
			nil)
	}

	if n.Role() == tree.RoleLink && len(n.Children()) == 0 && !tree.HasTextAlternative(n) {
		a.record(result, n, CodeLinkNoContent,
			"link has neither children nor a text alternative",
			nil)
	}

	if v, ok := n.Attribute(tree.AttrKeyLang); ok {
		if lang, isStr := v.AsString(); isStr && strings.TrimSpace(lang) != "" {
			if _, err := language.Parse(lang); err != nil {
				a.record(result, n, CodeInvalidLanguage,
					fmt.Sprintf("Lang attribute %q is not a well-formed language tag", lang),
					map[string]string{"lang": lang})
			}
		}
	}
}

func (a *Analyzer) checkEmpty(n tree.Node, result *Result) {
	if len(n.Children()) > 0 || mayBeEmpty[n.Role()] {
		return
	}
	if tree.HasTextAlternative(n) || hasOwnContent(n) {
		return
	}
	a.record(result, n, CodeEmptyElement,
		fmt.Sprintf("%s has no children, no content and no text alternative", n.Role()),
		nil)
}

// hasOwnContent reports whether the node carries content that does not live
// in child nodes: text on content nodes, images or line art on figures.
func hasOwnContent(n tree.Node) bool {
	switch v := n.(type) {
	case *tree.ContentNode:
		return strings.TrimSpace(v.Text()) != ""
	case *tree.FigureNode:
		return len(v.Images()) > 0 || len(v.LineArt()) > 0
	default:
		return false
	}
}

func (a *Analyzer) record(result *Result, n tree.Node, code tree.ErrorCode, message string, context map[string]string) {
	page := report.NoPage
	if box, ok := n.Box(); ok {
		page = box.PageIndex
	}
	n.MarkError(code)
	result.Violations = append(result.Violations, Violation{
		Code:      code,
		NodeID:    n.ID(),
		Role:      n.Role(),
		Message:   message,
		PageIndex: page,
		Context:   context,
	})
}
