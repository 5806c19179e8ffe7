package tree

// Role is the structural/semantic classification of a node. The enumeration
// is closed and mirrors the standard structure types of tagged documents;
// analyzers must consult the Role for role semantics rather than keeping
// their own role tables.
type Role int

const (
	RoleUnknown Role = iota

	// Grouping roles
	RoleDocument
	RolePart
	RoleArticle
	RoleSection
	RoleDivision
	RoleBlockQuote
	RoleCaption
	RoleTOC
	RoleTOCItem
	RoleIndex
	RoleNonStruct
	RolePrivate

	// Paragraph-like roles
	RoleParagraph
	RoleHeading
	RoleH1
	RoleH2
	RoleH3
	RoleH4
	RoleH5
	RoleH6

	// List roles
	RoleList
	RoleListItem
	RoleLabel
	RoleListBody

	// Table roles
	RoleTable
	RoleTableRow
	RoleTableHeaderCell
	RoleTableDataCell
	RoleTableHead
	RoleTableBody
	RoleTableFoot

	// Inline roles
	RoleSpan
	RoleQuote
	RoleNote
	RoleReference
	RoleBibEntry
	RoleCode
	RoleLink
	RoleAnnotation
	RoleRuby
	RoleRubyBase
	RoleRubyText
	RoleRubyPunctuation
	RoleWarichu
	RoleWarichuText
	RoleWarichuPunctuation

	// Illustration roles
	RoleFigure
	RoleFormula
	RoleForm

	// Presentational roles
	RoleArtifact
	RoleHeader
	RoleFooter
	RoleWatermark
)

// roleFacts holds the static facts attached to each role.
type roleFacts struct {
	name             string
	headingLevel     int // 0 for non-headings and the generic heading role
	isHeading        bool
	isList           bool
	isTable          bool
	isBlockLevel     bool
	isInline         bool
	isPresentational bool
	requiresAltText  bool
	isGrouping       bool
}

// factsTable is the single source of truth for role semantics.
var factsTable = map[Role]roleFacts{
	RoleUnknown:   {name: "Unknown"},
	RoleDocument:  {name: "Document", isBlockLevel: true, isGrouping: true},
	RolePart:      {name: "Part", isBlockLevel: true, isGrouping: true},
	RoleArticle:   {name: "Art", isBlockLevel: true, isGrouping: true},
	RoleSection:   {name: "Sect", isBlockLevel: true, isGrouping: true},
	RoleDivision:  {name: "Div", isBlockLevel: true, isGrouping: true},
	RoleBlockQuote: {name: "BlockQuote", isBlockLevel: true, isGrouping: true},
	RoleCaption:   {name: "Caption", isBlockLevel: true},
	RoleTOC:       {name: "TOC", isBlockLevel: true, isGrouping: true},
	RoleTOCItem:   {name: "TOCI", isBlockLevel: true},
	RoleIndex:     {name: "Index", isBlockLevel: true, isGrouping: true},
	RoleNonStruct: {name: "NonStruct", isPresentational: true, isGrouping: true},
	RolePrivate:   {name: "Private", isPresentational: true, isGrouping: true},

	RoleParagraph: {name: "P", isBlockLevel: true},
	RoleHeading:   {name: "H", isHeading: true, isBlockLevel: true},
	RoleH1:        {name: "H1", isHeading: true, headingLevel: 1, isBlockLevel: true},
	RoleH2:        {name: "H2", isHeading: true, headingLevel: 2, isBlockLevel: true},
	RoleH3:        {name: "H3", isHeading: true, headingLevel: 3, isBlockLevel: true},
	RoleH4:        {name: "H4", isHeading: true, headingLevel: 4, isBlockLevel: true},
	RoleH5:        {name: "H5", isHeading: true, headingLevel: 5, isBlockLevel: true},
	RoleH6:        {name: "H6", isHeading: true, headingLevel: 6, isBlockLevel: true},

	RoleList:     {name: "L", isList: true, isBlockLevel: true, isGrouping: true},
	RoleListItem: {name: "LI", isList: true, isBlockLevel: true},
	RoleLabel:    {name: "Lbl", isList: true},
	RoleListBody: {name: "LBody", isList: true},

	RoleTable:           {name: "Table", isTable: true, isBlockLevel: true},
	RoleTableRow:        {name: "TR", isTable: true},
	RoleTableHeaderCell: {name: "TH", isTable: true},
	RoleTableDataCell:   {name: "TD", isTable: true},
	RoleTableHead:       {name: "THead", isTable: true, isGrouping: true},
	RoleTableBody:       {name: "TBody", isTable: true, isGrouping: true},
	RoleTableFoot:       {name: "TFoot", isTable: true, isGrouping: true},

	RoleSpan:               {name: "Span", isInline: true},
	RoleQuote:              {name: "Quote", isInline: true},
	RoleNote:               {name: "Note", isBlockLevel: true},
	RoleReference:          {name: "Reference", isInline: true},
	RoleBibEntry:           {name: "BibEntry", isBlockLevel: true},
	RoleCode:               {name: "Code", isInline: true},
	RoleLink:               {name: "Link", isInline: true},
	RoleAnnotation:         {name: "Annot", isInline: true},
	RoleRuby:               {name: "Ruby", isInline: true, isGrouping: true},
	RoleRubyBase:           {name: "RB", isInline: true},
	RoleRubyText:           {name: "RT", isInline: true},
	RoleRubyPunctuation:    {name: "RP", isInline: true},
	RoleWarichu:            {name: "Warichu", isInline: true, isGrouping: true},
	RoleWarichuText:        {name: "WT", isInline: true},
	RoleWarichuPunctuation: {name: "WP", isInline: true},

	RoleFigure:  {name: "Figure", isBlockLevel: true, requiresAltText: true},
	RoleFormula: {name: "Formula", isBlockLevel: true, requiresAltText: true},
	RoleForm:    {name: "Form", isBlockLevel: true},

	RoleArtifact:  {name: "Artifact", isPresentational: true},
	RoleHeader:    {name: "Header", isPresentational: true},
	RoleFooter:    {name: "Footer", isPresentational: true},
	RoleWatermark: {name: "Watermark", isPresentational: true},
}

func (r Role) facts() roleFacts {
	return factsTable[r]
}

// String returns the tag name of the role as it appears in tagged documents.
func (r Role) String() string {
	f, ok := factsTable[r]
	if !ok {
		return "Unknown"
	}
	return f.name
}

// IsHeading reports whether the role is a heading role (H or H1-H6).
func (r Role) IsHeading() bool {
	return r.facts().isHeading
}

// HeadingLevel returns the intrinsic heading level (1-6). The second return
// value is false for non-headings and for the generic H role, which carries
// its level in a Level attribute instead.
func (r Role) HeadingLevel() (int, bool) {
	f := r.facts()
	return f.headingLevel, f.headingLevel > 0
}

// IsList reports whether the role participates in list structure.
func (r Role) IsList() bool {
	return r.facts().isList
}

// IsTable reports whether the role participates in table structure.
func (r Role) IsTable() bool {
	return r.facts().isTable
}

// IsBlockLevel reports whether the role is a block-level element.
func (r Role) IsBlockLevel() bool {
	return r.facts().isBlockLevel
}

// IsInline reports whether the role is an inline element.
func (r Role) IsInline() bool {
	return r.facts().isInline
}

// IsPresentational reports whether the role carries no semantic content
// (artifacts, pagination, watermarks).
func (r Role) IsPresentational() bool {
	return r.facts().isPresentational
}

// RequiresAlternativeText reports whether nodes of this role must provide a
// text alternative to be accessible.
func (r Role) RequiresAlternativeText() bool {
	return r.facts().requiresAltText
}

// IsGrouping reports whether the role is a pure container that groups other
// content without contributing content of its own.
func (r Role) IsGrouping() bool {
	return r.facts().isGrouping
}

// ParseRole maps a tag name to its Role. Unrecognized names map to
// RoleUnknown.
func ParseRole(name string) Role {
	for role, f := range factsTable {
		if f.name == name {
			return role
		}
	}
	return RoleUnknown
}
