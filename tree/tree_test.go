package tree

import (
	"sync"
	"testing"

	"github.com/kmorwood/tagcheck/geom"
)

func TestRole_Facts(t *testing.T) {
	tests := []struct {
		role         Role
		name         string
		isHeading    bool
		headingLevel int
		isTable      bool
		requiresAlt  bool
		isGrouping   bool
	}{
		{role: RoleDocument, name: "Document", isGrouping: true},
		{role: RoleParagraph, name: "P"},
		{role: RoleH1, name: "H1", isHeading: true, headingLevel: 1},
		{role: RoleH6, name: "H6", isHeading: true, headingLevel: 6},
		{role: RoleHeading, name: "H", isHeading: true},
		{role: RoleTableRow, name: "TR", isTable: true},
		{role: RoleFigure, name: "Figure", requiresAlt: true},
		{role: RoleFormula, name: "Formula", requiresAlt: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.role.String() != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, tt.role.String())
			}
			if tt.role.IsHeading() != tt.isHeading {
				t.Errorf("IsHeading: expected %v", tt.isHeading)
			}
			level, ok := tt.role.HeadingLevel()
			if tt.headingLevel > 0 {
				if !ok || level != tt.headingLevel {
					t.Errorf("expected heading level %d, got %d (ok=%v)", tt.headingLevel, level, ok)
				}
			} else if ok {
				t.Errorf("expected no intrinsic heading level, got %d", level)
			}
			if tt.role.IsTable() != tt.isTable {
				t.Errorf("IsTable: expected %v", tt.isTable)
			}
			if tt.role.RequiresAlternativeText() != tt.requiresAlt {
				t.Errorf("RequiresAlternativeText: expected %v", tt.requiresAlt)
			}
			if tt.role.IsGrouping() != tt.isGrouping {
				t.Errorf("IsGrouping: expected %v", tt.isGrouping)
			}
		})
	}
}

func TestParseRole_RoundTrip(t *testing.T) {
	for role, f := range factsTable {
		if role == RoleUnknown {
			continue
		}
		if got := ParseRole(f.name); got != role {
			t.Errorf("ParseRole(%q) = %v, want %v", f.name, got, role)
		}
	}
	if got := ParseRole("NoSuchRole"); got != RoleUnknown {
		t.Errorf("expected RoleUnknown for unrecognized name, got %v", got)
	}
}

func TestAttrValue_Variants(t *testing.T) {
	if s, ok := StringValue("hello").AsString(); !ok || s != "hello" {
		t.Error("string round trip failed")
	}
	if b, ok := BoolValue(true).AsBool(); !ok || !b {
		t.Error("bool round trip failed")
	}
	if i, ok := IntValue(42).AsInt(); !ok || i != 42 {
		t.Error("int round trip failed")
	}
	if f, ok := FloatValue(2.5).AsFloat(); !ok || f != 2.5 {
		t.Error("float round trip failed")
	}
	if !NullValue().IsNull() {
		t.Error("expected null value")
	}

	// Whole floats convert to int, fractional ones do not.
	if i, ok := FloatValue(3.0).AsInt(); !ok || i != 3 {
		t.Error("whole float should convert to int")
	}
	if _, ok := FloatValue(3.5).AsInt(); ok {
		t.Error("fractional float should not convert to int")
	}

	arr := ArrayValue(StringValue("a"), IntValue(1))
	items, ok := arr.AsArray()
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 array items")
	}
	if _, ok := arr.AsString(); ok {
		t.Error("array should not read as string")
	}
}

func TestNode_DepthInvariant(t *testing.T) {
	root := NewContent("root", RoleDocument)
	sect := NewContent("sect", RoleSection)
	para := NewContent("para", RoleParagraph)

	sect.AddChild(para)
	root.AddChild(sect)

	if root.Depth() != 0 {
		t.Errorf("expected root depth 0, got %d", root.Depth())
	}
	if sect.Depth() != 1 {
		t.Errorf("expected section depth 1, got %d", sect.Depth())
	}
	if para.Depth() != 2 {
		t.Errorf("expected paragraph depth 2, got %d", para.Depth())
	}
}

func TestNode_GeneratedID(t *testing.T) {
	a := NewContent("", RoleParagraph)
	b := NewContent("", RoleParagraph)

	if a.ID() == "" || b.ID() == "" {
		t.Fatal("expected generated identifiers")
	}
	if a.ID() == b.ID() {
		t.Error("generated identifiers should differ")
	}
}

func TestNode_ErrorSetConcurrentInsert(t *testing.T) {
	n := NewContent("n", RoleParagraph)
	codes := []ErrorCode{"a", "b", "c", "d"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n.MarkError(codes[i%len(codes)])
		}(i)
	}
	wg.Wait()

	got := n.ErrorCodes()
	if len(got) != len(codes) {
		t.Fatalf("expected %d codes, got %v", len(codes), got)
	}
	for i, c := range codes {
		if got[i] != c {
			t.Errorf("expected sorted codes %v, got %v", codes, got)
			break
		}
	}
	if !n.HasError("a") {
		t.Error("expected HasError(a)")
	}
	if n.HasError("z") {
		t.Error("unexpected HasError(z)")
	}
}

func TestContentNode_DominantFont(t *testing.T) {
	n := NewContent("p", RoleParagraph)
	n.AddBlock(TextBlock{Lines: []TextLine{{
		Chunks: []TextChunk{
			{Text: "short", FontSize: 18, FontName: "Helvetica-Bold", Style: TextStyle{Bold: true}},
			{Text: "a much longer run of body text", FontSize: 11, FontName: "Helvetica"},
		},
	}}})

	dominant := n.DominantFont()
	if dominant.Size != 11 || dominant.Name != "Helvetica" {
		t.Errorf("expected 11pt Helvetica to dominate, got %+v", dominant)
	}
}

func TestFigureNode_Caption(t *testing.T) {
	fig := NewFigure("fig")
	fig.AddImage(ImageChunk{Box: geom.NewBox(0, 0, 0, 100, 80), WidthPx: 200, HeightPx: 160})

	if _, ok := fig.Caption(); ok {
		t.Error("expected no caption")
	}

	caption := NewContent("cap", RoleCaption)
	fig.AddChild(caption)

	got, ok := fig.Caption()
	if !ok || got.ID() != "cap" {
		t.Errorf("expected caption cap, got %v (ok=%v)", got, ok)
	}
}

func TestTableNode_RowsAndCells(t *testing.T) {
	table := NewTable("t")

	head := NewContent("thead", RoleTableHead)
	headRow := NewContent("r0", RoleTableRow)
	headRow.AddChild(NewContent("h1", RoleTableHeaderCell))
	headRow.AddChild(NewContent("h2", RoleTableHeaderCell))
	head.AddChild(headRow)
	table.AddChild(head)

	body := NewContent("tbody", RoleTableBody)
	bodyRow := NewContent("r1", RoleTableRow)
	bodyRow.AddChild(NewContent("d1", RoleTableDataCell))
	bodyRow.AddChild(NewContent("d2", RoleTableDataCell))
	body.AddChild(bodyRow)
	table.AddChild(body)

	directRow := NewContent("r2", RoleTableRow)
	directRow.AddChild(NewContent("d3", RoleTableDataCell))
	table.AddChild(directRow)

	if groups := table.RowGroups(); len(groups) != 2 {
		t.Errorf("expected 2 row groups, got %d", len(groups))
	}

	rows := table.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].ID() != "r0" || rows[1].ID() != "r1" || rows[2].ID() != "r2" {
		t.Errorf("rows out of order: %s %s %s", rows[0].ID(), rows[1].ID(), rows[2].ID())
	}

	if cells := Cells(rows[0]); len(cells) != 2 {
		t.Errorf("expected 2 cells in header row, got %d", len(cells))
	}
	if got := table.HeaderCells(); len(got) != 2 {
		t.Errorf("expected 2 header cells, got %d", len(got))
	}
	if got := table.DataCells(); len(got) != 3 {
		t.Errorf("expected 3 data cells, got %d", len(got))
	}
}

func TestTableNode_VisualBorder(t *testing.T) {
	table := NewTable("t")

	if _, _, ok := table.VisualBorder(); ok {
		t.Error("expected no border before SetVisualBorder")
	}

	table.SetVisualBorder([]float64{30, 0, 60}, []float64{20, 0, 10})
	xs, ys, ok := table.VisualBorder()
	if !ok {
		t.Fatal("expected border after SetVisualBorder")
	}
	if xs[0] != 0 || xs[1] != 30 || xs[2] != 60 {
		t.Errorf("expected sorted x lines, got %v", xs)
	}
	if ys[0] != 0 || ys[1] != 10 || ys[2] != 20 {
		t.Errorf("expected sorted y lines, got %v", ys)
	}
}

func TestListNode_Accessors(t *testing.T) {
	list := NewList("l")
	list.SetKind(ListKindRomanLower)
	list.SetStartNumber(4)
	list.SetNestingLevel(1)

	item := NewContent("li", RoleListItem)
	list.AddChild(item)
	list.AddChild(NewContent("cap", RoleCaption))

	if list.Kind() != ListKindRomanLower {
		t.Errorf("unexpected kind %v", list.Kind())
	}
	if !list.Kind().IsOrdered() {
		t.Error("roman numbering is ordered")
	}
	if ListKindUnordered.IsOrdered() {
		t.Error("unordered numbering is not ordered")
	}
	if start, ok := list.StartNumber(); !ok || start != 4 {
		t.Errorf("expected start 4, got %d (ok=%v)", start, ok)
	}
	if list.NestingLevel() != 1 {
		t.Errorf("expected nesting level 1, got %d", list.NestingLevel())
	}
	if items := list.Items(); len(items) != 1 || items[0].ID() != "li" {
		t.Errorf("unexpected items: %v", items)
	}
}

func TestWalk_PreOrderAndPrune(t *testing.T) {
	root := NewContent("root", RoleDocument)
	a := NewContent("a", RoleSection)
	b := NewContent("b", RoleParagraph)
	c := NewContent("c", RoleSection)
	a.AddChild(b)
	root.AddChild(a)
	root.AddChild(c)

	var order []string
	Walk(root, func(n Node) bool {
		order = append(order, n.ID())
		return true
	})
	want := []string{"root", "a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected pre-order %v, got %v", want, order)
		}
	}

	// Pruning a skips b.
	order = nil
	Walk(root, func(n Node) bool {
		order = append(order, n.ID())
		return n.ID() != "a"
	})
	if len(order) != 3 || order[1] != "a" || order[2] != "c" {
		t.Errorf("expected pruned walk [root a c], got %v", order)
	}
}

func TestText_SubtreeConcatenation(t *testing.T) {
	root := NewContent("root", RoleSection)
	p1 := NewContent("p1", RoleParagraph)
	p1.AddBlock(TextBlock{Lines: []TextLine{{Chunks: []TextChunk{{Text: "Hello"}}}}})
	p2 := NewContent("p2", RoleParagraph)
	p2.AddBlock(TextBlock{Lines: []TextLine{{Chunks: []TextChunk{{Text: "world"}}}}})
	root.AddChild(p1)
	root.AddChild(p2)

	if got := Text(root); got != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", got)
	}
}

func TestTextAlternative_AltWinsOverActualText(t *testing.T) {
	fig := NewFigure("f")
	if HasTextAlternative(fig) {
		t.Error("expected no text alternative")
	}

	fig.SetAttribute(AttrKeyActualText, StringValue("actual"))
	if got := TextAlternative(fig); got != "actual" {
		t.Errorf("expected ActualText fallback, got %q", got)
	}

	fig.SetAttribute(AttrKeyAlt, StringValue("a chart"))
	if got := TextAlternative(fig); got != "a chart" {
		t.Errorf("expected Alt to win, got %q", got)
	}
}
