package asciidoc

import "testing"

func mustParse(t *testing.T, source string, opts ParserOptions) *Document {
	t.Helper()
	doc, _, perr := Parse([]byte(source), "test.adoc", opts)
	if perr != nil {
		t.Fatalf("Parse returned fatal error: %v", perr)
	}

	return doc
}

func TestParseDocumentTitleAndParagraph(t *testing.T) {
	doc := mustParse(t, "= My Title\n\nHello world.\n", ParserOptions{})

	if doc.Title() == nil {
		t.Fatal("expected a document title")
	}
	if len(doc.Children()) != 1 {
		t.Fatalf("expected 1 top-level block, got %d", len(doc.Children()))
	}
	if doc.Children()[0].Type() != NodeParagraph {
		t.Errorf("expected paragraph, got %v", doc.Children()[0].Type())
	}
}

func TestParseSectionNesting(t *testing.T) {
	doc := mustParse(t, "== Level One\n\nText.\n\n=== Level Two\n\nMore text.\n", ParserOptions{})

	if len(doc.Children()) != 1 {
		t.Fatalf("expected 1 top-level section, got %d", len(doc.Children()))
	}
	sec, ok := doc.Children()[0].(*blockNode)
	if !ok || sec.Type() != NodeSection {
		t.Fatalf("expected top-level section, got %T", doc.Children()[0])
	}
	if sec.Level() != 1 {
		t.Errorf("expected level 1, got %d", sec.Level())
	}

	var nested *blockNode
	for _, c := range sec.Children() {
		if c.Type() == NodeSection {
			nested = c.(*blockNode)
		}
	}
	if nested == nil {
		t.Fatal("expected a nested level-2 section")
	}
	if nested.Level() != 2 {
		t.Errorf("expected nested level 2, got %d", nested.Level())
	}
}

func TestParseAdmonitionParagraph(t *testing.T) {
	doc := mustParse(t, "NOTE: Remember this.\n", ParserOptions{})

	if len(doc.Children()) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Children()))
	}
	adm, ok := doc.Children()[0].(*blockNode)
	if !ok || adm.Type() != NodeAdmonition {
		t.Fatalf("expected admonition, got %T", doc.Children()[0])
	}
	if adm.AdmonitionKind() != "NOTE" {
		t.Errorf("expected NOTE, got %q", adm.AdmonitionKind())
	}
}

func TestParseUnorderedList(t *testing.T) {
	doc := mustParse(t, "* one\n* two\n* three\n", ParserOptions{})

	if len(doc.Children()) != 1 {
		t.Fatalf("expected 1 list block, got %d", len(doc.Children()))
	}
	list, ok := doc.Children()[0].(*blockNode)
	if !ok || list.Type() != NodeList {
		t.Fatalf("expected list, got %T", doc.Children()[0])
	}
	if list.ListKind() != "unordered" {
		t.Errorf("expected unordered, got %q", list.ListKind())
	}
	if len(list.Children()) != 3 {
		t.Errorf("expected 3 items, got %d", len(list.Children()))
	}
}

func TestParseTable(t *testing.T) {
	source := "|===\n|A |B\n|1 |2\n|===\n"
	doc := mustParse(t, source, ParserOptions{})

	if len(doc.Children()) != 1 {
		t.Fatalf("expected 1 table, got %d", len(doc.Children()))
	}
	table, ok := doc.Children()[0].(*Table)
	if !ok {
		t.Fatalf("expected *Table, got %T", doc.Children()[0])
	}
	rows := table.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[0].Cells()) != 2 {
		t.Errorf("expected 2 cells in first row, got %d", len(rows[0].Cells()))
	}
}

func TestParseListingBlockPreservesSource(t *testing.T) {
	source := "----\nraw <text>\n----\n"
	doc := mustParse(t, source, ParserOptions{})

	if len(doc.Children()) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Children()))
	}
	listing, ok := doc.Children()[0].(*blockNode)
	if !ok || listing.Type() != NodeListing {
		t.Fatalf("expected listing, got %T", doc.Children()[0])
	}
	if string(listing.Source()) != "raw <text>" {
		t.Errorf("unexpected listing source: %q", listing.Source())
	}
}

func TestParseInlineBoldAndItalic(t *testing.T) {
	doc := mustParse(t, "A *bold* and _italic_ word.\n", ParserOptions{})

	para := doc.Children()[0]
	var sawBold, sawItalic bool
	for _, c := range para.Children() {
		switch c.Type() {
		case NodeBold:
			sawBold = true
		case NodeItalic:
			sawItalic = true
		}
	}
	if !sawBold {
		t.Error("expected a bold inline node")
	}
	if !sawItalic {
		t.Error("expected an italic inline node")
	}
}

func TestParseAttributeMissingSkipWarns(t *testing.T) {
	doc := mustParse(t, "Value is {undefined-attr}.\n", ParserOptions{AttributeMissing: AttributeMissingSkip})

	if len(doc.Diagnostics().All()) == 0 {
		t.Fatal("expected a diagnostic for the missing attribute")
	}
	found := false
	for _, d := range doc.Diagnostics().All() {
		if d.Kind == DiagnosticAttributeMissing {
			found = true
		}
	}
	if !found {
		t.Error("expected a DiagnosticAttributeMissing entry")
	}
}

func TestParseManpageDoctype(t *testing.T) {
	doc := mustParse(t, "= mytool(1)\n\nDescription.\n", ParserOptions{Doctype: DoctypeManpage})

	if doc.Doctype() != DoctypeManpage {
		t.Errorf("expected manpage doctype, got %v", doc.Doctype())
	}
}
