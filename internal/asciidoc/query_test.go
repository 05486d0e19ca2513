package asciidoc

import "testing"

func buildSampleTree() *blockNode {
	child1 := newPlainText(0, 5, []byte("hello"))
	child2 := newBlock(NodeParagraph, 5, 10, []byte("world"), []Node{newPlainText(5, 10, []byte("world"))}, BlockMetadata{NamedAttrs: NewAttributeList()})
	root := newBlock(NodeSection, 0, 10, []byte("hello world"), []Node{child1, child2}, BlockMetadata{NamedAttrs: NewAttributeList()})

	return root
}

func TestFindByType(t *testing.T) {
	root := buildSampleTree()

	paras := FindByType(root, NodeParagraph)
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}
}

func TestFindFirstByType(t *testing.T) {
	root := buildSampleTree()

	first := FindFirstByType(root, NodePlainText)
	if first == nil {
		t.Fatal("expected a plain text node, got nil")
	}
	if string(first.Source()) != "hello" {
		t.Errorf("expected first plain text 'hello', got %q", string(first.Source()))
	}
}

func TestAndOrNot(t *testing.T) {
	root := buildSampleTree()

	pred := And(IsType(NodeParagraph), Not(IsType(NodeSection)))
	if !Exists(root, pred) {
		t.Error("expected a node matching And(paragraph, not section)")
	}

	orPred := Or(IsType(NodeSection), IsType(NodeBold))
	if Count(root, orPred) != 1 {
		t.Errorf("expected exactly 1 match for Or(section, bold), got %d", Count(root, orPred))
	}
}

func TestInRange(t *testing.T) {
	root := buildSampleTree()

	inRange := Find(root, InRange(5, 10))
	for _, n := range inRange {
		s, e := n.Span()
		if s < 5 || e > 10 {
			t.Errorf("node span (%d,%d) outside requested range", s, e)
		}
	}
}

func TestAllTrueForTautology(t *testing.T) {
	root := buildSampleTree()
	if !All(root, func(Node) bool { return true }) {
		t.Error("expected All to hold for a predicate matching everything")
	}
}

func TestHasDescendant(t *testing.T) {
	root := buildSampleTree()
	if !HasDescendant(IsType(NodePlainText))(root) {
		t.Error("expected root to have a plain text descendant")
	}
}
