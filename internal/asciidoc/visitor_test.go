package asciidoc

import "testing"

type countingVisitor struct {
	BaseEnterLeaveVisitor
	blockEnters  int
	inlineEnters int
}

func (c *countingVisitor) EnterBlock(Block) error {
	c.blockEnters++

	return nil
}

func (c *countingVisitor) EnterInline(Node) error {
	c.inlineEnters++

	return nil
}

func TestWalkVisitsEveryNode(t *testing.T) {
	root := buildSampleTree()
	v := &countingVisitor{}
	if err := Walk(root, v); err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}
	if v.blockEnters != 2 {
		t.Errorf("expected 2 block enters (section + paragraph), got %d", v.blockEnters)
	}
	if v.inlineEnters != 2 {
		t.Errorf("expected 2 inline enters (two plain text leaves), got %d", v.inlineEnters)
	}
}

type skippingVisitor struct {
	BaseEnterLeaveVisitor
	leaves int
}

func (s *skippingVisitor) EnterBlock(b Block) error {
	if b.Type() == NodeParagraph {
		return SkipChildren
	}

	return nil
}

func (s *skippingVisitor) EnterInline(Node) error {
	s.leaves++

	return nil
}

func TestWalkSkipChildren(t *testing.T) {
	root := buildSampleTree()
	v := &skippingVisitor{}
	if err := Walk(root, v); err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}
	// Only the root's direct plain-text child is visited; the paragraph's
	// own plain-text child is skipped.
	if v.leaves != 1 {
		t.Errorf("expected 1 leaf visited after skipping paragraph children, got %d", v.leaves)
	}
}

func TestWalkWithContextTracksDepthAndParent(t *testing.T) {
	root := buildSampleTree()
	var depths []int
	v := &recordingContextVisitor{record: func(n Node, ctx *VisitorContext) {
		depths = append(depths, ctx.Depth())
	}}
	if err := WalkWithContext(root, v); err != nil {
		t.Fatalf("WalkWithContext returned error: %v", err)
	}
	if depths[0] != 0 {
		t.Errorf("expected root at depth 0, got %d", depths[0])
	}
}

type recordingContextVisitor struct {
	BaseContextEnterLeaveVisitor
	record func(Node, *VisitorContext)
}

func (r *recordingContextVisitor) EnterBlock(b Block, ctx *VisitorContext) error {
	r.record(b, ctx)

	return nil
}

func (r *recordingContextVisitor) EnterInline(n Node, ctx *VisitorContext) error {
	r.record(n, ctx)

	return nil
}
