package asciidoc

import "errors"

// SkipChildren is a sentinel error a visitor method can return to skip
// traversal of the current node's children. Traversal continues with the
// next sibling. It is not treated as an actual error.
var SkipChildren = errors.New("skip children")

// EnterLeaveVisitor receives an Enter call before a node's children are
// walked and a Leave call after, grouped by the node's concrete Go type
// rather than by NodeType: the generic blockNode and inlineNode structs
// cover most of §4.5/§4.6's variants, so callers switch on n.Type() inside
// the Block/Inline handlers to specialize by variant, per the Converter
// Contract of §4.9.
type EnterLeaveVisitor interface {
	EnterDocument(*Document) error
	LeaveDocument(*Document) error
	EnterBlock(Block) error
	LeaveBlock(Block) error
	EnterInline(Node) error
	LeaveInline(Node) error
	EnterTable(*Table) error
	LeaveTable(*Table) error
	EnterTableRow(*TableRow) error
	LeaveTableRow(*TableRow) error
	EnterTableCell(*TableCell) error
	LeaveTableCell(*TableCell) error
}

// BaseEnterLeaveVisitor provides no-op default implementations for every
// EnterLeaveVisitor method. Embed this in a concrete visitor to override
// only the node kinds it cares about.
type BaseEnterLeaveVisitor struct{}

func (BaseEnterLeaveVisitor) EnterDocument(*Document) error    { return nil }
func (BaseEnterLeaveVisitor) LeaveDocument(*Document) error    { return nil }
func (BaseEnterLeaveVisitor) EnterBlock(Block) error           { return nil }
func (BaseEnterLeaveVisitor) LeaveBlock(Block) error           { return nil }
func (BaseEnterLeaveVisitor) EnterInline(Node) error           { return nil }
func (BaseEnterLeaveVisitor) LeaveInline(Node) error           { return nil }
func (BaseEnterLeaveVisitor) EnterTable(*Table) error          { return nil }
func (BaseEnterLeaveVisitor) LeaveTable(*Table) error          { return nil }
func (BaseEnterLeaveVisitor) EnterTableRow(*TableRow) error    { return nil }
func (BaseEnterLeaveVisitor) LeaveTableRow(*TableRow) error    { return nil }
func (BaseEnterLeaveVisitor) EnterTableCell(*TableCell) error  { return nil }
func (BaseEnterLeaveVisitor) LeaveTableCell(*TableCell) error  { return nil }

// Walk traverses the AST rooted at node in pre-order, dispatching Enter/
// Leave pairs to v by the node's concrete type.
//
// If an Enter method returns SkipChildren, the node's children are
// skipped but its Leave method still runs. Any other non-nil error from
// Enter stops traversal immediately without calling Leave. A non-nil
// error from Leave also stops traversal immediately.
//
// Walk safely handles a nil node by returning nil without calling any
// visitor method.
func Walk(node Node, v EnterLeaveVisitor) error {
	if node == nil {
		return nil
	}

	enter, leave := dispatch(node, v)

	skip := false
	if err := enter(); err != nil {
		if errors.Is(err, SkipChildren) {
			skip = true
		} else {
			return err
		}
	}

	if !skip {
		for _, child := range node.Children() {
			if err := Walk(child, v); err != nil {
				return err
			}
		}
	}

	return leave()
}

func dispatch(node Node, v EnterLeaveVisitor) (enter, leave func() error) {
	switch n := node.(type) {
	case *Document:
		return func() error { return v.EnterDocument(n) }, func() error { return v.LeaveDocument(n) }
	case *Table:
		return func() error { return v.EnterTable(n) }, func() error { return v.LeaveTable(n) }
	case *TableRow:
		return func() error { return v.EnterTableRow(n) }, func() error { return v.LeaveTableRow(n) }
	case *TableCell:
		return func() error { return v.EnterTableCell(n) }, func() error { return v.LeaveTableCell(n) }
	case Block:
		return func() error { return v.EnterBlock(n) }, func() error { return v.LeaveBlock(n) }
	default:
		return func() error { return v.EnterInline(n) }, func() error { return v.LeaveInline(n) }
	}
}

// VisitorContext carries the parent node and depth of the node currently
// being visited, for visitors that need ancestry information (e.g. to
// decide whether a section break should close an open list).
type VisitorContext struct {
	parent Node
	depth  int
}

// Parent returns the parent of the node currently being visited, or nil
// for the root.
func (c *VisitorContext) Parent() Node { return c.parent }

// Depth returns the depth of the node currently being visited; the root
// is at depth 0.
func (c *VisitorContext) Depth() int { return c.depth }

// ContextEnterLeaveVisitor is EnterLeaveVisitor with a VisitorContext
// passed to every method, giving parent/depth access during traversal.
type ContextEnterLeaveVisitor interface {
	EnterDocument(*Document, *VisitorContext) error
	LeaveDocument(*Document, *VisitorContext) error
	EnterBlock(Block, *VisitorContext) error
	LeaveBlock(Block, *VisitorContext) error
	EnterInline(Node, *VisitorContext) error
	LeaveInline(Node, *VisitorContext) error
	EnterTable(*Table, *VisitorContext) error
	LeaveTable(*Table, *VisitorContext) error
	EnterTableRow(*TableRow, *VisitorContext) error
	LeaveTableRow(*TableRow, *VisitorContext) error
	EnterTableCell(*TableCell, *VisitorContext) error
	LeaveTableCell(*TableCell, *VisitorContext) error
}

// WalkWithContext behaves like Walk but additionally threads a
// VisitorContext to a ContextEnterLeaveVisitor.
func WalkWithContext(node Node, v ContextEnterLeaveVisitor) error {
	return walkWithContext(node, v, nil, 0)
}

// BaseContextEnterLeaveVisitor provides no-op defaults for every
// ContextEnterLeaveVisitor method, analogous to BaseEnterLeaveVisitor.
type BaseContextEnterLeaveVisitor struct{}

func (BaseContextEnterLeaveVisitor) EnterDocument(*Document, *VisitorContext) error   { return nil }
func (BaseContextEnterLeaveVisitor) LeaveDocument(*Document, *VisitorContext) error   { return nil }
func (BaseContextEnterLeaveVisitor) EnterBlock(Block, *VisitorContext) error          { return nil }
func (BaseContextEnterLeaveVisitor) LeaveBlock(Block, *VisitorContext) error          { return nil }
func (BaseContextEnterLeaveVisitor) EnterInline(Node, *VisitorContext) error          { return nil }
func (BaseContextEnterLeaveVisitor) LeaveInline(Node, *VisitorContext) error          { return nil }
func (BaseContextEnterLeaveVisitor) EnterTable(*Table, *VisitorContext) error         { return nil }
func (BaseContextEnterLeaveVisitor) LeaveTable(*Table, *VisitorContext) error         { return nil }
func (BaseContextEnterLeaveVisitor) EnterTableRow(*TableRow, *VisitorContext) error   { return nil }
func (BaseContextEnterLeaveVisitor) LeaveTableRow(*TableRow, *VisitorContext) error   { return nil }
func (BaseContextEnterLeaveVisitor) EnterTableCell(*TableCell, *VisitorContext) error { return nil }
func (BaseContextEnterLeaveVisitor) LeaveTableCell(*TableCell, *VisitorContext) error { return nil }

func walkWithContext(node Node, v ContextEnterLeaveVisitor, parent Node, depth int) error {
	if node == nil {
		return nil
	}
	ctx := &VisitorContext{parent: parent, depth: depth}

	var enter, leave func() error
	switch n := node.(type) {
	case *Document:
		enter = func() error { return v.EnterDocument(n, ctx) }
		leave = func() error { return v.LeaveDocument(n, ctx) }
	case *Table:
		enter = func() error { return v.EnterTable(n, ctx) }
		leave = func() error { return v.LeaveTable(n, ctx) }
	case *TableRow:
		enter = func() error { return v.EnterTableRow(n, ctx) }
		leave = func() error { return v.LeaveTableRow(n, ctx) }
	case *TableCell:
		enter = func() error { return v.EnterTableCell(n, ctx) }
		leave = func() error { return v.LeaveTableCell(n, ctx) }
	case Block:
		enter = func() error { return v.EnterBlock(n, ctx) }
		leave = func() error { return v.LeaveBlock(n, ctx) }
	default:
		enter = func() error { return v.EnterInline(n, ctx) }
		leave = func() error { return v.LeaveInline(n, ctx) }
	}

	skip := false
	if err := enter(); err != nil {
		if errors.Is(err, SkipChildren) {
			skip = true
		} else {
			return err
		}
	}
	if !skip {
		for _, child := range node.Children() {
			if err := walkWithContext(child, v, node, depth+1); err != nil {
				return err
			}
		}
	}

	return leave()
}
