package asciidoc

// Title is a document or block title: a required heading plus an optional
// subtitle, separated by `:` in the source (`= Main Title: Subtitle`).
type Title struct {
	Heading  []Node
	Subtitle []Node
}

// Author is one entry of a document's author line.
type Author struct {
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
}

// Revision is a document's revision line (`v1.2, 2024-01-01: remark`).
type Revision struct {
	Number string
	Date   string
	Remark string
}

// Document is the root node of a parsed AsciiDoc source. Its Children are
// the top-level blocks.
type Document struct {
	baseNode
	title       *Title
	authors     []Author
	revision    *Revision
	doctype     Doctype
	attrs       *AttributeStore
	diagnostics *Diagnostics
}

func newDocument(children []Node, source []byte, title *Title, authors []Author, rev *Revision, doctype Doctype, attrs *AttributeStore, diag *Diagnostics) *Document {
	extra := []byte(doctype.String())
	d := &Document{
		baseNode: baseNode{
			kind:     NodeDocument,
			start:    0,
			end:      len(source),
			source:   source,
			children: children,
		},
		title:       title,
		authors:     authors,
		revision:    rev,
		doctype:     doctype,
		attrs:       attrs,
		diagnostics: diag,
	}
	d.hash = computeHash(NodeDocument, source, children, extra)

	return d
}

// Title returns the document's title, or nil if the source had none.
func (d *Document) Title() *Title { return d.title }

// Authors returns the parsed author list.
func (d *Document) Authors() []Author { return d.authors }

// Revision returns the parsed revision line, or nil if absent.
func (d *Document) Revision() *Revision { return d.revision }

// Doctype returns the doctype this document was parsed with.
func (d *Document) Doctype() Doctype { return d.doctype }

// Attributes returns the document's attribute store.
func (d *Document) Attributes() *AttributeStore { return d.attrs }

// Diagnostics returns the channel of warnings and errors collected while
// parsing this document.
func (d *Document) Diagnostics() *Diagnostics { return d.diagnostics }

// Equal performs a deep structural comparison with another node.
func (d *Document) Equal(other Node) bool { return equalNodes(d, other) }

// blockNode is the generic representation shared by every block variant
// except Document and the table family, which carry shapes distinct
// enough to warrant their own structs. The active fields are determined
// by Type(); accessors document which variant populates which field.
type blockNode struct {
	baseNode
	meta          BlockMetadata
	level         int    // Section
	heading       []Node // Section title inline tree
	listKind      string // List: "unordered" | "ordered" | "description"
	marker        string // ListItem: raw marker text
	principal     []Node // ListItem / DescriptionListItem: principal inline tree
	admonitionKind string // Admonition: NOTE | TIP | WARNING | CAUTION | IMPORTANT
	language      []byte // Listing/Literal: language attribute, convenience accessor
	calloutNumber int    // CalloutListItem: resolved callout number
	placeholderReason string // Placeholder: human-readable reason for the substitution
}

func newBlock(kind NodeType, start, end int, source []byte, children []Node, meta BlockMetadata) *blockNode {
	b := &blockNode{
		baseNode: baseNode{kind: kind, start: start, end: end, source: source, children: children},
		meta:     meta,
	}
	b.rehash()

	return b
}

func (b *blockNode) rehash() {
	extra := make([]byte, 0, 16+len(b.marker)+len(b.listKind)+len(b.admonitionKind)+len(b.language))
	extra = append(extra, byte(b.level))
	extra = append(extra, b.listKind...)
	extra = append(extra, 0)
	extra = append(extra, b.marker...)
	extra = append(extra, 0)
	extra = append(extra, b.admonitionKind...)
	extra = append(extra, 0)
	extra = append(extra, b.language...)
	extra = append(extra, byte(b.calloutNumber))
	extra = append(extra, b.meta.ID...)
	extra = append(extra, 0)
	extra = append(extra, b.meta.Style...)
	b.hash = computeHash(b.kind, b.source, b.children, extra)
}

// Metadata returns the block's shared facets (id, title, roles, …).
func (b *blockNode) Metadata() *BlockMetadata { return &b.meta }

// Level returns the section level (0-5). Valid only for NodeSection.
func (b *blockNode) Level() int { return b.level }

// Heading returns the section's own title inline tree. Valid only for
// NodeSection; not to be confused with Metadata().Title, which is a block
// caption attached via a `.Caption` line.
func (b *blockNode) Heading() []Node { return b.heading }

// ListKind returns "unordered", "ordered", or "description". Valid only
// for NodeList.
func (b *blockNode) ListKind() string { return b.listKind }

// Marker returns the item's raw marker text (e.g. "*", "..", "::").
// Valid only for NodeListItem and NodeDescriptionListItem.
func (b *blockNode) Marker() string { return b.marker }

// Principal returns the item's principal inline tree (for a description
// list item, its term). Valid only for NodeListItem and
// NodeDescriptionListItem.
func (b *blockNode) Principal() []Node { return b.principal }

// AdmonitionKind returns NOTE/TIP/WARNING/CAUTION/IMPORTANT. Valid only
// for NodeAdmonition.
func (b *blockNode) AdmonitionKind() string { return b.admonitionKind }

// Language returns the source-language attribute. Valid only for
// NodeListing and NodeLiteral.
func (b *blockNode) Language() []byte { return b.language }

// CalloutNumber returns the resolved callout number. Valid only for
// NodeCalloutListItem.
func (b *blockNode) CalloutNumber() int { return b.calloutNumber }

// PlaceholderReason explains why an offending construct was replaced by
// this node. Valid only for NodePlaceholder.
func (b *blockNode) PlaceholderReason() string { return b.placeholderReason }

// Equal performs a deep structural comparison with another node.
func (b *blockNode) Equal(other Node) bool {
	o, ok := other.(*blockNode)
	if !ok {
		return false
	}
	if b.level != o.level || b.listKind != o.listKind || b.marker != o.marker ||
		b.admonitionKind != o.admonitionKind || b.calloutNumber != o.calloutNumber {
		return false
	}

	return equalNodes(b, other)
}

// Table is the root of a parsed `|===` (or `,===`/`:===`/`!===`) block.
type Table struct {
	baseNode
	meta    BlockMetadata
	columns []TableColumn
}

// TableColumn describes a column's inherited defaults.
type TableColumn struct {
	Width  int
	HAlign byte // '<' left, '^' center, '>' right
	VAlign byte // '<' top, '^' middle, '>' bottom
	Style  byte // 'd' default, 's' strong, 'e' emphasis, 'm' monospace, 'h' header, 'l' literal, 'a' asciidoc
	Span   int  // not set by the parser: an `N*` repeat in `cols=` yields N separate columns
}

func newTable(start, end int, source []byte, rows []Node, meta BlockMetadata, cols []TableColumn) *Table {
	t := &Table{
		baseNode: baseNode{kind: NodeTable, start: start, end: end, source: source, children: rows},
		meta:     meta,
		columns:  cols,
	}
	extra := make([]byte, 0, len(cols)*4)
	for _, c := range cols {
		extra = append(extra, byte(c.Width), c.HAlign, c.VAlign, c.Style)
	}
	t.hash = computeHash(NodeTable, source, rows, extra)

	return t
}

// Metadata returns the table's shared block facets.
func (t *Table) Metadata() *BlockMetadata { return &t.meta }

// Columns returns the inherited per-column defaults.
func (t *Table) Columns() []TableColumn { return t.columns }

// Rows returns the table's rows, in document order.
func (t *Table) Rows() []*TableRow {
	out := make([]*TableRow, 0, len(t.children))
	for _, c := range t.children {
		if r, ok := c.(*TableRow); ok {
			out = append(out, r)
		}
	}

	return out
}

// Equal performs a deep structural comparison with another node.
func (t *Table) Equal(other Node) bool { return equalNodes(t, other) }

// TableRow is one row of a Table; its Children are TableCell nodes.
type TableRow struct {
	baseNode
}

func newTableRow(start, end int, source []byte, cells []Node) *TableRow {
	r := &TableRow{baseNode: baseNode{kind: NodeTableRow, start: start, end: end, source: source, children: cells}}
	r.hash = computeHash(NodeTableRow, source, cells, nil)

	return r
}

// Cells returns the row's cells, in column order.
func (r *TableRow) Cells() []*TableCell {
	out := make([]*TableCell, 0, len(r.children))
	for _, c := range r.children {
		if cell, ok := c.(*TableCell); ok {
			out = append(out, cell)
		}
	}

	return out
}

// Equal performs a deep structural comparison with another node.
func (r *TableRow) Equal(other Node) bool { return equalNodes(r, other) }

// TableCell is one cell of a TableRow. For AsciiDoc-style cells (style
// 'a'), Children holds the parsed sub-document's blocks instead of an
// inline tree.
type TableCell struct {
	baseNode
	colspan   int
	rowspan   int
	halign    byte
	valign    byte
	style     byte
	isSubdoc  bool
}

func newTableCell(start, end int, source []byte, content []Node, colspan, rowspan int, halign, valign, style byte, isSubdoc bool) *TableCell {
	c := &TableCell{
		baseNode: baseNode{kind: NodeTableCell, start: start, end: end, source: source, children: content},
		colspan:  colspan,
		rowspan:  rowspan,
		halign:   halign,
		valign:   valign,
		style:    style,
		isSubdoc: isSubdoc,
	}
	extra := []byte{byte(colspan), byte(rowspan), halign, valign, style}
	c.hash = computeHash(NodeTableCell, source, content, extra)

	return c
}

// Colspan returns the number of columns this cell occupies.
func (c *TableCell) Colspan() int { return c.colspan }

// Rowspan returns the number of rows this cell occupies.
func (c *TableCell) Rowspan() int { return c.rowspan }

// HAlign returns '<', '^', or '>'.
func (c *TableCell) HAlign() byte { return c.halign }

// VAlign returns '<', '^', or '>'.
func (c *TableCell) VAlign() byte { return c.valign }

// Style returns the cell style code ('d','s','e','m','h','l','a').
func (c *TableCell) Style() byte { return c.style }

// IsSubdocument reports whether this is an AsciiDoc-style ('a') cell
// whose Children are parsed blocks rather than an inline tree.
func (c *TableCell) IsSubdocument() bool { return c.isSubdoc }

// Equal performs a deep structural comparison with another node.
func (c *TableCell) Equal(other Node) bool {
	o, ok := other.(*TableCell)
	if !ok {
		return false
	}
	if c.colspan != o.colspan || c.rowspan != o.rowspan || c.halign != o.halign ||
		c.valign != o.valign || c.style != o.style {
		return false
	}

	return equalNodes(c, other)
}
