package asciidoc

// NodeType classifies every node the grammar can produce. Block and inline
// variants share one closed enumeration so that generic traversal (Find,
// Walk, ToJSON) never needs two parallel switches.
type NodeType uint8

const (
	// Block-level variants.

	NodeDocument NodeType = iota
	NodeSection
	NodeParagraph
	NodeListing
	NodeLiteral
	NodeExample
	NodeSidebar
	NodeQuote
	NodeVerse
	NodeOpen
	NodePass
	NodeComment
	NodeList
	NodeListItem
	NodeDescriptionListItem
	NodeTable
	NodeTableRow
	NodeTableCell
	NodeImageBlock
	NodeAudio
	NodeVideo
	NodeThematicBreak
	NodePageBreak
	NodeAdmonition
	NodeToc
	NodeStemBlock
	NodeIndexBlock
	NodeCalloutList
	NodeCalloutListItem
	NodePlaceholder

	// Inline variants.

	NodePlainText
	NodeRaw
	NodeBold
	NodeItalic
	NodeMonospace
	NodeHighlight
	NodeSuperscript
	NodeSubscript
	NodeCurvedQuotation
	NodeCurvedApostrophe
	NodeLink
	NodeURL
	NodeMailto
	NodeAutolink
	NodeCrossReference
	NodeInlineImage
	NodeIcon
	NodeKeyboard
	NodeButton
	NodeMenu
	NodeFootnote
	NodeFootnoteRef
	NodeInlineStem
	NodeInlinePass
	NodeIndexTerm
	NodeCalloutRef
	NodeLineBreak
	NodeAnchor
)

var nodeTypeNames = [...]string{
	"document", "section", "paragraph", "listing", "literal", "example",
	"sidebar", "quote", "verse", "open", "pass", "comment", "list",
	"list_item", "description_list_item", "table", "table_row",
	"table_cell", "image", "audio", "video", "thematic_break",
	"page_break", "admonition", "toc", "stem", "index", "callout_list",
	"callout_list_item", "placeholder",

	"text", "raw", "strong", "emphasis", "monospace", "mark",
	"superscript", "subscript", "curved_quotation", "curved_apostrophe",
	"link", "url", "mailto", "autolink", "xref", "image", "icon",
	"kbd", "button", "menu", "footnote", "footnote_ref", "stem", "pass",
	"indexterm", "callout_reference", "line_break", "anchor",
}

// String returns the lower_snake variant name used by ToJSON's "name" field.
func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}

	return "unknown"
}

// IsInline reports whether t is an InlineNode variant rather than a Block
// variant.
func (t NodeType) IsInline() bool {
	return t >= NodePlainText
}
