// Package htmlout renders an asciidoc AST to a minimal HTML5 document
// body, exercising the Converter Framework's Visitor contract.
package htmlout

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/connerohnesorge/asciidoc/internal/asciidoc"
	"github.com/connerohnesorge/asciidoc/internal/asciidoc/backend"
)

// Backend implements backend.Renderer for HTML5 body output.
type Backend struct{}

func (Backend) Name() string { return "html" }

func (Backend) Visitor(w io.Writer) asciidoc.EnterLeaveVisitor {
	return &visitor{w: w}
}

// Convert renders doc as an HTML5 fragment to w.
func Convert(doc *asciidoc.Document, w io.Writer) error {
	return backend.Convert(doc, w, Backend{})
}

type visitor struct {
	asciidoc.BaseEnterLeaveVisitor
	w io.Writer
}

func (v *visitor) write(format string, args ...any) {
	fmt.Fprintf(v.w, format, args...)
}

func (v *visitor) EnterDocument(d *asciidoc.Document) error {
	v.write("<div class=\"article\">\n")
	if t := d.Title(); t != nil {
		v.write("<h1>%s</h1>\n", renderInline(t.Heading))
	}

	return nil
}

func (v *visitor) LeaveDocument(*asciidoc.Document) error {
	v.write("</div>\n")

	return nil
}

var blockTags = map[asciidoc.NodeType][2]string{
	asciidoc.NodeParagraph:      {"<p>", "</p>\n"},
	asciidoc.NodeListing:        {"<pre class=\"listingblock\"><code>", "</code></pre>\n"},
	asciidoc.NodeLiteral:        {"<pre class=\"literalblock\">", "</pre>\n"},
	asciidoc.NodeExample:        {"<div class=\"exampleblock\">", "</div>\n"},
	asciidoc.NodeSidebar:        {"<div class=\"sidebarblock\">", "</div>\n"},
	asciidoc.NodeQuote:          {"<blockquote>", "</blockquote>\n"},
	asciidoc.NodeVerse:          {"<pre class=\"verseblock\">", "</pre>\n"},
	asciidoc.NodeOpen:           {"<div class=\"openblock\">", "</div>\n"},
	asciidoc.NodeList:           {"", ""}, // tag depends on ListKind(), handled specially
	asciidoc.NodeListItem:       {"<li>", "</li>\n"},
	asciidoc.NodeThematicBreak:  {"<hr>\n", ""},
	asciidoc.NodePageBreak:      {"<div style=\"page-break-after: always;\"></div>\n", ""},
	asciidoc.NodeCalloutList:    {"<ol class=\"colist\">", "</ol>\n"},
	asciidoc.NodeCalloutListItem: {"<li>", "</li>\n"},
}

func (v *visitor) EnterBlock(b asciidoc.Block) error {
	switch b.Type() {
	case asciidoc.NodeSection:
		bn := b.(interface{ Level() int; Heading() []asciidoc.Node })
		v.write("<h%d id=%q>%s</h%d>\n", bn.Level()+1, b.Metadata().ID, renderInline(bn.Heading()), bn.Level()+1)
	case asciidoc.NodeList:
		kind := b.(interface{ ListKind() string }).ListKind()
		v.write("<%s>\n", listTag(kind))
	case asciidoc.NodeDescriptionListItem:
		item := b.(interface {
			Principal() []asciidoc.Node
		})
		v.write("<dt>%s</dt>\n<dd>\n", renderInline(item.Principal()))
	case asciidoc.NodeAdmonition:
		kind := b.(interface{ AdmonitionKind() string }).AdmonitionKind()
		v.write("<div class=\"admonitionblock %s\"><div class=\"title\">%s</div>\n", kind, kind)
	case asciidoc.NodeImageBlock, asciidoc.NodeAudio, asciidoc.NodeVideo:
		v.write("<div class=\"%sblock\">\n", b.Type().String())
	case asciidoc.NodePlaceholder:
		v.write("<!-- %s -->\n", b.(interface{ PlaceholderReason() string }).PlaceholderReason())
	default:
		if tags, ok := blockTags[b.Type()]; ok {
			v.write(tags[0])
		}
	}
	if b.Type() == asciidoc.NodeListing || b.Type() == asciidoc.NodeLiteral {
		v.write(html.EscapeString(string(b.Source())))

		return asciidoc.SkipChildren
	}

	return nil
}

func (v *visitor) LeaveBlock(b asciidoc.Block) error {
	switch b.Type() {
	case asciidoc.NodeList:
		kind := b.(interface{ ListKind() string }).ListKind()
		v.write("</%s>\n", listTag(kind))
	case asciidoc.NodeDescriptionListItem:
		v.write("</dd>\n")
	case asciidoc.NodeAdmonition:
		v.write("</div>\n")
	case asciidoc.NodeImageBlock, asciidoc.NodeAudio, asciidoc.NodeVideo:
		v.write("</div>\n")
	default:
		if tags, ok := blockTags[b.Type()]; ok {
			v.write(tags[1])
		}
	}

	return nil
}

func listTag(kind string) string {
	switch kind {
	case "ordered":
		return "ol"
	case "description":
		return "dl"
	default:
		return "ul"
	}
}

var inlineTags = map[asciidoc.NodeType][2]string{
	asciidoc.NodeBold:          {"<strong>", "</strong>"},
	asciidoc.NodeItalic:        {"<em>", "</em>"},
	asciidoc.NodeMonospace:     {"<code>", "</code>"},
	asciidoc.NodeHighlight:     {"<mark>", "</mark>"},
	asciidoc.NodeSuperscript:   {"<sup>", "</sup>"},
	asciidoc.NodeSubscript:     {"<sub>", "</sub>"},
	asciidoc.NodeCurvedQuotation: {"“", "”"},
}

func (v *visitor) EnterInline(n asciidoc.Node) error {
	switch n.Type() {
	case asciidoc.NodePlainText:
		v.write(html.EscapeString(asciidoc.ApplyTypography(string(n.Source()))))
	case asciidoc.NodeRaw:
		v.write(string(n.Source()))
	case asciidoc.NodeLineBreak:
		v.write("<br>\n")
	case asciidoc.NodeLink, asciidoc.NodeAutolink, asciidoc.NodeURL:
		target := nodeTarget(n)
		v.write("<a href=%q>", target)
	case asciidoc.NodeMailto:
		v.write("<a href=\"mailto:%s\">", nodeTarget(n))
	case asciidoc.NodeCrossReference:
		v.write("<a href=\"#%s\">", nodeTarget(n))
	case asciidoc.NodeInlineImage:
		v.write("<img src=%q alt=%q>", nodeTarget(n), htmlAlt(n))
	case asciidoc.NodeCalloutRef:
		v.write("<i class=\"conum\">(%d)</i>", nodeNumber(n))
	default:
		if tags, ok := inlineTags[n.Type()]; ok {
			v.write(tags[0])
		}
	}

	return nil
}

func (v *visitor) LeaveInline(n asciidoc.Node) error {
	switch n.Type() {
	case asciidoc.NodeLink, asciidoc.NodeAutolink, asciidoc.NodeURL, asciidoc.NodeMailto, asciidoc.NodeCrossReference:
		v.write("</a>")
	default:
		if tags, ok := inlineTags[n.Type()]; ok {
			v.write(tags[1])
		}
	}

	return nil
}

func (v *visitor) EnterTable(t *asciidoc.Table) error {
	v.write("<table class=\"tableblock\">\n")

	return nil
}

func (v *visitor) LeaveTable(*asciidoc.Table) error {
	v.write("</table>\n")

	return nil
}

func (v *visitor) EnterTableRow(*asciidoc.TableRow) error {
	v.write("<tr>\n")

	return nil
}

func (v *visitor) LeaveTableRow(*asciidoc.TableRow) error {
	v.write("</tr>\n")

	return nil
}

func (v *visitor) EnterTableCell(c *asciidoc.TableCell) error {
	tag := "td"
	if c.Style() == 'h' {
		tag = "th"
	}
	v.write("<%s colspan=\"%d\" rowspan=\"%d\">", tag, c.Colspan(), c.Rowspan())

	return nil
}

func (v *visitor) LeaveTableCell(c *asciidoc.TableCell) error {
	tag := "td"
	if c.Style() == 'h' {
		tag = "th"
	}
	v.write("</%s>\n", tag)

	return nil
}

// renderInline renders a detached inline tree (e.g. a title or heading)
// to a string using the same rules as the main visitor, without needing
// a live asciidoc.Walk/io.Writer pairing.
func renderInline(nodes []asciidoc.Node) string {
	var buf strings.Builder
	v := &visitor{w: &buf}
	for _, n := range nodes {
		_ = asciidoc.Walk(n, v)
	}

	return buf.String()
}

func nodeTarget(n asciidoc.Node) string {
	t, ok := n.(interface{ Target() string })
	if !ok {
		return ""
	}

	return t.Target()
}

func nodeNumber(n asciidoc.Node) int {
	t, ok := n.(interface{ Number() int })
	if !ok {
		return 0
	}

	return t.Number()
}

func htmlAlt(n asciidoc.Node) string {
	t, ok := n.(interface{ AltText() []byte })
	if !ok {
		return ""
	}

	return string(t.AltText())
}
