// Package manout renders an asciidoc AST to roff suitable for man(7),
// exercising the Converter Framework's Visitor contract for manpage
// doctype documents.
package manout

import (
	"fmt"
	"io"
	"strings"

	"github.com/connerohnesorge/asciidoc/internal/asciidoc"
	"github.com/connerohnesorge/asciidoc/internal/asciidoc/backend"
)

// Backend implements backend.Renderer for roff/man(7) output.
type Backend struct {
	// Section is the man(7) section number placed in the .TH line, e.g.
	// 1 for user commands. Defaults to 1 when zero.
	Section int
}

func (Backend) Name() string { return "man" }

func (b Backend) Visitor(w io.Writer) asciidoc.EnterLeaveVisitor {
	section := b.Section
	if section == 0 {
		section = 1
	}

	return &visitor{w: w, section: section}
}

// Convert renders doc as roff to w.
func Convert(doc *asciidoc.Document, w io.Writer) error {
	return backend.Convert(doc, w, Backend{})
}

type visitor struct {
	asciidoc.BaseEnterLeaveVisitor
	w       io.Writer
	section int
	inList  []string // stack of active list kinds, for .IP vs .RS/.RE bookkeeping
}

func (v *visitor) write(format string, args ...any) {
	fmt.Fprintf(v.w, format, args...)
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\e`)
	s = strings.ReplaceAll(s, `-`, `\-`)

	return s
}

func (v *visitor) EnterDocument(d *asciidoc.Document) error {
	name := "UNTITLED"
	if t := d.Title(); t != nil {
		name = strings.ToUpper(renderInline(t.Heading))
	}
	v.write(".TH %q %d\n", name, v.section)

	return nil
}

func (v *visitor) LeaveDocument(*asciidoc.Document) error { return nil }

func (v *visitor) EnterBlock(b asciidoc.Block) error {
	switch b.Type() {
	case asciidoc.NodeSection:
		level := b.(interface{ Level() int }).Level()
		heading := b.(interface{ Heading() []asciidoc.Node }).Heading()
		if level <= 1 {
			v.write(".SH %s\n", strings.ToUpper(renderInline(heading)))
		} else {
			v.write(".SS %s\n", renderInline(heading))
		}
	case asciidoc.NodeParagraph:
		v.write(".PP\n")
	case asciidoc.NodeListing, asciidoc.NodeLiteral:
		v.write(".nf\n%s\n.fi\n", escape(string(b.Source())))

		return asciidoc.SkipChildren
	case asciidoc.NodeList:
		kind := b.(interface{ ListKind() string }).ListKind()
		v.inList = append(v.inList, kind)
		v.write(".RS\n")
	case asciidoc.NodeListItem:
		v.write(".IP \\(bu 2\n")
	case asciidoc.NodeDescriptionListItem:
		item := b.(interface{ Principal() []asciidoc.Node })
		v.write(".TP\n%s\n", renderInline(item.Principal()))
	case asciidoc.NodeAdmonition:
		kind := b.(interface{ AdmonitionKind() string }).AdmonitionKind()
		v.write(".PP\n\\fB%s:\\fR\n", kind)
	case asciidoc.NodeQuote, asciidoc.NodeVerse:
		v.write(".RS\n.PP\n")
	case asciidoc.NodeThematicBreak:
		v.write(".PP\n\\(mi\\(mi\\(mi\n")
	}

	return nil
}

func (v *visitor) LeaveBlock(b asciidoc.Block) error {
	switch b.Type() {
	case asciidoc.NodeList:
		if len(v.inList) > 0 {
			v.inList = v.inList[:len(v.inList)-1]
		}
		v.write(".RE\n")
	case asciidoc.NodeQuote, asciidoc.NodeVerse:
		v.write(".RE\n")
	}

	return nil
}

func (v *visitor) EnterInline(n asciidoc.Node) error {
	switch n.Type() {
	case asciidoc.NodePlainText:
		v.write("%s", escape(asciidoc.ApplyTypography(string(n.Source()))))
	case asciidoc.NodeRaw:
		v.write("%s", string(n.Source()))
	case asciidoc.NodeLineBreak:
		v.write("\n.br\n")
	case asciidoc.NodeBold:
		v.write(`\fB`)
	case asciidoc.NodeItalic:
		v.write(`\fI`)
	case asciidoc.NodeMonospace:
		v.write(`\fC`)
	case asciidoc.NodeLink, asciidoc.NodeAutolink, asciidoc.NodeURL, asciidoc.NodeMailto:
		v.write(`\fI`)
	}

	return nil
}

func (v *visitor) LeaveInline(n asciidoc.Node) error {
	switch n.Type() {
	case asciidoc.NodeBold, asciidoc.NodeItalic, asciidoc.NodeMonospace,
		asciidoc.NodeLink, asciidoc.NodeAutolink, asciidoc.NodeURL, asciidoc.NodeMailto:
		v.write(`\fR`)
	}

	return nil
}

func (v *visitor) EnterTable(*asciidoc.Table) error {
	v.write(".TS\nallbox;\n")

	return nil
}

func (v *visitor) LeaveTable(*asciidoc.Table) error {
	v.write(".TE\n")

	return nil
}

func (v *visitor) EnterTableRow(*asciidoc.TableRow) error { return nil }

func (v *visitor) LeaveTableRow(*asciidoc.TableRow) error {
	v.write("\n")

	return nil
}

func (v *visitor) EnterTableCell(*asciidoc.TableCell) error { return nil }

func (v *visitor) LeaveTableCell(c *asciidoc.TableCell) error {
	v.write("\t")

	return nil
}

func renderInline(nodes []asciidoc.Node) string {
	var buf strings.Builder
	v := &visitor{w: &buf, section: 1}
	for _, n := range nodes {
		_ = asciidoc.Walk(n, v)
	}

	return buf.String()
}
