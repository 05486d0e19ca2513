// Package termout renders an asciidoc AST directly to an ANSI terminal,
// using charmbracelet/lipgloss for styling, mattn/go-isatty to decide
// whether color is safe to emit, and lucasb-eyer/go-colorful to derive
// per-admonition accent colors from the active theme.
package termout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/connerohnesorge/asciidoc/internal/asciidoc"
	"github.com/connerohnesorge/asciidoc/internal/asciidoc/backend"
)

// Backend implements backend.Renderer for rich-terminal output.
type Backend struct {
	Theme *Theme
	// Color overrides TTY/NO_COLOR autodetection when non-nil.
	Color *bool
}

func (Backend) Name() string { return "term" }

func (b Backend) Visitor(w io.Writer) asciidoc.EnterLeaveVisitor {
	theme := b.Theme
	if theme == nil {
		theme = defaultTheme
	}
	color := colorEnabled(w)
	if b.Color != nil {
		color = *b.Color
	}

	return &visitor{w: w, theme: theme, color: color}
}

// Convert renders doc to w, auto-detecting whether the destination is a
// color-capable terminal.
func Convert(doc *asciidoc.Document, w io.Writer) error {
	return backend.Convert(doc, w, Backend{})
}

// colorEnabled reports whether ANSI styling should be emitted: w must be
// a terminal file descriptor, and NO_COLOR must be unset, per the
// convention mattn/go-isatty is commonly paired with.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type visitor struct {
	asciidoc.BaseEnterLeaveVisitor
	w        io.Writer
	theme    *Theme
	color    bool
	listDepth int
}

func (v *visitor) write(s string) { io.WriteString(v.w, s) }

func (v *visitor) style(fg lipgloss.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !v.color {
		return s
	}

	return s.Foreground(fg)
}

func (v *visitor) render(fg lipgloss.Color, text string, bold bool) string {
	s := v.style(fg)
	if bold {
		s = s.Bold(true)
	}

	return s.Render(text)
}

func (v *visitor) EnterDocument(d *asciidoc.Document) error {
	if t := d.Title(); t != nil {
		heading := renderInline(t.Heading, v.theme, v.color)
		v.write(v.render(v.theme.Heading, heading, true) + "\n\n")
	}

	return nil
}

func (v *visitor) LeaveDocument(*asciidoc.Document) error { return nil }

func (v *visitor) EnterBlock(b asciidoc.Block) error {
	switch b.Type() {
	case asciidoc.NodeSection:
		level := b.(interface{ Level() int }).Level()
		heading := renderInline(b.(interface{ Heading() []asciidoc.Node }).Heading(), v.theme, v.color)
		prefix := strings.Repeat("  ", level)
		v.write(prefix + v.render(v.theme.Heading, heading, true) + "\n\n")
	case asciidoc.NodeParagraph:
		// text emitted by child inline nodes; trailing blank line on leave
	case asciidoc.NodeListing, asciidoc.NodeLiteral:
		border := v.style(v.theme.Border)
		rule := border.Render(strings.Repeat("─", 40))
		v.write(rule + "\n" + string(b.Source()) + "\n" + rule + "\n\n")

		return asciidoc.SkipChildren
	case asciidoc.NodeList:
		v.listDepth++
	case asciidoc.NodeListItem:
		v.write(strings.Repeat("  ", v.listDepth) + v.render(v.theme.Bold, "•", false) + " ")
	case asciidoc.NodeDescriptionListItem:
		item := b.(interface{ Principal() []asciidoc.Node })
		v.write(v.render(v.theme.Bold, renderInline(item.Principal(), v.theme, v.color), true) + "\n")
	case asciidoc.NodeAdmonition:
		kind := b.(interface{ AdmonitionKind() string }).AdmonitionKind()
		accent := admonitionAccent(v.theme, kind)
		v.write(v.render(accent, fmt.Sprintf("[%s]", kind), true) + " ")
	case asciidoc.NodeThematicBreak:
		v.write(v.style(v.theme.Border).Render(strings.Repeat("─", 60)) + "\n\n")
	}

	return nil
}

func (v *visitor) LeaveBlock(b asciidoc.Block) error {
	switch b.Type() {
	case asciidoc.NodeParagraph, asciidoc.NodeAdmonition, asciidoc.NodeListItem:
		v.write("\n\n")
	case asciidoc.NodeList:
		v.listDepth--
		if v.listDepth == 0 {
			v.write("\n")
		}
	}

	return nil
}

func (v *visitor) EnterInline(n asciidoc.Node) error {
	switch n.Type() {
	case asciidoc.NodePlainText:
		v.write(asciidoc.ApplyTypography(string(n.Source())))
	case asciidoc.NodeRaw:
		v.write(string(n.Source()))
	case asciidoc.NodeLineBreak:
		v.write("\n")
	case asciidoc.NodeBold:
		v.write(v.render(v.theme.Bold, string(n.Source()), true))

		return asciidoc.SkipChildren
	case asciidoc.NodeItalic:
		s := v.style(v.theme.Heading).Italic(true)
		v.write(s.Render(string(n.Source())))

		return asciidoc.SkipChildren
	case asciidoc.NodeMonospace:
		s := v.style(v.theme.Muted).Underline(true)
		v.write(s.Render(string(n.Source())))

		return asciidoc.SkipChildren
	case asciidoc.NodeLink, asciidoc.NodeAutolink, asciidoc.NodeURL, asciidoc.NodeMailto:
		target := ""
		if t, ok := n.(interface{ Target() string }); ok {
			target = t.Target()
		}
		s := v.style(v.theme.Heading).Underline(true)
		v.write(s.Render(target))

		return asciidoc.SkipChildren
	case asciidoc.NodeCalloutRef:
		if nr, ok := n.(interface{ Number() int }); ok {
			v.write(v.render(v.theme.Bold, fmt.Sprintf("(%d)", nr.Number()), true))
		}
	}

	return nil
}

func (v *visitor) LeaveInline(asciidoc.Node) error { return nil }

func (v *visitor) EnterTable(*asciidoc.Table) error {
	v.write(v.style(v.theme.Border).Render(strings.Repeat("─", 60)) + "\n")

	return nil
}

func (v *visitor) LeaveTable(*asciidoc.Table) error {
	v.write(v.style(v.theme.Border).Render(strings.Repeat("─", 60)) + "\n\n")

	return nil
}

func (v *visitor) EnterTableRow(*asciidoc.TableRow) error { return nil }

func (v *visitor) LeaveTableRow(*asciidoc.TableRow) error {
	v.write("\n")

	return nil
}

func (v *visitor) EnterTableCell(*asciidoc.TableCell) error { return nil }

func (v *visitor) LeaveTableCell(*asciidoc.TableCell) error {
	v.write(" │ ")

	return nil
}

func renderInline(nodes []asciidoc.Node, theme *Theme, color bool) string {
	var buf strings.Builder
	v := &visitor{w: &buf, theme: theme, color: color}
	for _, n := range nodes {
		_ = asciidoc.Walk(n, v)
	}

	return buf.String()
}
