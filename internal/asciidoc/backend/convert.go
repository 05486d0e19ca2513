// Package backend defines the Converter Framework: the asciidoc.Visitor
// contract (asciidoc.EnterLeaveVisitor) is consumed by a Convert driver
// that renders a parsed *asciidoc.Document to an io.Writer. The
// htmlout, manout, and termout subpackages are the three concrete
// backends that implement the contract; each owns its own EnterLeaveVisitor
// and is driven by the shared Convert helper here.
package backend

import (
	"io"

	"github.com/connerohnesorge/asciidoc/internal/asciidoc"
	"github.com/connerohnesorge/asciidoc/internal/docerrs"
)

// Renderer is implemented by every backend: it builds an
// asciidoc.EnterLeaveVisitor bound to w and a name used for error
// reporting.
type Renderer interface {
	Name() string
	Visitor(w io.Writer) asciidoc.EnterLeaveVisitor
}

// Convert drives doc through r's visitor via asciidoc.Walk, wrapping any
// traversal error as a docerrs.WriteFailedError.
func Convert(doc *asciidoc.Document, w io.Writer, r Renderer) error {
	v := r.Visitor(w)
	if err := asciidoc.Walk(doc, v); err != nil {
		return &docerrs.WriteFailedError{Backend: r.Name(), Err: err}
	}

	return nil
}

// RenderedText resolves a block or inline node's substitution spec and
// applies it to its raw source, per §4.9: the backend, not the core, is
// responsible for turning a SubstitutionSpec into rendered text. Of the
// resolved groups only "replacements" (typography) is applied; the text
// is otherwise returned unchanged.
func RenderedText(source []byte, spec asciidoc.SubstitutionSpec, baseline asciidoc.Baseline) string {
	groups := asciidoc.ResolveSubstitutions(spec, baseline)
	text := string(source)
	if asciidoc.HasGroup(groups, "replacements") {
		text = asciidoc.ApplyTypography(text)
	}

	return text
}
