package htmlout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/connerohnesorge/asciidoc/internal/asciidoc"
)

func parse(t *testing.T, source string) *asciidoc.Document {
	t.Helper()
	doc, _, perr := asciidoc.Parse([]byte(source), "test.adoc", asciidoc.ParserOptions{})
	require.Nil(t, perr)

	return doc
}

func TestConvertParagraph(t *testing.T) {
	doc := parse(t, "Hello *world*.\n")

	var buf strings.Builder
	require.NoError(t, Convert(doc, &buf))
	out := buf.String()

	require.Contains(t, out, "<p>")
	require.Contains(t, out, "<strong>world</strong>")
}

func TestConvertSectionHeading(t *testing.T) {
	doc := parse(t, "== A Section\n\nBody text.\n")

	var buf strings.Builder
	require.NoError(t, Convert(doc, &buf))
	out := buf.String()

	require.Contains(t, out, "A Section")
	require.Contains(t, out, "<h2")
}

func TestConvertListingSkipsChildren(t *testing.T) {
	doc := parse(t, "[source]\n----\nfmt.Println(\"<hi>\")\n----\n")

	var buf strings.Builder
	require.NoError(t, Convert(doc, &buf))
	out := buf.String()

	require.Contains(t, out, "<pre")
	require.Contains(t, out, "&lt;hi&gt;")
}
