package manout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/connerohnesorge/asciidoc/internal/asciidoc"
)

func parse(t *testing.T, source string) *asciidoc.Document {
	t.Helper()
	doc, _, perr := asciidoc.Parse([]byte(source), "test.adoc", asciidoc.ParserOptions{Doctype: asciidoc.DoctypeManpage})
	require.Nil(t, perr)

	return doc
}

func TestConvertEmitsManHeader(t *testing.T) {
	doc := parse(t, "= mytool(1)\n\nBody text.\n")

	var buf strings.Builder
	require.NoError(t, Convert(doc, &buf))
	out := buf.String()

	require.Contains(t, out, ".TH")
	require.Contains(t, out, ".PP")
}

func TestConvertSectionUsesSH(t *testing.T) {
	doc := parse(t, "== NAME\n\nmytool - does a thing\n")

	var buf strings.Builder
	require.NoError(t, Convert(doc, &buf))
	out := buf.String()

	require.Contains(t, out, ".SH NAME")
}

func TestConvertBoldUsesFontEscape(t *testing.T) {
	doc := parse(t, "Some *bold* word.\n")

	var buf strings.Builder
	require.NoError(t, Convert(doc, &buf))
	out := buf.String()

	require.Contains(t, out, `\fB`)
	require.Contains(t, out, `\fR`)
}
