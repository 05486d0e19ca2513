package termout

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

func TestConvertPlainWriterDisablesColor(t *testing.T) {
	doc := parse(t, "Hello *world*.\n")

	var buf strings.Builder
	require.NoError(t, Convert(doc, &buf))
	out := buf.String()

	// strings.Builder is not *os.File, so colorEnabled is false and no
	// ANSI escapes should appear.
	require.Contains(t, out, "Hello")
	require.Contains(t, out, "world")
	require.NotContains(t, out, "\x1b[")
}

func TestAdmonitionAccentInterpolatesBySeverity(t *testing.T) {
	note := admonitionAccent(defaultTheme, "NOTE")
	caution := admonitionAccent(defaultTheme, "CAUTION")

	require.NotEqual(t, note, caution)
}

func TestColorEnabledRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	require.False(t, colorEnabled(&strings.Builder{}))
}
