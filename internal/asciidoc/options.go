package asciidoc

// Doctype selects section-level discipline and built-in attribute seeding.
type Doctype uint8

const (
	// DoctypeArticle is the default doctype: section numbering starts at
	// level 1 under the document title.
	DoctypeArticle Doctype = iota
	// DoctypeBook allows a level-0 `= Title` part page whose children are
	// level-1 chapters.
	DoctypeBook
	// DoctypeManpage is recorded as doctype=manpage; no other
	// manpage-specific attributes are seeded.
	DoctypeManpage
	// DoctypeInline is recorded as doctype=inline; the source is parsed
	// with the same block grammar as an article.
	DoctypeInline
)

// String returns the attribute-style name of the doctype.
func (d Doctype) String() string {
	switch d {
	case DoctypeArticle:
		return "article"
	case DoctypeBook:
		return "book"
	case DoctypeManpage:
		return "manpage"
	case DoctypeInline:
		return "inline"
	default:
		return "article"
	}
}

// SafeMode gates what the Include Resolver is permitted to read.
type SafeMode uint8

const (
	// SafeModeUnsafe allows any path, including absolute paths and parent
	// directory traversal.
	SafeModeUnsafe SafeMode = iota
	// SafeModeSafe allows only files reachable from the document root,
	// forbidding absolute paths and escapes above the root.
	SafeModeSafe
	// SafeModeServer is Safe plus a blanket ban on any `../` segment, even
	// one that stays within the root.
	SafeModeServer
	// SafeModeSecure disables includes (and other filesystem-touching
	// directives) outright; they are converted to a warning and a
	// placeholder block.
	SafeModeSecure
)

// String returns the attribute-style name of the safe mode.
func (s SafeMode) String() string {
	switch s {
	case SafeModeUnsafe:
		return "unsafe"
	case SafeModeSafe:
		return "safe"
	case SafeModeServer:
		return "server"
	case SafeModeSecure:
		return "secure"
	default:
		return "safe"
	}
}

// AttributeMissingMode controls how a reference to an unset attribute is
// handled by the inline preprocessor.
type AttributeMissingMode uint8

const (
	// AttributeMissingSkip leaves the `{name}` reference literal in the
	// output and emits a warning.
	AttributeMissingSkip AttributeMissingMode = iota
	// AttributeMissingDrop deletes the reference and emits a warning.
	AttributeMissingDrop
	// AttributeMissingDropLine deletes the entire line containing the
	// reference and emits a warning.
	AttributeMissingDropLine
)

// ParserOptions configures a single Parse invocation. A zero-value
// ParserOptions is usable: it parses as an article, in Unsafe mode (no
// include restrictions — SafeModeUnsafe is the SafeMode zero value so that
// the ">= SafeModeSafe" ordinal checks in the include resolver treat it as
// the least restrictive level), with warnings only, no attribute
// overrides, and setext titles disabled. Callers that want Safe mode by
// default, including internal/docconfig's ParserOptions() translator,
// must set SafeMode explicitly.
type ParserOptions struct {
	// Doctype affects section-level discipline and built-in attributes.
	Doctype Doctype

	// SafeMode controls include resolution.
	SafeMode SafeMode

	// Strict, when true, promotes warnings about malformed tables/lists
	// to errors.
	Strict bool

	// Attributes are overrides applied before the header pass is
	// evaluated; they behave as if set at the very top of the document.
	Attributes map[string]string

	// AttributeMissing selects the behavior for unresolved attribute
	// references. Defaults to AttributeMissingSkip.
	AttributeMissing AttributeMissingMode

	// FeatureSetext is carried in the options but not read by the parser:
	// two-line underlined titles are never recognized as section headers.
	// Section titles use the `=` marker form only; `#` markers do not
	// start a section.
	FeatureSetext bool

	// RootDir is the directory include targets are resolved relative to
	// when SafeMode requires root confinement. Defaults to the directory
	// containing the document being parsed.
	RootDir string

	// Filesystem is the virtual filesystem the Include Resolver reads
	// through. Defaults to the OS filesystem when nil.
	Filesystem FS
}

// withDefaults returns a copy of o with zero-value fields replaced by their
// documented defaults.
func (o ParserOptions) withDefaults() ParserOptions {
	if o.Filesystem == nil {
		o.Filesystem = defaultFS()
	}

	return o
}
