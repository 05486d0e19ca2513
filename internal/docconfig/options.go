package docconfig

import "github.com/connerohnesorge/asciidoc/internal/asciidoc"

// ParserOptions translates the YAML-facing ParserConfig into the core
// package's asciidoc.ParserOptions.
func (c *Config) ParserOptions() asciidoc.ParserOptions {
	return asciidoc.ParserOptions{
		Doctype:          doctypeFromString(c.Parser.Doctype),
		SafeMode:         safeModeFromString(c.Parser.SafeMode),
		Strict:           c.Parser.Strict,
		Attributes:       c.Parser.Attributes,
		AttributeMissing: attributeMissingFromString(c.Parser.AttributeMissing),
	}
}

func doctypeFromString(s string) asciidoc.Doctype {
	switch s {
	case "book":
		return asciidoc.DoctypeBook
	case "manpage":
		return asciidoc.DoctypeManpage
	case "inline":
		return asciidoc.DoctypeInline
	default:
		return asciidoc.DoctypeArticle
	}
}

func safeModeFromString(s string) asciidoc.SafeMode {
	switch s {
	case "unsafe":
		return asciidoc.SafeModeUnsafe
	case "server":
		return asciidoc.SafeModeServer
	case "secure":
		return asciidoc.SafeModeSecure
	default:
		return asciidoc.SafeModeSafe
	}
}

func attributeMissingFromString(s string) asciidoc.AttributeMissingMode {
	switch s {
	case "drop":
		return asciidoc.AttributeMissingDrop
	case "drop-line":
		return asciidoc.AttributeMissingDropLine
	default:
		return asciidoc.AttributeMissingSkip
	}
}
