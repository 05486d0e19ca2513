// Package asciidoc implements the parsing core of an AsciiDoc toolchain:
// an inline preprocessor that extracts passthroughs and expands attribute
// references while preserving a mapping back to original source positions,
// and a grammar-driven block/inline parser that emits a typed syntax tree
// of documents, sections, blocks, and inline nodes.
//
// Converters (HTML, manpage, terminal) live outside this package in
// internal/asciidoc/backend and consume the tree through the
// EnterLeaveVisitor contract defined in this package (visitor.go).
//
// A parse is a pure function of (source bytes, ParserOptions): it performs
// no I/O of its own beyond the Include Resolver's synchronous file reads,
// and it is safe to run concurrently across independent documents.
package asciidoc
