package docerrs

import "fmt"

// UnsupportedNodeError indicates a backend's visitor encountered a node
// variant it has no rendering rule for.
type UnsupportedNodeError struct {
	Backend string
	Variant string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("%s backend has no rendering rule for %q nodes", e.Backend, e.Variant)
}

// WriteFailedError indicates a backend failed to write its rendered
// output to the destination writer.
type WriteFailedError struct {
	Backend string
	Err     error
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("%s backend failed to write output: %v", e.Backend, e.Err)
}

func (e *WriteFailedError) Unwrap() error {
	return e.Err
}

// FatalDocumentError wraps a core *asciidoc.ParseError for CLI-level
// reporting, adding the source path the caller asked to convert.
type FatalDocumentError struct {
	Path string
	Err  error
}

func (e *FatalDocumentError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *FatalDocumentError) Unwrap() error {
	return e.Err
}
