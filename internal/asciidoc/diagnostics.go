package asciidoc

import "fmt"

// Severity classifies a Diagnostic.
type Severity uint8

const (
	// SeverityWarning marks a non-fatal issue; parsing continues.
	SeverityWarning Severity = iota
	// SeverityError marks a non-fatal issue reported as an error; the
	// parser uses it for malformed tables when ParserOptions.Strict is set.
	SeverityError
)

// DiagnosticKind taxonomizes diagnostics per §7.
type DiagnosticKind uint8

const (
	// DiagnosticIncludeError covers IncludeTargetMissing, IncludeCircular,
	// and IncludeUnsafe.
	DiagnosticIncludeError DiagnosticKind = iota
	// DiagnosticAttributeMissing covers a reference to an unset attribute.
	DiagnosticAttributeMissing
	// DiagnosticTableMalformed covers column-count mismatches, unknown
	// separators, and malformed cell specifiers.
	DiagnosticTableMalformed
	// DiagnosticAnchorConflict covers a duplicate explicit ID.
	DiagnosticAnchorConflict
	// DiagnosticCalloutMismatch covers a callout list whose length
	// disagrees with the in-block callouts.
	DiagnosticCalloutMismatch
)

// String returns the taxonomy name used in diagnostic messages.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticIncludeError:
		return "IncludeError"
	case DiagnosticAttributeMissing:
		return "AttributeMissing"
	case DiagnosticTableMalformed:
		return "TableMalformed"
	case DiagnosticAnchorConflict:
		return "AnchorConflict"
	case DiagnosticCalloutMismatch:
		return "CalloutMismatch"
	default:
		return "Unknown"
	}
}

// Diagnostic is a single structured, source-mapped warning or error. The
// channel stores this struct directly rather than a Go error, per the
// ambient-stack note that typed errors in internal/docerrs are for
// collaborators (docconfig, the backends, the CLI) that hand back a Go
// error value; the diagnostic channel itself is not an error-propagation
// mechanism.
type Diagnostic struct {
	Severity Severity
	Kind     DiagnosticKind
	File     FileID
	Line     int
	Column   int
	Message  string
}

func (d Diagnostic) String() string {
	sev := "warning"
	if d.Severity == SeverityError {
		sev = "error"
	}

	return fmt.Sprintf("%s: %s: %d:%d: %s", sev, d.Kind, d.Line, d.Column, d.Message)
}

func (d Diagnostic) dedupeKey() string {
	return fmt.Sprintf("%d|%d|%d|%d|%s", d.Kind, d.File, d.Line, d.Column, d.Message)
}

// Diagnostics is the Warning/Error Channel of §4.8: it deduplicates by
// (kind, file, line, column, message) because the PEG-style grammar
// backtracks and would otherwise emit the same diagnostic repeatedly, and
// it preserves source order once deduplicated.
type Diagnostics struct {
	seen  map[string]bool
	items []Diagnostic
	files *FileRegistry
}

// NewDiagnostics returns an empty channel.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{seen: make(map[string]bool), files: newFileRegistry()}
}

// registerFileText records the raw bytes backing file so a later Locate
// call can resolve an offset into it to a line and column. Called by the
// Include Resolver as each participating file is read.
func (d *Diagnostics) registerFileText(file FileID, text []byte) {
	d.files.register(file, text)
}

// Locate resolves offset (a byte offset into file's registered text) to
// a 1-based (line, column) pair, per §4.8's "primary source location".
func (d *Diagnostics) Locate(file FileID, offset int) (line, column int) {
	return d.files.Position(file, offset)
}

// Add records d unless an equal (kind, file, line, column, message) tuple
// was already recorded.
func (d *Diagnostics) Add(diag Diagnostic) {
	key := diag.dedupeKey()
	if d.seen[key] {
		return
	}
	d.seen[key] = true
	d.items = append(d.items, diag)
}

// All returns every recorded diagnostic, in the order first added.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, len(d.items))
	copy(out, d.items)

	return out
}

// HasErrors reports whether any recorded diagnostic has SeverityError.
func (d *Diagnostics) HasErrors() bool {
	for _, it := range d.items {
		if it.Severity == SeverityError {
			return true
		}
	}

	return false
}

// ParseError reports a fatal grammar failure at the top level (§4.8,
// §7's ParseFatal). When Parse returns a non-nil ParseError, the returned
// document is empty.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}
