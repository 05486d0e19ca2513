package asciidoc

import (
	"strconv"
	"strings"
)

// placeholderMark is the opaque, fixed-width marker substituted for an
// extracted passthrough, per §4.1: three U+FFFD, the passthrough's index
// into the table as decimal digits, three more U+FFFD.
const placeholderMark = "���"

// Passthrough is one entry of the side table produced by the inline
// preprocessor: the original span, its literal text, and the
// substitution group it should receive when later rendered.
type Passthrough struct {
	OrigStart, OrigEnd int
	Text               string
	Substitutions      SubstitutionSpec
}

// PreprocessResult is the output of running the Inline Preprocessor over
// one inline context, per §4.4.
type PreprocessResult struct {
	Text         string
	Passthroughs []Passthrough
	SourceMap    *SourceMap
}

// preprocess runs the Inline Preprocessor over T, which is known to
// originate at baseOffset of file per sourceMapIn (the map produced by
// include splicing). It performs passthrough extraction before attribute
// expansion is applied in place, as required by §4.4 step ordering.
func preprocess(text string, file FileID, baseOffset int, sourceMapIn *SourceMap, attrs *AttributeStore, mode AttributeMissingMode, diags *Diagnostics) PreprocessResult {
	p := &preprocessor{
		in:          text,
		file:        file,
		base:        baseOffset,
		sourceMapIn: sourceMapIn,
		attrs:       attrs,
		mode:        mode,
		diags:       diags,
		builder:     NewBuilder(nil),
	}

	return p.run()
}

type preprocessor struct {
	in          string
	file        FileID
	base        int
	sourceMapIn *SourceMap
	attrs       *AttributeStore
	mode        AttributeMissingMode
	diags       *Diagnostics
	builder     *Builder
	out         strings.Builder
	table       []Passthrough
	lineStartPP int // builder.Len() (== out.Len()) as of the current line's first byte
}

func (p *preprocessor) run() PreprocessResult {
	i := 0
	for i < len(p.in) {
		if span, ok := matchPassthrough(p.in, i); ok {
			p.emitPassthrough(span)
			i = span.end

			continue
		}
		if j, name, ok := matchAttrRef(p.in, i); ok {
			p.emitAttrRef(i, j, name)
			i = j

			continue
		}
		p.copyByte(i)
		i++
	}

	return PreprocessResult{
		Text:         p.out.String(),
		Passthroughs: p.table,
		SourceMap:    p.builder.Build(),
	}
}

// copyByte copies one byte of input verbatim, recording a one-byte
// linear segment mapped through sourceMapIn.
func (p *preprocessor) copyByte(i int) {
	p.out.WriteByte(p.in[i])
	file, orig := through(p.sourceMapIn, p.base+i)
	p.builder.AddLinear(1, file, orig)
	if p.in[i] == '\n' {
		p.lineStartPP = p.builder.Len()
	}
}

type passthroughSpan struct {
	start, end int // byte range in p.in (pre-expansion coordinates)
	text       string
	subs       SubstitutionSpec
}

// matchPassthrough recognizes, in priority order per §4.4 step 1:
// `+++...+++`, `pass:[...]`, `++...++`, and constrained `+X+`.
func matchPassthrough(s string, i int) (passthroughSpan, bool) {
	if strings.HasPrefix(s[i:], "+++") {
		if end := strings.Index(s[i+3:], "+++"); end >= 0 {
			content := s[i+3 : i+3+end]

			return passthroughSpan{start: i, end: i + 3 + end + 3, text: content}, true
		}
	}
	if strings.HasPrefix(s[i:], "pass:") {
		rest := s[i+5:]
		bracket := strings.IndexByte(rest, '[')
		if bracket >= 0 {
			kind := rest[:bracket]
			close := strings.IndexByte(rest[bracket+1:], ']')
			if close >= 0 {
				content := rest[bracket+1 : bracket+1+close]
				end := i + 5 + bracket + 1 + close + 1
				subs := SubstitutionSpec{}
				if kind == "n" || kind == "normal" {
					subs = SubstitutionSpec{Replace: []string{"attributes", "specialchars", "quotes", "replacements", "macros", "post_replacements"}}
				}

				return passthroughSpan{start: i, end: end, text: content, subs: subs}, true
			}
		}
	}
	if strings.HasPrefix(s[i:], "++") {
		if end := strings.Index(s[i+2:], "++"); end >= 0 {
			content := s[i+2 : i+2+end]

			return passthroughSpan{
				start: i, end: i + 2 + end + 2, text: content,
				subs: SubstitutionSpec{Replace: []string{"specialchars"}},
			}, true
		}
	}
	if s[i] == '+' && isConstrainedBoundary(s, i, true) {
		if end := strings.IndexByte(s[i+1:], '+'); end >= 0 {
			closeAt := i + 1 + end
			if isConstrainedBoundary(s, closeAt, false) && end > 0 {
				content := s[i+1 : closeAt]

				return passthroughSpan{
					start: i, end: closeAt + 1, text: content,
					subs: SubstitutionSpec{Replace: []string{"specialchars"}},
				}, true
			}
		}
	}

	return passthroughSpan{}, false
}

// isConstrainedBoundary reports whether position i is a legal opener (or,
// with open=false, closer) boundary for a constrained `+X+` span: start
// or end of string, whitespace, or punctuation on the outer side.
func isConstrainedBoundary(s string, i int, open bool) bool {
	if open {
		if i == 0 {
			return true
		}

		return isBoundaryRune(rune(s[i-1]))
	}
	if i == len(s)-1 {
		return true
	}

	return isBoundaryRune(rune(s[i+1]))
}

func isBoundaryRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '(', '[', '{', '^', '~', '|':
		return true
	}

	return strings.ContainsRune(".,;:!?", r)
}

func (p *preprocessor) emitPassthrough(span passthroughSpan) {
	idx := len(p.table)
	p.table = append(p.table, Passthrough{
		OrigStart: p.resolveOrig(span.start),
		OrigEnd:   p.resolveOrig(span.end),
		Text:      span.text,
		Substitutions: span.subs,
	})
	placeholder := placeholderMark + strconv.Itoa(idx) + placeholderMark
	p.out.WriteString(placeholder)
	file, orig := through(p.sourceMapIn, p.base+span.start)
	p.builder.AddCollapsed(len(placeholder), file, orig)
}

func (p *preprocessor) resolveOrig(offsetInText int) int {
	_, orig := through(p.sourceMapIn, p.base+offsetInText)

	return orig
}

// matchAttrRef recognizes `{name}` where name is a valid attribute-name
// shape (letters, digits, hyphen, underscore).
func matchAttrRef(s string, i int) (end int, name string, ok bool) {
	if s[i] != '{' {
		return 0, "", false
	}
	j := i + 1
	for j < len(s) && isAttrNameByte(s[j]) {
		j++
	}
	if j > i+1 && j < len(s) && s[j] == '}' {
		return j + 1, s[i+1 : j], true
	}

	return 0, "", false
}

func isAttrNameByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func (p *preprocessor) emitAttrRef(start, end int, name string) {
	value, ok := p.attrs.Get(name)
	origStart := p.resolveOrig(start)
	if !ok {
		file := p.fileAt(start)
		line, col := p.diags.Locate(file, origStart)
		p.diags.Add(Diagnostic{
			Severity: SeverityWarning, Kind: DiagnosticAttributeMissing, File: file,
			Line: line, Column: col,
			Message: "attribute " + name + " is not set",
		})
		switch p.mode {
		case AttributeMissingDrop:
			return
		case AttributeMissingDropLine:
			p.dropCurrentLine(start)

			return
		default:
			value = "{" + name + "}"
		}
	}
	expanded := p.expandNested(value, 0)
	p.out.WriteString(expanded)
	p.builder.AddCollapsed(len(expanded), p.fileAt(start), origStart)
}

func (p *preprocessor) fileAt(offsetInText int) FileID {
	file, _ := through(p.sourceMapIn, p.base+offsetInText)

	return file
}

// expandNested expands any further `{name}` references inside an
// attribute's value, to a fixed recursion limit; passthroughs inside
// expansions are not recognized, per §4.4's invariant.
func (p *preprocessor) expandNested(value string, depth int) string {
	if depth >= maxDefinitionTimeExpansionDepth || !strings.ContainsRune(value, '{') {
		return value
	}
	var b strings.Builder
	i := 0
	for i < len(value) {
		if end, name, ok := matchAttrRef(value, i); ok {
			if v, found := p.attrs.Get(name); found {
				b.WriteString(p.expandNested(v, depth+1))
				i = end

				continue
			}
		}
		b.WriteByte(value[i])
		i++
	}

	return b.String()
}

// dropCurrentLine removes everything already written for the current
// line (back to the last newline) from both the output buffer and the
// SourceMap builder, implementing attribute-missing=drop-line. Rolling
// back only p.out while leaving p.builder's accumulated segments in
// place would desynchronize the two: every later MapPosition call would
// resolve against offsets that no longer exist in the output text.
func (p *preprocessor) dropCurrentLine(_ int) {
	cut := p.lineStartPP
	if cut > p.out.Len() {
		cut = p.out.Len()
	}
	s := p.out.String()
	p.out.Reset()
	p.out.WriteString(s[:cut])
	p.builder.Truncate(cut)
}
