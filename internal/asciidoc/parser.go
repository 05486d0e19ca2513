package asciidoc

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var sectionLineRe = regexp.MustCompile(`^(=+|#+)\s+(.*?)\s*$`)
var titleLineRe = regexp.MustCompile(`^=\s+(.*?)\s*$`)
var attrEntrySetRe = regexp.MustCompile(`^:([A-Za-z0-9_][A-Za-z0-9_-]*):\s*(.*?)\s*$`)
var attrEntryUnsetRe = regexp.MustCompile(`^:([A-Za-z0-9_][A-Za-z0-9_-]*)!:\s*$`)
var blockAttrLineRe = regexp.MustCompile(`^\[(.*)\]\s*$`)
var blockTitleLineRe = regexp.MustCompile(`^\.([^.\s].*)$`)
var calloutListItemRe = regexp.MustCompile(`^<(\d+|\.)>\s+(.*)$`)
var anchorLineRe = regexp.MustCompile(`^\[\[([^\]]+)\]\]\s*$`)
var thematicBreakRe = regexp.MustCompile(`^(?:'''|- - -|\* \* \*|_{3,})$`)
var pageBreakRe = regexp.MustCompile(`^<<<\s*$`)
var blockMacroRe = regexp.MustCompile(`^(image|audio|video|toc|stem|latexmath|asciimath)::([^\[]*)\[(.*)\]\s*$`)
var admonitionParaRe = regexp.MustCompile(`^(NOTE|TIP|WARNING|CAUTION|IMPORTANT):\s+(.*)$`)

var blockMacroKinds = map[string]NodeType{
	"image": NodeImageBlock, "audio": NodeAudio, "video": NodeVideo,
	"toc": NodeToc, "stem": NodeStemBlock, "latexmath": NodeStemBlock, "asciimath": NodeStemBlock,
}

// blockParser walks the spliced (post-include) text line by line,
// producing the Block tree. Inline contexts (paragraph bodies, titles,
// list principals, non-subdocument table cells) are handed to
// preprocess + parseInline on demand.
type blockParser struct {
	lines                []string
	lineStart            []int // byte offset of each line's first byte in p.text
	pos                  int
	text                 string
	sourceMapIn          *SourceMap
	attrs                *AttributeStore
	diags                *Diagnostics
	opts                 ParserOptions
	doctype              Doctype
	ids                  map[string]bool
	leveloffset          int
	pending              pendingMetadata
	calloutSeq           int
	lastVerbatimCallouts int // callout count of the most recently parsed verbatim block, for CalloutMismatch
}

// pendingMetadata accumulates a `[block-attrs]` line and/or a `.Title`
// line that precede the next block, per §4.5.
type pendingMetadata struct {
	attrs *AttributeList
	style string
	id    string
	roles []string
	opts  map[string]bool
	title string
	hasAny bool
}

func (p *pendingMetadata) reset() { *p = pendingMetadata{} }

// Parse is the public entry point: a pure function of (source, options)
// to (document, diagnostics, fatal error), per §5.
func Parse(source []byte, path string, opts ParserOptions) (*Document, []Diagnostic, *ParseError) {
	opts = opts.withDefaults()
	diags := NewDiagnostics()

	source = stripBOM(source)
	if path == "" {
		path = "-"
	}
	if opts.RootDir == "" {
		opts.RootDir = filepath.Dir(path)
	}

	spliced, srcMap := resolveIncludes(source, path, opts, diags)

	attrs := NewAttributeStore(opts.Doctype)
	for name, value := range opts.Attributes {
		attrs.Set(name, value)
	}

	p := &blockParser{
		text:        string(spliced),
		sourceMapIn: srcMap,
		attrs:       attrs,
		diags:       diags,
		opts:        opts,
		doctype:     opts.Doctype,
		ids:         make(map[string]bool),
	}
	p.lines = splitKeepEnds(spliced)
	p.lineStart = make([]int, len(p.lines)+1)
	off := 0
	for i, l := range p.lines {
		p.lineStart[i] = off
		off += len(l)
	}
	p.lineStart[len(p.lines)] = off

	doc := p.parseDocument()

	return doc, diags.All(), nil
}

func stripBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}

	return b
}

func (p *blockParser) atEOF() bool { return p.pos >= len(p.lines) }

func (p *blockParser) rawLine(i int) string { return strings.TrimRight(p.lines[i], "\r\n") }

func (p *blockParser) currentRaw() string {
	if p.atEOF() {
		return ""
	}

	return p.rawLine(p.pos)
}

func (p *blockParser) advance() { p.pos++ }

func (p *blockParser) isBlank(i int) bool {
	return strings.TrimSpace(p.rawLine(i)) == ""
}

// parseDocument parses the optional header then the remaining blocks.
func (p *blockParser) parseDocument() *Document {
	title, authors, rev := p.parseHeader()

	var children []Node
	for !p.atEOF() {
		if p.isBlank(p.pos) {
			p.advance()

			continue
		}
		if node := p.parseBlock(0); node != nil {
			children = append(children, node)
		}
	}

	return newDocument(children, []byte(p.text), title, authors, rev, p.doctype, p.attrs, p.diags)
}

// parseHeader recognizes the optional `= Title`, author line, revision
// line, and interleaved attribute entries, per §4.5.
func (p *blockParser) parseHeader() (*Title, []Author, *Revision) {
	var title *Title
	var authors []Author
	var rev *Revision

	if !p.atEOF() && titleLineRe.MatchString(p.currentRaw()) {
		m := titleLineRe.FindStringSubmatch(p.currentRaw())
		text := m[1]
		start := p.lineStart[p.pos]
		title = &Title{Heading: p.parseInlineAt(text, start+len(p.currentRaw())-len(text))}
		p.attrs.Set("doctitle", text)
		p.advance()

		if !p.atEOF() && !p.isBlank(p.pos) && looksLikeAuthorLine(p.currentRaw()) {
			authors = parseAuthorLine(p.currentRaw())
			p.advance()

			if !p.atEOF() && !p.isBlank(p.pos) && looksLikeRevisionLine(p.currentRaw()) {
				rev = parseRevisionLine(p.currentRaw())
				p.advance()
			}
		}
	}

	for !p.atEOF() {
		line := p.currentRaw()
		if p.isBlank(p.pos) {
			p.advance()

			break
		}
		if m := attrEntryUnsetRe.FindStringSubmatch(line); m != nil {
			p.attrs.Unset(m[1])
			p.advance()

			continue
		}
		if m := attrEntrySetRe.FindStringSubmatch(line); m != nil {
			p.attrs.Set(m[1], m[2])
			p.advance()

			continue
		}

		break
	}

	return title, authors, rev
}

func looksLikeAuthorLine(line string) bool {
	return !strings.HasPrefix(line, ":") && !strings.HasPrefix(line, "[") && !strings.HasPrefix(line, "//")
}

func looksLikeRevisionLine(line string) bool {
	return strings.HasPrefix(line, "v") || strings.Contains(line, ",")
}

func parseAuthorLine(line string) []Author {
	var out []Author
	for _, part := range strings.Split(line, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		a := Author{}
		if i := strings.IndexByte(part, '<'); i >= 0 && strings.HasSuffix(part, ">") {
			a.Email = part[i+1 : len(part)-1]
			part = strings.TrimSpace(part[:i])
		}
		fields := strings.Fields(part)
		switch len(fields) {
		case 1:
			a.FirstName = fields[0]
		case 2:
			a.FirstName, a.LastName = fields[0], fields[1]
		case 3:
			a.FirstName, a.MiddleName, a.LastName = fields[0], fields[1], fields[2]
		}
		out = append(out, a)
	}

	return out
}

func parseRevisionLine(line string) *Revision {
	line = strings.TrimPrefix(line, "v")
	rev := &Revision{}
	if i := strings.IndexByte(line, ':'); i >= 0 {
		rev.Remark = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	parts := strings.SplitN(line, ",", 2)
	rev.Number = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		rev.Date = strings.TrimSpace(parts[1])
	}

	return rev
}

// parseBlock dispatches on the current line and returns the block it
// produced, or nil if the line was metadata absorbed into pendingMetadata.
func (p *blockParser) parseBlock(level int) Node {
	line := p.currentRaw()

	if strings.HasPrefix(line, "//") && !strings.HasPrefix(line, "////") {
		p.advance()

		return nil
	}
	if m := blockTitleLineRe.FindStringSubmatch(line); m != nil {
		p.pending.title = m[1]
		p.pending.hasAny = true
		p.advance()

		return nil
	}
	if m := anchorLineRe.FindStringSubmatch(line); m != nil {
		p.pending.id = m[1]
		p.pending.hasAny = true
		p.advance()

		return nil
	}
	if line == "[include unresolved]" {
		meta := p.takePendingMetadata()
		start := p.lineStart[p.pos]
		p.advance()
		b := newBlock(NodePlaceholder, start, p.lineStart[p.pos], []byte(line), nil, meta)
		b.placeholderReason = "include unresolved"

		return b
	}
	if m := blockAttrLineRe.FindStringSubmatch(line); m != nil && !isTableDelimiterLine(line) {
		p.applyBlockAttrLine(m[1])
		p.advance()

		return nil
	}
	if m := attrEntrySetRe.FindStringSubmatch(line); m != nil {
		p.attrs.Set(m[1], m[2])
		p.advance()

		return nil
	}
	if m := attrEntryUnsetRe.FindStringSubmatch(line); m != nil {
		p.attrs.Unset(m[1])
		p.advance()

		return nil
	}

	if sep, ok := tableDelimiterSep(line); ok {
		return p.parseTable(sep)
	}
	if m := sectionLineRe.FindStringSubmatch(line); m != nil && isSectionMarker(m[1]) {
		return p.parseSection(level)
	}
	if kind, length, ok := isDelimiterLine(line); ok {
		return p.parseDelimitedBlock(kind, line, length)
	}
	if thematicBreakRe.MatchString(line) {
		meta := p.takePendingMetadata()
		start := p.lineStart[p.pos]
		p.advance()

		return newBlock(NodeThematicBreak, start, p.lineStart[p.pos], []byte(line), nil, meta)
	}
	if pageBreakRe.MatchString(line) {
		meta := p.takePendingMetadata()
		start := p.lineStart[p.pos]
		p.advance()

		return newBlock(NodePageBreak, start, p.lineStart[p.pos], []byte(line), nil, meta)
	}
	if m := blockMacroRe.FindStringSubmatch(line); m != nil {
		return p.parseBlockMacro(m[1], m[2], m[3])
	}
	if isListMarkerLine(line) {
		return p.parseList()
	}
	if m := calloutListItemRe.FindStringSubmatch(line); m != nil {
		return p.parseCalloutList()
	}

	return p.parseParagraph()
}

// parseBlockMacro parses a `name::target[attrs]` block line (image,
// audio, video, toc, stem/latexmath/asciimath) into a leaf block.
func (p *blockParser) parseBlockMacro(name, target, attrRaw string) Node {
	start := p.lineStart[p.pos]
	meta := p.takePendingMetadata()
	applyInlineAttrList(meta.NamedAttrs, attrRaw)
	line := p.currentRaw()
	p.advance()
	end := p.lineStart[p.pos]

	kind := blockMacroKinds[name]
	b := newBlock(kind, start, end, []byte(line), nil, meta)
	b.principal = []Node{newPlainText(start, end, []byte(target))}

	return b
}

func isSectionMarker(marker string) bool {
	return marker[0] == '='
}

// takePendingMetadata consumes and clears the accumulated block metadata,
// returning a populated BlockMetadata.
func (p *blockParser) takePendingMetadata() BlockMetadata {
	meta := BlockMetadata{Options: map[string]bool{}}
	pm := p.pending
	p.pending.reset()

	if pm.id != "" {
		meta.ID = p.explicitID(pm.id)
	}
	if pm.style != "" {
		meta.Style = pm.style
	}
	meta.Roles = pm.roles
	if pm.opts != nil {
		meta.Options = pm.opts
	}
	if pm.attrs != nil {
		meta.NamedAttrs = pm.attrs
	} else {
		meta.NamedAttrs = NewAttributeList()
	}
	if pm.title != "" {
		meta.Title = p.parseInlineAt(pm.title, 0)
	}

	return meta
}

// uniqueID returns a guaranteed-unique id for an auto-generated slug
// (the §4.5 section-heading fallback, never an explicitly authored id),
// appending _2, _3, ... on collision.
func (p *blockParser) uniqueID(id string) string {
	candidate := id
	n := 2
	for p.ids[candidate] {
		candidate = id + "_" + strconv.Itoa(n)
		n++
	}
	p.ids[candidate] = true

	return candidate
}

// explicitID registers an explicitly authored id (`[#id]` or `[[id]]`).
// Per §7, a duplicate explicit id is not silently renamed: the later
// definition wins, and a DiagnosticAnchorConflict warning is recorded.
func (p *blockParser) explicitID(id string) string {
	if p.ids[id] {
		file, orig := through(p.sourceMapIn, p.lineStart[p.pos])
		line, col := p.diags.Locate(file, orig)
		p.diags.Add(Diagnostic{Severity: SeverityWarning, Kind: DiagnosticAnchorConflict,
			File: file, Line: line, Column: col,
			Message: "duplicate id #" + id + ": later definition wins"})
	}
	p.ids[id] = true

	return id
}

// applyBlockAttrLine parses a `[style,attr1,#id,.role,%opt]` line into
// pendingMetadata.
func (p *blockParser) applyBlockAttrLine(body string) {
	p.pending.hasAny = true
	p.pending.attrs = NewAttributeList()
	parts := splitTopLevelCommas(body)
	for i, raw := range parts {
		part := strings.TrimSpace(raw)
		if part == "" {
			continue
		}
		switch {
		case strings.HasPrefix(part, "#"):
			p.pending.id = part[1:]
		case strings.HasPrefix(part, "."):
			p.pending.roles = append(p.pending.roles, part[1:])
		case strings.HasPrefix(part, "%"):
			if p.pending.opts == nil {
				p.pending.opts = map[string]bool{}
			}
			p.pending.opts[part[1:]] = true
		case strings.Contains(part, "="):
			kv := strings.SplitN(part, "=", 2)
			name := strings.TrimSpace(kv[0])
			val := strings.Trim(strings.TrimSpace(kv[1]), `"`)
			p.pending.attrs.Set(name, val)
			if i == 0 {
				p.pending.style = val
			}
		case i == 0:
			p.pending.style = part
			p.pending.attrs.Positional = append(p.pending.attrs.Positional, part)
		default:
			p.pending.attrs.Positional = append(p.pending.attrs.Positional, part)
		}
	}
}

// ---- Section ----

func (p *blockParser) parseSection(parentLevel int) Node {
	line := p.currentRaw()
	m := sectionLineRe.FindStringSubmatch(line)
	markerLen := len(m[1])
	level := markerLen - 1

	start := p.lineStart[p.pos]
	meta := p.takePendingMetadata()
	titleText := m[2]
	titleStart := start + strings.Index(line, titleText)
	heading := p.parseInlineAt(titleText, titleStart)
	p.advance()
	if meta.ID == "" {
		meta.ID = p.uniqueID(slugify(titleText))
	}

	var children []Node
	for !p.atEOF() {
		if p.isBlank(p.pos) {
			p.advance()

			continue
		}
		if mm := sectionLineRe.FindStringSubmatch(p.currentRaw()); mm != nil && isSectionMarker(mm[1]) {
			nextLevel := len(mm[1]) - 1
			if nextLevel <= level {
				break
			}
		}
		node := p.parseBlock(level + 1)
		if node != nil {
			children = append(children, node)
		}
	}
	end := p.lineStart[p.pos]

	b := newBlock(NodeSection, start, end, []byte(p.sliceOriginal(start, end)), children, meta)
	b.level = level
	b.heading = heading

	return b
}

func slugify(title string) string {
	var b strings.Builder
	b.WriteByte('_')
	prevUnderscore := true
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevUnderscore = false
		} else if !prevUnderscore {
			b.WriteByte('_')
			prevUnderscore = true
		}
	}

	return strings.TrimSuffix(b.String(), "_")
}

func (p *blockParser) sliceOriginal(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(p.text) {
		end = len(p.text)
	}
	if start >= end {
		return ""
	}

	return p.text[start:end]
}

// ---- Paragraph ----

func (p *blockParser) parseParagraph() Node {
	start := p.lineStart[p.pos]
	meta := p.takePendingMetadata()

	admonitionKind := ""
	firstLine := p.currentRaw()
	textOffset := start
	if am := admonitionParaRe.FindStringSubmatch(firstLine); am != nil {
		admonitionKind = am[1]
		textOffset = start + len(firstLine) - len(am[2])
	} else if meta.Style == "NOTE" || meta.Style == "TIP" || meta.Style == "WARNING" ||
		meta.Style == "CAUTION" || meta.Style == "IMPORTANT" {
		admonitionKind = meta.Style
	}

	var sb strings.Builder
	first := true
	for !p.atEOF() && !p.isBlank(p.pos) && !p.isBlockOpenerLine(p.currentRaw()) {
		line := p.currentRaw()
		if first && admonitionKind != "" {
			if am := admonitionParaRe.FindStringSubmatch(line); am != nil {
				line = am[2]
			}
		}
		first = false
		sb.WriteString(line)
		sb.WriteByte('\n')
		p.advance()
	}
	end := p.lineStart[p.pos]
	text := strings.TrimRight(sb.String(), "\n")
	children := p.parseInlineAt(text, textOffset)

	kind := NodeParagraph
	if admonitionKind != "" {
		kind = NodeAdmonition
	}
	b := newBlock(kind, start, end, []byte(text), children, meta)
	b.admonitionKind = admonitionKind
	b.principal = children

	return b
}

// isBlockOpenerLine reports whether line starts a construct that must
// terminate an in-progress paragraph (§4.5: "Paragraph ends at a blank
// line or a block opener").
func (p *blockParser) isBlockOpenerLine(line string) bool {
	if sectionLineRe.MatchString(line) && isSectionMarker(sectionLineRe.FindStringSubmatch(line)[1]) {
		return true
	}
	if _, _, ok := isDelimiterLine(line); ok {
		return true
	}
	if _, ok := tableDelimiterSep(line); ok {
		return true
	}
	if blockAttrLineRe.MatchString(line) || blockTitleLineRe.MatchString(line) || anchorLineRe.MatchString(line) {
		return true
	}
	if isListMarkerLine(line) {
		return true
	}
	if thematicBreakRe.MatchString(line) || pageBreakRe.MatchString(line) || blockMacroRe.MatchString(line) {
		return true
	}

	return false
}

func (p *blockParser) parseInlineAt(text string, origOffset int) []Node {
	pre := preprocess(text, 0, origOffset, p.sourceMapIn, p.attrs, p.opts.AttributeMissing, p.diags)

	return parseInline(pre, p.diags)
}
