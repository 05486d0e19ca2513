package asciidoc

import (
	"strconv"
	"strings"
)

var delimiterKindByChar = map[byte]NodeType{
	'/': NodeComment,
	'=': NodeExample,
	'-': NodeListing,
	'.': NodeLiteral,
	'*': NodeSidebar,
	'+': NodePass,
	'_': NodeQuote,
}

// isDelimiterLine recognizes a delimited-block opener or closer line: a
// run of four or more identical characters from the fixed delimiter
// alphabet, or the two-character open-block delimiter `--`, per §4.5.
func isDelimiterLine(line string) (kind NodeType, length int, ok bool) {
	if line == "--" {
		return NodeOpen, 2, true
	}
	if len(line) < 4 {
		return 0, 0, false
	}
	c := line[0]
	k, known := delimiterKindByChar[c]
	if !known {
		return 0, 0, false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return 0, 0, false
		}
	}

	return k, len(line), true
}

// isTableDelimiterLine / tableDelimiterSep recognize `|===`, `,===`,
// `:===`, `!===` and longer runs of `=`.
func tableDelimiterSep(line string) (sep byte, ok bool) {
	if len(line) < 4 {
		return 0, false
	}
	switch line[0] {
	case '|', ',', ':', '!':
	default:
		return 0, false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != '=' {
			return 0, false
		}
	}

	return line[0], true
}

func isTableDelimiterLine(line string) bool {
	_, ok := tableDelimiterSep(line)

	return ok
}

// verbatimKinds are block kinds whose content is never recursed into by
// the block grammar: listing, literal, pass, and comment blocks skip all
// markup per §4.5.
func isVerbatimKind(kind NodeType) bool {
	switch kind {
	case NodeListing, NodeLiteral, NodePass, NodeComment:
		return true
	default:
		return false
	}
}

// parseDelimitedBlock consumes an opener line already identified as kind,
// reads until a line byte-identical to the opener, and either parses the
// interior recursively (container kinds) or keeps it raw (verbatim
// kinds), per §4.5's nesting discipline: a nested block of the same kind
// requires a strictly longer delimiter.
func (p *blockParser) parseDelimitedBlock(kind NodeType, opener string, length int) Node {
	start := p.lineStart[p.pos]
	meta := p.takePendingMetadata()
	if kind == NodeQuote && meta.Style == "verse" {
		kind = NodeVerse
	}
	p.advance() // consume opener

	contentStart := p.pos
	nested := "" // opener of a longer same-kind block open inside this one
	var closeIdx = -1
	for i := p.pos; i < len(p.lines); i++ {
		line := p.rawLine(i)
		if nested != "" {
			if line == nested {
				nested = ""
			}

			continue
		}
		if line == opener {
			closeIdx = i

			break
		}
		if k, l, ok := isDelimiterLine(line); ok && k == kind && l > length {
			nested = line
		}
	}
	if closeIdx < 0 {
		closeIdx = len(p.lines)
	}

	rawStart := p.lineStart[contentStart]
	rawEnd := p.lineStart[closeIdx]
	raw := strings.TrimSuffix(p.sliceOriginal(rawStart, rawEnd), "\n")

	var children []Node
	var language []byte
	if lang, ok := meta.NamedAttrs.Get("language"); ok {
		language = []byte(lang)
	} else if meta.Style == "source" && len(meta.NamedAttrs.Positional) > 1 {
		language = []byte(meta.NamedAttrs.Positional[1])
	}

	if isVerbatimKind(kind) {
		if kind == NodeListing || kind == NodeLiteral {
			children = p.parseCalloutsInVerbatim(raw, rawStart)
		}
	} else {
		sub := &blockParser{
			text: p.text, lines: splitKeepEnds([]byte(raw)), sourceMapIn: p.sourceMapIn,
			attrs: p.attrs, diags: p.diags, opts: p.opts, doctype: p.doctype, ids: p.ids,
		}
		sub.lineStart = make([]int, len(sub.lines)+1)
		off := rawStart
		for i, l := range sub.lines {
			sub.lineStart[i] = off
			off += len(l)
		}
		sub.lineStart[len(sub.lines)] = off
		for !sub.atEOF() {
			if sub.isBlank(sub.pos) {
				sub.advance()

				continue
			}
			if n := sub.parseBlock(0); n != nil {
				children = append(children, n)
			}
		}
	}

	p.pos = closeIdx
	if p.pos < len(p.lines) {
		p.advance() // consume closer
	}
	end := p.lineStart[p.pos]

	b := newBlock(kind, start, end, []byte(raw), children, meta)
	b.language = language

	return b
}

// parseCalloutsInVerbatim scans raw verbatim content for trailing `<N>`
// / `<.>` callout markers and returns a flat child list alternating
// plain-text runs and NodeCalloutRef markers so a backend can render the
// content with callout numbers inline. `<.>` is resolved by counting
// prior callouts already emitted anywhere in this block (§4.6).
func (p *blockParser) parseCalloutsInVerbatim(raw string, rawStart int) []Node {
	var children []Node
	lines := splitKeepEnds([]byte(raw))
	offset := rawStart
	count := 0
	p.calloutSeq = 0
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r\n")
		if idx, num, ok := findTrailingCallout(trimmed); ok {
			count++
			textPart := trimmed[:idx]
			children = append(children, newPlainText(offset, offset+len(textPart), []byte(textPart)))
			if num == 0 {
				p.calloutSeq++
				num = p.calloutSeq
			} else if num > p.calloutSeq {
				p.calloutSeq = num
			}
			ref := newInline(NodeCalloutRef, offset+idx, offset+len(trimmed), []byte(trimmed[idx:]), nil)
			ref.number = num
			ref.rehash()
			children = append(children, ref)
			children = append(children, newPlainText(offset+len(trimmed), offset+len(line), []byte(line[len(trimmed):])))
		} else {
			children = append(children, newPlainText(offset, offset+len(line), []byte(line)))
		}
		offset += len(line)
	}
	p.lastVerbatimCallouts = count

	return children
}

func findTrailingCallout(line string) (idx, num int, ok bool) {
	trimmed := strings.TrimRight(line, " \t")
	if !strings.HasSuffix(trimmed, ">") {
		return 0, 0, false
	}
	open := strings.LastIndexByte(trimmed, '<')
	if open < 0 {
		return 0, 0, false
	}
	inner := trimmed[open+1 : len(trimmed)-1]
	if inner == "." {
		return open, 0, true
	}
	n := 0
	for _, r := range inner {
		if r < '0' || r > '9' {
			return 0, 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n == 0 {
		return 0, 0, false
	}

	return open, n, true
}

// parseCalloutList parses a trailing `<N> text` / `<.> text` list that
// documents the callouts inside a preceding verbatim block.
func (p *blockParser) parseCalloutList() Node {
	start := p.lineStart[p.pos]
	meta := p.takePendingMetadata()
	var items []Node
	seq := 0
	for !p.atEOF() {
		m := calloutListItemRe.FindStringSubmatch(p.currentRaw())
		if m == nil {
			break
		}
		seq++
		num := seq
		if m[1] != "." {
			n := 0
			for _, r := range m[1] {
				n = n*10 + int(r-'0')
			}
			num = n
		}
		itemStart := p.lineStart[p.pos]
		text := m[2]
		principal := p.parseInlineAt(text, itemStart+strings.Index(p.currentRaw(), text))
		p.advance()
		itemEnd := p.lineStart[p.pos]
		item := newBlock(NodeCalloutListItem, itemStart, itemEnd, []byte(text), nil, BlockMetadata{NamedAttrs: NewAttributeList()})
		item.principal = principal
		item.calloutNumber = num
		items = append(items, item)
	}
	end := p.lineStart[p.pos]
	list := newBlock(NodeCalloutList, start, end, []byte(p.sliceOriginal(start, end)), items, meta)

	if p.lastVerbatimCallouts > 0 && len(items) != p.lastVerbatimCallouts {
		file, orig := through(p.sourceMapIn, start)
		line, col := p.diags.Locate(file, orig)
		p.diags.Add(Diagnostic{Severity: SeverityWarning, Kind: DiagnosticCalloutMismatch, File: file,
			Line: line, Column: col,
			Message: "callout list has " + strconv.Itoa(len(items)) + " items but the preceding block has " + strconv.Itoa(p.lastVerbatimCallouts) + " callouts"})
	}
	p.lastVerbatimCallouts = 0

	return list
}
