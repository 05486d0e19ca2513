package asciidoc

import (
	"regexp"
	"strconv"
	"strings"
)

var colsEntryRe = regexp.MustCompile(`^(?:(\d+)\*)?(\d+)?([<^>])?(?:\.([<^>]))?([sehmlda])?$`)
var cellSpecRe = regexp.MustCompile(`^(?:(\d+)(\*))?(?:(?:(\d+)?\.(\d+)|(\d+))\+)?([<^>])?(?:\.([<^>]))?([sehmlda])?$`)

// parseTable parses a `|===`/`,===`/`:===`/`!===` delimited block into a
// Table, per §4.7. sep selects the cell-separator dialect: '|' and '!'
// are PSV (the latter used for nested tables), ',' is CSV, ':' is DSV.
func (p *blockParser) parseTable(sep byte) Node {
	start := p.lineStart[p.pos]
	meta := p.takePendingMetadata()
	opener := p.currentRaw()
	p.advance()

	bodyStart := p.pos
	closeIdx := len(p.lines)
	for i := p.pos; i < len(p.lines); i++ {
		if s, ok := tableDelimiterSep(p.rawLine(i)); ok && s == opener[0] {
			closeIdx = i

			break
		}
	}
	rawStart := p.lineStart[bodyStart]
	rawEnd := p.lineStart[closeIdx]
	body := p.sliceOriginal(rawStart, rawEnd)

	cols := p.tableColumns(meta)
	rawCells := splitTableCells(body, sep, rawStart)

	var expanded []rawTableCell
	for _, rc := range rawCells {
		spec := parseCellSpec(rc.specifier)
		if sep == '|' && spec.multiplier > 1 {
			for k := 0; k < spec.multiplier; k++ {
				expanded = append(expanded, rc)
			}
		} else {
			expanded = append(expanded, rc)
		}
	}

	numCols := len(cols)
	if numCols == 0 {
		numCols = inferColumnCount(expanded)
		for i := 0; i < numCols; i++ {
			cols = append(cols, TableColumn{HAlign: '<', VAlign: '<', Style: 'd'})
		}
	}

	file, orig := through(p.sourceMapIn, rawStart)
	rowNodes := assembleRows(expanded, cols, numCols, p.attrs, p.opts.AttributeMissing, p.diags, file, orig, p.opts.Strict)

	end := p.lineStart[p.pos]
	if closeIdx < len(p.lines) {
		p.pos = closeIdx
		p.advance()
		end = p.lineStart[p.pos]
	} else {
		p.pos = closeIdx
	}

	return newTable(start, end, []byte(p.sliceOriginal(start, end)), rowNodes, meta, cols)
}

// tableColumns parses the `cols=` attribute, per §4.7's compact column
// grammar: `(repeat*)?(width)?(halign)?(valign)?(style)?`.
func (p *blockParser) tableColumns(meta BlockMetadata) []TableColumn {
	raw, ok := meta.NamedAttrs.Get("cols")
	if !ok {
		return nil
	}
	var out []TableColumn
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		m := colsEntryRe.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		repeat := 1
		if m[1] != "" {
			repeat, _ = strconv.Atoi(m[1])
		}
		col := TableColumn{HAlign: '<', VAlign: '<', Style: 'd'}
		if m[2] != "" {
			col.Width, _ = strconv.Atoi(m[2])
		}
		if m[3] != "" {
			col.HAlign = m[3][0]
		}
		if m[4] != "" {
			col.VAlign = m[4][0]
		}
		if m[5] != "" {
			col.Style = m[5][0]
		}
		for k := 0; k < repeat; k++ {
			out = append(out, col)
		}
	}

	return out
}

type cellSpec struct {
	multiplier     int
	colspan        int
	rowspan        int
	halign, valign byte
	style          byte
}

// parseCellSpec parses the compact cell-specifier grammar of §4.7:
// `(N*)?(N.M+|N+|.M+)?(halign)?(.valign)?(style)?`.
func parseCellSpec(spec string) cellSpec {
	cs := cellSpec{colspan: 1, rowspan: 1}
	m := cellSpecRe.FindStringSubmatch(spec)
	if m == nil {
		return cs
	}
	if m[1] != "" && m[2] == "*" {
		cs.multiplier, _ = strconv.Atoi(m[1])
	}
	switch {
	case m[3] != "" && m[4] != "":
		cs.colspan, _ = strconv.Atoi(m[3])
		cs.rowspan, _ = strconv.Atoi(m[4])
	case m[4] != "":
		cs.rowspan, _ = strconv.Atoi(m[4])
	case m[5] != "":
		cs.colspan, _ = strconv.Atoi(m[5])
	}
	if cs.colspan == 0 {
		cs.colspan = 1
	}
	if cs.rowspan == 0 {
		cs.rowspan = 1
	}
	if m[6] != "" {
		cs.halign = m[6][0]
	}
	if m[7] != "" {
		cs.valign = m[7][0]
	}
	if m[8] != "" {
		cs.style = m[8][0]
	}

	return cs
}

type rawTableCell struct {
	specifier   string
	content     string
	contentFrom int // original-source offset of content start
	// endsLine records that a newline followed the content before trimming.
	endsLine bool
}

const cellSpecifierCharset = "0123456789*+.<^>sehmldaA"

// splitTableCells tokenizes body by sep into raw cells: each separator
// occurrence is preceded by an optional specifier run, and a cell's
// content extends from just after its separator to the start of the next
// cell's specifier (or end of body), per §4.7. Backslash escapes the
// separator in PSV/DSV; CSV additionally honors RFC 4180 double-quote
// enclosure.
func splitTableCells(body string, sep byte, baseOffset int) []rawTableCell {
	positions := findSeparatorPositions(body, sep)
	if len(positions) == 0 {
		return nil
	}

	specStarts := make([]int, len(positions))
	for i, p := range positions {
		specStarts[i] = specifierStart(body, p, positionBefore(positions, i))
	}

	var cells []rawTableCell
	for i, p := range positions {
		contentStart := p + 1
		var contentEnd int
		if i+1 < len(positions) {
			contentEnd = specStarts[i+1]
		} else {
			contentEnd = len(body)
		}
		if contentEnd < contentStart {
			contentEnd = contentStart
		}
		content := body[contentStart:contentEnd]
		endsLine := strings.Contains(content, "\n")
		content = strings.TrimRight(content, " \t\r\n")
		cells = append(cells, rawTableCell{
			specifier:   body[specStarts[i]:p],
			content:     content,
			contentFrom: baseOffset + contentStart,
			endsLine:    endsLine,
		})
	}

	return cells
}

func positionBefore(positions []int, i int) int {
	if i == 0 {
		return -1
	}

	return positions[i-1]
}

func specifierStart(body string, sepPos, priorSepPos int) int {
	j := sepPos
	for j > priorSepPos+1 && strings.IndexByte(cellSpecifierCharset, body[j-1]) >= 0 {
		if body[j-1] == '\n' {
			break
		}
		j--
	}

	return j
}

func findSeparatorPositions(body string, sep byte) []int {
	var out []int
	inQuote := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			i++

			continue
		}
		if sep == ',' && c == '"' {
			inQuote = !inQuote

			continue
		}
		if inQuote {
			continue
		}
		if c == sep {
			out = append(out, i)
		}
	}

	return out
}

func inferColumnCount(cells []rawTableCell) int {
	// Without cols=, the first row's cell count (by scanning up to the
	// first newline-terminated run) determines column count.
	count := 0
	for _, c := range cells {
		count++
		if c.endsLine {
			break
		}
	}
	if count == 0 {
		return 1
	}

	return count
}

// assembleRows lays raw cells into rows of width numCols, growing rows to
// absorb rowspan holes left by cells from earlier rows, per §4.7 and
// invariant 6 of §8.
func assembleRows(cells []rawTableCell, cols []TableColumn, numCols int, attrs *AttributeStore, mode AttributeMissingMode, diags *Diagnostics, file FileID, origStart int, strict bool) []Node {
	pending := make([]int, numCols) // remaining rowspan-1 occupying this column
	var rows []Node
	ci := 0
	for ci < len(cells) {
		var rowCells []Node
		col := 0
		rowStart, rowEnd := -1, -1
		for col < numCols {
			if pending[col] > 0 {
				pending[col]--
				col++

				continue
			}
			if ci >= len(cells) {
				break
			}
			rc := cells[ci]
			ci++
			spec := parseCellSpec(rc.specifier)
			halign, valign, style := resolveCellFacets(spec, cols, col)

			var children []Node
			isSubdoc := style == 'a'
			if isSubdoc {
				children = parseSubdocument(rc.content, rc.contentFrom, attrs, mode, diags)
			} else if style == 'l' || style == 'h' {
				children = []Node{newPlainText(rc.contentFrom, rc.contentFrom+len(rc.content), []byte(rc.content))}
			} else {
				pre := preprocess(rc.content, 0, rc.contentFrom, nil, attrs, mode, diags)
				children = parseInline(pre, diags)
			}

			cell := newTableCell(rc.contentFrom, rc.contentFrom+len(rc.content), []byte(rc.content),
				children, spec.colspan, spec.rowspan, halign, valign, style, isSubdoc)
			rowCells = append(rowCells, cell)
			if rowStart < 0 {
				rowStart = rc.contentFrom
			}
			rowEnd = rc.contentFrom + len(rc.content)

			for k := 0; k < spec.colspan && col+k < numCols; k++ {
				if spec.rowspan > 1 {
					pending[col+k] = spec.rowspan - 1
				}
			}
			col += spec.colspan
		}
		if rowStart < 0 {
			break
		}
		rows = append(rows, newTableRow(rowStart, rowEnd, nil, rowCells))
	}
	if numCols > 0 && len(cells) > 0 && len(cells)%numCols != 0 {
		sev := SeverityWarning
		if strict {
			sev = SeverityError
		}
		line, col := diags.Locate(file, origStart)
		diags.Add(Diagnostic{Severity: sev, Kind: DiagnosticTableMalformed, File: file,
			Line: line, Column: col,
			Message: "table cell count is not a multiple of the column count"})
	}

	return rows
}

func resolveCellFacets(spec cellSpec, cols []TableColumn, col int) (halign, valign, style byte) {
	halign, valign, style = '<', '<', 'd'
	if col < len(cols) {
		halign, valign, style = cols[col].HAlign, cols[col].VAlign, cols[col].Style
	}
	if spec.halign != 0 {
		halign = spec.halign
	}
	if spec.valign != 0 {
		valign = spec.valign
	}
	if spec.style != 0 {
		style = spec.style
	}

	return halign, valign, style
}

// parseSubdocument parses an AsciiDoc-style (`a|`) cell's content as a
// nested block stream, per §4.7's nesting rule. It shares the enclosing
// document's attribute store and diagnostics channel.
func parseSubdocument(content string, baseOffset int, attrs *AttributeStore, mode AttributeMissingMode, diags *Diagnostics) []Node {
	sub := &blockParser{
		text:  content,
		lines: splitKeepEnds([]byte(content)),
		attrs: attrs,
		diags: diags,
		ids:   make(map[string]bool),
		opts:  ParserOptions{AttributeMissing: mode},
	}
	sub.lineStart = make([]int, len(sub.lines)+1)
	off := baseOffset
	for i, l := range sub.lines {
		sub.lineStart[i] = off
		off += len(l)
	}
	sub.lineStart[len(sub.lines)] = off

	var children []Node
	for !sub.atEOF() {
		if sub.isBlank(sub.pos) {
			sub.advance()

			continue
		}
		if n := sub.parseBlock(0); n != nil {
			children = append(children, n)
		}
	}

	return children
}
