package asciidoc

import (
	"regexp"
	"strings"
)

var ulMarkerRe = regexp.MustCompile(`^(\*{1,5}|-)\s+(.*)$`)
var olMarkerRe = regexp.MustCompile(`^(\.{1,5}|\d+\.)\s+(.*)$`)
var dlMarkerRe = regexp.MustCompile(`^(\S.*?)(:{2,4}|;;)\s+(.*)$`)
var continuationLineRe = regexp.MustCompile(`^\+\s*$`)

type listMarker struct {
	kind   string // "unordered", "ordered", "description"
	marker string
	term   string
	body   string
}

// isListMarkerLine reports whether line opens an unordered, ordered, or
// description list item, per §4.5.
func isListMarkerLine(line string) bool {
	_, ok := matchListMarker(line)

	return ok
}

func matchListMarker(line string) (listMarker, bool) {
	if m := ulMarkerRe.FindStringSubmatch(line); m != nil {
		return listMarker{kind: "unordered", marker: m[1], body: m[2]}, true
	}
	if m := olMarkerRe.FindStringSubmatch(line); m != nil {
		return listMarker{kind: "ordered", marker: normalizeOLMarker(m[1]), body: m[2]}, true
	}
	if m := dlMarkerRe.FindStringSubmatch(line); m != nil {
		return listMarker{kind: "description", marker: m[2], term: m[1], body: m[3]}, true
	}

	return listMarker{}, false
}

// normalizeOLMarker collapses `1.`, `2.`, `17.` (digit-prefixed ordered
// markers) to a single marker identity `1.` so runs of numbered items at
// the same nesting level are recognized as one list, per §4.5: nesting is
// "by marker identity", not by the specific digits used.
func normalizeOLMarker(m string) string {
	if strings.HasSuffix(m, ".") && m != "." {
		return "1."
	}

	return m
}

// parseList parses a run of list items beginning at the current line,
// recursing into nested lists when an encountered marker has not
// appeared among ancestors, and returning control to the caller when a
// line's marker matches an ancestor marker (per §4.5's nesting rule).
func (p *blockParser) parseList() Node {
	start, ok := matchListMarker(p.currentRaw())
	if !ok {
		return p.parseParagraph()
	}

	return p.parseListLevel(start.kind, start.marker, nil)
}

func (p *blockParser) parseListLevel(kind, marker string, ancestors []string) Node {
	start := p.lineStart[p.pos]
	meta := p.takePendingMetadata()
	var items []Node
	myAncestors := append(append([]string{}, ancestors...), marker)

	for !p.atEOF() {
		lm, ok := matchListMarker(p.currentRaw())
		if ok && lm.kind == kind && lm.marker == marker {
			items = append(items, p.parseListItem(kind, lm, myAncestors))

			continue
		}
		if ok && containsMarker(ancestors, lm.marker) {
			break
		}
		if ok {
			// A new nested list attaches to the previous item.
			if len(items) == 0 {
				break
			}
			nested := p.parseListLevel(lm.kind, lm.marker, myAncestors)
			prev := items[len(items)-1].(*blockNode)
			prev.children = append(prev.children, nested)
			prev.rehash()

			continue
		}
		if p.isBlank(p.pos) {
			if p.peekContinuesList(kind, marker) {
				p.advance()

				continue
			}

			break
		}
		if continuationLineRe.MatchString(p.currentRaw()) {
			p.advance()
			if len(items) > 0 && !p.atEOF() {
				blk := p.parseBlock(0)
				if blk != nil {
					prev := items[len(items)-1].(*blockNode)
					prev.children = append(prev.children, blk)
					prev.rehash()
				}
			}

			continue
		}

		break
	}

	end := p.lineStart[p.pos]
	list := newBlock(NodeList, start, end, []byte(p.sliceOriginal(start, end)), items, meta)
	list.listKind = kind
	list.marker = marker

	return list
}

func containsMarker(markers []string, m string) bool {
	for _, a := range markers {
		if a == m {
			return true
		}
	}

	return false
}

// peekContinuesList reports whether, after the current blank line, the
// list of kind/marker resumes (so the blank line does not terminate it).
func (p *blockParser) peekContinuesList(kind, marker string) bool {
	for i := p.pos + 1; i < len(p.lines); i++ {
		line := p.rawLine(i)
		if strings.TrimSpace(line) == "" {
			continue
		}
		lm, ok := matchListMarker(line)

		return ok && lm.kind == kind && lm.marker == marker
	}

	return false
}

// parseListItem consumes one item line, parses its principal text, and
// returns the item block with no children yet
// (nested lists/continuations are attached by the caller).
func (p *blockParser) parseListItem(kind string, lm listMarker, ancestors []string) Node {
	itemStart := p.lineStart[p.pos]
	line := p.currentRaw()
	bodyOffset := itemStart + (len(line) - len(lm.body))
	p.advance()

	principal := p.parseInlineAt(lm.body, bodyOffset)
	itemEnd := p.lineStart[p.pos]

	itemKind := NodeListItem
	if kind == "description" {
		itemKind = NodeDescriptionListItem
	}

	item := newBlock(itemKind, itemStart, itemEnd, []byte(lm.body), nil, BlockMetadata{NamedAttrs: NewAttributeList()})
	item.principal = principal
	item.marker = lm.marker
	if kind == "description" && lm.term != "" {
		item.heading = p.parseInlineAt(lm.term, itemStart)
	}

	return item
}
