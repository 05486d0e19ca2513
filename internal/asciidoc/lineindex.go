package asciidoc

import "sort"

// LineIndex maps a byte offset in a text to a 1-based (line, column) pair
// via binary search over recorded line-start offsets. Lines start after
// each \n; a \r before it counts as an ordinary byte of the line.
type LineIndex struct {
	starts []int
}

// NewLineIndex scans text once and records the offset following each
// newline as a line start.
func NewLineIndex(text []byte) *LineIndex {
	starts := []int{0}
	for i, b := range text {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &LineIndex{starts: starts}
}

// Position returns the 1-based line and column for offset.
func (idx *LineIndex) Position(offset int) (line, column int) {
	i := sort.Search(len(idx.starts), func(i int) bool { return idx.starts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}

	return i + 1, offset - idx.starts[i] + 1
}

// FileRegistry retains the raw bytes of every file participating in a
// parse (the root document and each spliced include target, exactly as
// the Include Resolver read them), building a LineIndex for a file the
// first time a diagnostic needs to be located within it. This is what
// lets a Diagnostic carry its primary source location (§4.8) instead of
// a bare byte offset.
type FileRegistry struct {
	texts map[FileID][]byte
	idx   map[FileID]*LineIndex
}

func newFileRegistry() *FileRegistry {
	return &FileRegistry{texts: make(map[FileID][]byte), idx: make(map[FileID]*LineIndex)}
}

// register records the bytes backing file, as fed to the Include
// Resolver's splice pass.
func (r *FileRegistry) register(file FileID, text []byte) {
	r.texts[file] = text
}

// Position resolves offset (a byte offset into file's registered text)
// to a 1-based (line, column) pair. Returns (0, 0) for an unregistered
// file, e.g. a subdocument table cell that has no file of its own.
func (r *FileRegistry) Position(file FileID, offset int) (line, column int) {
	idx, ok := r.idx[file]
	if !ok {
		text, known := r.texts[file]
		if !known {
			return 0, 0
		}
		idx = NewLineIndex(text)
		r.idx[file] = idx
	}

	return idx.Position(offset)
}
