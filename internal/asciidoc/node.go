package asciidoc

import "hash/fnv"

// Node is the interface implemented by every AST node, block or inline.
// Nodes are immutable after construction.
type Node interface {
	// Type returns the variant classification of this node.
	Type() NodeType

	// Span returns the byte offset range (start, end) of this node in the
	// *original* source, already resolved through the source map.
	Span() (start, end int)

	// Hash returns a content hash for identity tracking and fast Equal
	// comparisons. Nodes with the same hash have the same semantic
	// content.
	Hash() uint64

	// Source returns a copy of the text this node was parsed from: the
	// post-include source for blocks, the preprocessed text of the
	// enclosing inline context for inline nodes.
	Source() []byte

	// Children returns this node's children in document order. The
	// returned slice is a defensive copy.
	Children() []Node

	// Equal performs a deep structural comparison with another node.
	Equal(other Node) bool
}

// Block is implemented by every block-level node; it exposes the metadata
// every Block carries per the data model (id, title, roles, options,
// style, named attributes, substitutions).
type Block interface {
	Node
	Metadata() *BlockMetadata
}

// BlockMetadata holds the facets every Block carries, drawn from its
// attribute list.
type BlockMetadata struct {
	ID            string
	Title         []Node // inline tree; nil when no block title was given
	Roles         []string
	Options       map[string]bool
	Style         string
	NamedAttrs    *AttributeList
	Substitutions SubstitutionSpec
}

// SubstitutionSpec describes how a block's raw text is converted to
// rendered text: either a full replacement list, or a sequence of
// `+name`/`-name` operations applied to a baseline group set.
type SubstitutionSpec struct {
	Replace []string
	Add     []string
	Remove  []string
}

// AttributeList is the ordered, name-addressable result of parsing an
// attribute list (`[key=value, #id, .role, %option, style]`).
type AttributeList struct {
	Positional []string
	Named      map[string]string
	order      []string
}

// NewAttributeList returns an empty, ready-to-use AttributeList.
func NewAttributeList() *AttributeList {
	return &AttributeList{Named: make(map[string]string)}
}

// Set records a named attribute, preserving first-insertion order for
// Names().
func (a *AttributeList) Set(name, value string) {
	if _, ok := a.Named[name]; !ok {
		a.order = append(a.order, name)
	}
	a.Named[name] = value
}

// Get returns the named attribute's value and whether it was set.
func (a *AttributeList) Get(name string) (string, bool) {
	v, ok := a.Named[name]

	return v, ok
}

// Names returns named attributes in first-insertion order.
func (a *AttributeList) Names() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)

	return out
}

// baseNode holds the fields common to every node, block or inline.
type baseNode struct {
	kind     NodeType
	start    int
	end      int
	source   []byte
	children []Node
	hash     uint64
}

func (n *baseNode) Type() NodeType { return n.kind }

func (n *baseNode) Span() (start, end int) { return n.start, n.end }

func (n *baseNode) Hash() uint64 { return n.hash }

func (n *baseNode) Source() []byte { return n.source }

func (n *baseNode) Children() []Node {
	if n.children == nil {
		return nil
	}
	out := make([]Node, len(n.children))
	copy(out, n.children)

	return out
}

// computeHash hashes a node's type, source bytes, and children hashes with
// FNV-1a. extra carries type-specific fields (title text, URL, language,
// …) that distinguish otherwise-identical nodes.
func computeHash(kind NodeType, source []byte, children []Node, extra []byte) uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(kind)})
	h.Write(source)
	for _, c := range children {
		ch := c.Hash()
		h.Write([]byte{
			byte(ch >> 56), byte(ch >> 48), byte(ch >> 40), byte(ch >> 32),
			byte(ch >> 24), byte(ch >> 16), byte(ch >> 8), byte(ch),
		})
	}
	h.Write(extra)

	return h.Sum64()
}

// equalNodes performs a deep structural comparison, used by every
// concrete node's Equal method as the fallback after type-specific field
// comparisons.
func equalNodes(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() || a.Hash() != b.Hash() {
		return false
	}
	if !bytesEqual(a.Source(), b.Source()) {
		return false
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !equalNodes(ac[i], bc[i]) {
			return false
		}
	}

	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
