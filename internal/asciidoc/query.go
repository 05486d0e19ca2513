package asciidoc

// Predicate is a test applied to a single node during tree traversal.
type Predicate func(Node) bool

// IsType returns a Predicate matching nodes of exactly t.
func IsType(t NodeType) Predicate {
	return func(n Node) bool { return n.Type() == t }
}

// HasChild returns a Predicate matching nodes with at least one direct
// child satisfying pred.
func HasChild(pred Predicate) Predicate {
	return func(n Node) bool {
		for _, c := range n.Children() {
			if pred(c) {
				return true
			}
		}

		return false
	}
}

// HasDescendant returns a Predicate matching nodes with at least one
// descendant, at any depth, satisfying pred.
func HasDescendant(pred Predicate) Predicate {
	return func(n Node) bool {
		return Exists(n, pred)
	}
}

// InRange returns a Predicate matching nodes whose Span lies entirely
// within [lo, hi).
func InRange(lo, hi int) Predicate {
	return func(n Node) bool {
		s, e := n.Span()

		return s >= lo && e <= hi
	}
}

// HasName returns a Predicate matching nodes whose Type().String() equals
// name (the canonical JSON variant name).
func HasName(name string) Predicate {
	return func(n Node) bool { return n.Type().String() == name }
}

// And combines predicates with logical conjunction.
func And(preds ...Predicate) Predicate {
	return func(n Node) bool {
		for _, p := range preds {
			if !p(n) {
				return false
			}
		}

		return true
	}
}

// Or combines predicates with logical disjunction.
func Or(preds ...Predicate) Predicate {
	return func(n Node) bool {
		for _, p := range preds {
			if p(n) {
				return true
			}
		}

		return false
	}
}

// Not negates pred.
func Not(pred Predicate) Predicate {
	return func(n Node) bool { return !pred(n) }
}

// Find walks root and every descendant in document order, returning every
// node satisfying pred, root included.
func Find(root Node, pred Predicate) []Node {
	var out []Node
	var walk func(Node)
	walk = func(n Node) {
		if pred(n) {
			out = append(out, n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)

	return out
}

// FindFirst returns the first node in document order (root included)
// satisfying pred, or nil.
func FindFirst(root Node, pred Predicate) Node {
	var found Node
	var walk func(Node) bool
	walk = func(n Node) bool {
		if pred(n) {
			found = n

			return true
		}
		for _, c := range n.Children() {
			if walk(c) {
				return true
			}
		}

		return false
	}
	walk(root)

	return found
}

// FindByType is a convenience wrapper over Find for IsType(t).
func FindByType(root Node, t NodeType) []Node {
	return Find(root, IsType(t))
}

// FindFirstByType is a convenience wrapper over FindFirst for IsType(t).
func FindFirstByType(root Node, t NodeType) Node {
	return FindFirst(root, IsType(t))
}

// All reports whether every node in root's tree (root included) satisfies
// pred.
func All(root Node, pred Predicate) bool {
	return FindFirst(root, Not(pred)) == nil
}

// Any reports whether some node in root's tree (root included) satisfies
// pred; an alias of Exists kept for symmetry with All.
func Any(root Node, pred Predicate) bool {
	return Exists(root, pred)
}

// Exists reports whether some node in root's tree (root included)
// satisfies pred.
func Exists(root Node, pred Predicate) bool {
	return FindFirst(root, pred) != nil
}

// Count returns the number of nodes in root's tree (root included)
// satisfying pred.
func Count(root Node, pred Predicate) int {
	return len(Find(root, pred))
}
