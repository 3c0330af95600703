package selector

import (
	"iter"

	"github.com/lukehoban/cssmatch/domtree"
)

// Find implements "find(node)": a lazy, document-order sequence of nodes
// matched by s within the subtree rooted at root (self, then depth-first
// over children).
func Find(s *Selector, root domtree.Node) iter.Seq[domtree.Node] {
	return func(yield func(domtree.Node) bool) {
		findInto(s, root, yield)
	}
}

// findInto walks the subtree, reporting whether the caller asked to stop.
func findInto(s *Selector, n domtree.Node, yield func(domtree.Node) bool) bool {
	if s.Selects(n) {
		if !yield(n) {
			return false
		}
	}
	for _, child := range n.Children() {
		if !findInto(s, child, yield) {
			return false
		}
	}
	return true
}

// FindAll drains Find into a slice, for callers not on the Go 1.23
// iterator protocol.
func FindAll(s *Selector, root domtree.Node) []domtree.Node {
	var out []domtree.Node
	for n := range Find(s, root) {
		out = append(out, n)
	}
	return out
}
