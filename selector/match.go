package selector

import "github.com/lukehoban/cssmatch/domtree"

// Selects implements "selects(element) -> bool" on the rightmost compound
// of s.
func (s *Selector) Selects(n domtree.Node) bool {
	if !s.thisSelect(n) {
		return false
	}
	if !s.attrsSelect(n) {
		return false
	}
	if s.Ancestor != nil && !s.ancestorSelects(n) {
		return false
	}
	if s.Parent != nil {
		p := n.Parent()
		if p == nil || !s.Parent.thisSelect(p) || !s.Parent.attrsSelect(p) {
			return false
		}
	}
	if s.Prev != nil {
		prev := previousSibling(n)
		if prev == nil || !s.Prev.thisSelect(prev) || !s.Prev.attrsSelect(prev) {
			return false
		}
	}
	return true
}

// ancestorSelects walks strictly up the ancestor chain looking for any
// ancestor whose Ancestor selector's full Selects holds, trying each
// ancestor in turn and stopping at the first one that succeeds.
func (s *Selector) ancestorSelects(n domtree.Node) bool {
	p := n.Parent()
	if p == nil {
		return false
	}
	if s.Ancestor.Selects(p) {
		return true
	}
	return s.ancestorSelects(p)
}

// previousSibling returns the node immediately preceding n among its
// parent's children, or nil if n is first or has no parent.
func previousSibling(n domtree.Node) domtree.Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	siblings := p.Children()
	for i, c := range siblings {
		if c == n {
			if i == 0 {
				return nil
			}
			return siblings[i-1]
		}
	}
	return nil
}
