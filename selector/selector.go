// Package selector implements a CSS Selectors Level 3 subset: a compiler
// from a parsed selector prelude to a linked predicate chain, a matcher
// that evaluates that chain against a domtree.Node, and a document-order
// finder. Consumes cssom for tokenization/parsing and domtree for the
// host tree, generalized from CSS 2.1 class/ID/tag matching to the full
// type/universal/attribute/combinator grammar.
//
// Not implemented (out of scope): pseudo-classes and pseudo-elements,
// :not(), the general sibling combinator (~), cascade and
// specificity-driven rule ordering.
package selector

import (
	"strings"

	"github.com/lukehoban/cssmatch/domtree"
)

// Op is an attribute selector's match operator.
type Op int

const (
	// OpEquals is "=": the attribute value equals Value exactly.
	OpEquals Op = iota
	// OpIncludes is "~=": Value is one of the attribute's
	// whitespace-separated tokens.
	OpIncludes
	// OpDashMatch is "|=": the attribute value equals Value, or begins
	// with Value followed by "-".
	OpDashMatch
	// OpPrefix is "^=": the attribute value begins with Value.
	OpPrefix
	// OpSuffix is "$=": the attribute value ends with Value.
	OpSuffix
	// OpSubstring is "*=": the attribute value contains Value.
	OpSubstring
)

// AttributeSelector is "{ name, value: Option<string>, op }". When HasValue
// is false, the selector requires only that the attribute
// be present, regardless of its value.
type AttributeSelector struct {
	Name     string
	Value    string
	HasValue bool
	Op       Op
}

// Selector is a compound selector linked to at most one predecessor via
// exactly one of Ancestor, Parent, or Prev: a right-anchored singly-linked
// chain of owned compounds, a Go-idiomatic alternative to mutable
// back-pointers.
//
// Tag is empty for a universal compound, including the case of a lone
// AttributeSelector with no type test: such a selector is treated as a
// universal compound carrying that attribute.
type Selector struct {
	Tag   string
	Attrs []AttributeSelector

	Ancestor *Selector // descendant combinator (" ")
	Parent   *Selector // child combinator (">")
	Prev     *Selector // adjacent-sibling combinator ("+")
}

// descendant links s as the ancestor of next and returns next, the new
// rightmost compound.
func (s *Selector) descendant(next *Selector) *Selector {
	next.Ancestor = s
	return next
}

// child links s as the parent of next and returns next.
func (s *Selector) child(next *Selector) *Selector {
	next.Parent = s
	return next
}

// followedBy links s as the previous sibling of next and returns next.
func (s *Selector) followedBy(next *Selector) *Selector {
	next.Prev = s
	return next
}

// thisSelect is the type test: a universal compound (empty Tag) matches
// any element; otherwise the names must match.
func (s *Selector) thisSelect(n domtree.Node) bool {
	if s.Tag == "" {
		return true
	}
	return s.Tag == n.Name()
}

// attrsSelect is the attribute test: every attribute selector on the
// compound must match.
func (s *Selector) attrsSelect(n domtree.Node) bool {
	for _, a := range s.Attrs {
		if !a.matches(n) {
			return false
		}
	}
	return true
}

// matches evaluates one attribute selector against a node. A node without
// attributes matches no attribute selector.
func (a AttributeSelector) matches(n domtree.Node) bool {
	v, ok := n.Attr(a.Name)
	if !ok {
		return false
	}
	if !a.HasValue {
		return true
	}
	switch a.Op {
	case OpEquals:
		return v == a.Value
	case OpIncludes:
		for _, tok := range strings.Fields(v) {
			if tok == a.Value {
				return true
			}
		}
		return false
	case OpDashMatch:
		return v == a.Value || strings.HasPrefix(v, a.Value+"-")
	case OpPrefix:
		return strings.HasPrefix(v, a.Value)
	case OpSuffix:
		return strings.HasSuffix(v, a.Value)
	case OpSubstring:
		return strings.Contains(v, a.Value)
	default:
		return false
	}
}
