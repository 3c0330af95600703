package selector

import "github.com/lukehoban/cssmatch/cssom"

// SplitList splits a selector list's component-value sequence on
// top-level Comma tokens into one prelude per selector, mirroring how the
// component-value parser splits a function's arguments (cssom.FunctionValue.Args).
// Each returned slice can be compiled independently with Compile.
func SplitList(prelude []cssom.Primitive) [][]cssom.Primitive {
	var groups [][]cssom.Primitive
	var current []cssom.Primitive
	for _, p := range prelude {
		if p.Token != nil && p.Token.Kind == cssom.Comma {
			groups = append(groups, current)
			current = nil
			continue
		}
		current = append(current, p)
	}
	groups = append(groups, current)
	return groups
}

// CompileList splits prelude into comma-separated selectors and compiles
// each independently, returning them in order.
func CompileList(prelude []cssom.Primitive) ([]*Selector, error) {
	groups := SplitList(prelude)
	out := make([]*Selector, 0, len(groups))
	for _, g := range groups {
		sel, err := Compile(g)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}
