package selector

import (
	"fmt"

	"github.com/lukehoban/cssmatch/cssom"
)

// compileMode is the selector compiler's state.
type compileMode int

const (
	modeTopLevel compileMode = iota
	modeElement
	modeChild
	modeFollowedBy
)

// Compile transforms one selector's component-value sequence into a
// linked predicate chain and returns its rightmost compound, the handle
// used for matching. Compile handles a single selector; callers matching
// a comma-separated selector list should first split on top-level
// Comma tokens the way the component-value parser splits function
// arguments (see SplitList).
//
// Compile is total on the selector grammar it supports; an input outside
// that grammar returns an error rather than panicking.
func Compile(prelude []cssom.Primitive) (*Selector, error) {
	items := stripWhitespace(prelude)
	if len(items) == 0 {
		return nil, fmt.Errorf("selector: empty selector")
	}

	mode := modeTopLevel
	var current *Selector
	i := 0

	next := func(make func(string) *Selector) (*Selector, bool) {
		tok := items[i].Token
		switch {
		case tok != nil && tok.Kind == cssom.Ident:
			i++
			return make(tok.Value), true
		case tok != nil && tok.Kind == cssom.Delim && tok.DelimValue == '*':
			i++
			return make(""), true
		default:
			return nil, false
		}
	}

	for i < len(items) {
		item := items[i]

		switch mode {
		case modeTopLevel:
			switch {
			case item.Token != nil && item.Token.Kind == cssom.OpenSquare:
				// Unreachable: OpenSquare is only ever a bare token when
				// it came from an unbalanced stream; a balanced "[...]"
				// is already a SimpleBlock by the time Compile sees it.
				return nil, fmt.Errorf("selector: unbalanced '['")
			case item.Block != nil && item.Block.Opener == cssom.OpenSquare:
				attr, err := compileAttribute(item.Block)
				if err != nil {
					return nil, err
				}
				current = &Selector{Attrs: []AttributeSelector{attr}}
				i++
			default:
				sel, ok := next(func(name string) *Selector { return &Selector{Tag: name} })
				if !ok {
					return nil, fmt.Errorf("selector: unexpected token %s at selector start", displayPrimitive(item))
				}
				current = sel
			}
			mode = modeElement

		case modeElement:
			switch {
			case item.Block != nil && item.Block.Opener == cssom.OpenSquare:
				attr, err := compileAttribute(item.Block)
				if err != nil {
					return nil, err
				}
				current.Attrs = append(current.Attrs, attr)
				i++
			case item.Token != nil && item.Token.Kind == cssom.Delim && item.Token.DelimValue == '>':
				i++
				mode = modeChild
			case item.Token != nil && item.Token.Kind == cssom.Delim && item.Token.DelimValue == '+':
				i++
				mode = modeFollowedBy
			default:
				sel, ok := next(func(name string) *Selector { return current.descendant(&Selector{Tag: name}) })
				if !ok {
					return nil, fmt.Errorf("selector: unexpected token %s", displayPrimitive(item))
				}
				current = sel
			}

		case modeChild:
			sel, ok := next(func(name string) *Selector { return current.child(&Selector{Tag: name}) })
			if !ok {
				return nil, fmt.Errorf("selector: expected a type or universal selector after '>', got %s", displayPrimitive(item))
			}
			current = sel
			mode = modeElement

		case modeFollowedBy:
			sel, ok := next(func(name string) *Selector { return current.followedBy(&Selector{Tag: name}) })
			if !ok {
				return nil, fmt.Errorf("selector: expected a type or universal selector after '+', got %s", displayPrimitive(item))
			}
			current = sel
			mode = modeElement
		}
	}

	switch mode {
	case modeChild:
		return nil, fmt.Errorf("selector: expected a type or universal selector after '>'")
	case modeFollowedBy:
		return nil, fmt.Errorf("selector: expected a type or universal selector after '+'")
	}
	return current, nil
}

// compileAttribute implements the Attribute mode: the square block's body
// has one of three shapes, an identifier name alone (presence), name =
// string (equality), or name op1 op2 string for one of the two-character
// operators.
func compileAttribute(block *cssom.SimpleBlock) (AttributeSelector, error) {
	body := stripWhitespace(block.Body)
	if len(body) == 0 || body[0].Token == nil || body[0].Token.Kind != cssom.Ident {
		return AttributeSelector{}, fmt.Errorf("selector: attribute selector must start with an identifier")
	}
	name := body[0].Token.Value

	switch len(body) {
	case 1:
		return AttributeSelector{Name: name}, nil
	case 3:
		op, str, err := attributeOperator(body[1], nil, body[2])
		if err != nil {
			return AttributeSelector{}, err
		}
		return AttributeSelector{Name: name, HasValue: true, Op: op, Value: str}, nil
	case 4:
		op, str, err := attributeOperator(body[1], &body[2], body[3])
		if err != nil {
			return AttributeSelector{}, err
		}
		return AttributeSelector{Name: name, HasValue: true, Op: op, Value: str}, nil
	default:
		return AttributeSelector{}, fmt.Errorf("selector: malformed attribute selector")
	}
}

// attributeOperator resolves the one- or two-delimiter operator sequence
// and extracts the trailing string's value.
func attributeOperator(op1 cssom.Primitive, op2 *cssom.Primitive, value cssom.Primitive) (Op, string, error) {
	if value.Token == nil || value.Token.Kind != cssom.String {
		return 0, "", fmt.Errorf("selector: attribute value must be a string")
	}
	str := value.Token.Value

	if op2 == nil {
		if op1.Token != nil && op1.Token.Kind == cssom.Delim && op1.Token.DelimValue == '=' {
			return OpEquals, str, nil
		}
		return 0, "", fmt.Errorf("selector: unsupported attribute operator")
	}

	if op1.Token == nil || op1.Token.Kind != cssom.Delim || op2.Token == nil || op2.Token.Kind != cssom.Delim || op2.Token.DelimValue != '=' {
		return 0, "", fmt.Errorf("selector: unsupported attribute operator")
	}
	switch op1.Token.DelimValue {
	case '~':
		return OpIncludes, str, nil
	case '|':
		return OpDashMatch, str, nil
	case '^':
		return OpPrefix, str, nil
	case '$':
		return OpSuffix, str, nil
	case '*':
		return OpSubstring, str, nil
	default:
		return 0, "", fmt.Errorf("selector: unsupported attribute operator")
	}
}

// stripWhitespace removes Whitespace-token primitives, since every mode
// skips them implicitly.
func stripWhitespace(items []cssom.Primitive) []cssom.Primitive {
	out := make([]cssom.Primitive, 0, len(items))
	for _, it := range items {
		if it.Token != nil && it.Token.Kind == cssom.Whitespace {
			continue
		}
		out = append(out, it)
	}
	return out
}

// displayPrimitive renders a primitive for diagnostics.
func displayPrimitive(p cssom.Primitive) string {
	switch {
	case p.Token != nil:
		return p.Token.Display()
	case p.Func != nil:
		return p.Func.Name + "(...)"
	case p.Block != nil:
		return "{block}"
	default:
		return "?"
	}
}
