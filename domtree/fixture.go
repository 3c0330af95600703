package domtree

import (
	"fmt"
	"strings"
)

// ParseFixture parses a simple indentation-based tree fixture format into
// a TreeNode document, the tree source cmd/cssquery's find and select
// subcommands read instead of parsing HTML. Each non-blank line names one
// element: an identifier, optionally followed by a bracketed,
// space-separated list of name=value attribute pairs, e.g.:
//
//	html
//	  body[class=main]
//	    div[id=content]
//	      p[data-x=1]
//
// Indentation is two spaces per nesting level; a line becomes a child of
// the nearest preceding line at one level shallower. The first line is
// the document root.
func ParseFixture(text string) (*TreeNode, error) {
	var stack []*TreeNode
	var depths []int
	var root *TreeNode

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent%2 != 0 {
			return nil, fmt.Errorf("fixture line %d: indentation must be a multiple of 2 spaces", lineNo)
		}
		depth := indent / 2

		node, err := parseFixtureLine(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("fixture line %d: %w", lineNo, err)
		}

		for len(depths) > 0 && depths[len(depths)-1] >= depth {
			stack = stack[:len(stack)-1]
			depths = depths[:len(depths)-1]
		}

		switch {
		case len(stack) == 0 && root != nil:
			return nil, fmt.Errorf("fixture line %d: a fixture has exactly one root", lineNo)
		case len(stack) == 0:
			root = node
		default:
			stack[len(stack)-1].AppendChild(node)
		}

		stack = append(stack, node)
		depths = append(depths, depth)
	}

	if root == nil {
		return nil, fmt.Errorf("fixture: no elements")
	}
	return root, nil
}

// parseFixtureLine parses one trimmed, non-blank fixture line into a
// detached element node.
func parseFixtureLine(s string) (*TreeNode, error) {
	name := s
	var attrText string
	if i := strings.IndexByte(s, '['); i >= 0 {
		if !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("unterminated '[' in %q", s)
		}
		name = s[:i]
		attrText = s[i+1 : len(s)-1]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("missing tag name in %q", s)
	}

	node := NewElement(name)
	for _, pair := range strings.Fields(attrText) {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed attribute %q (want name=value)", pair)
		}
		node.SetAttribute(k, v)
	}
	return node, nil
}
