package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukehoban/cssmatch/cssom"
)

func compilePrelude(t *testing.T, text string) *Selector {
	t.Helper()
	ts := cssom.Tokenize(text, false)
	prims := cssom.ParseComponentValues(ts)
	sel, err := Compile(prims)
	require.NoError(t, err)
	return sel
}

func TestCompileTypeSelector(t *testing.T) {
	sel := compilePrelude(t, "div")
	assert.Equal(t, "div", sel.Tag)
	assert.Nil(t, sel.Ancestor)
	assert.Nil(t, sel.Parent)
	assert.Nil(t, sel.Prev)
}

func TestCompileUniversalSelector(t *testing.T) {
	sel := compilePrelude(t, "*")
	assert.Equal(t, "", sel.Tag)
}

func TestCompileAttributePresence(t *testing.T) {
	sel := compilePrelude(t, "a[href]")
	assert.Equal(t, "a", sel.Tag)
	require.Len(t, sel.Attrs, 1)
	assert.Equal(t, "href", sel.Attrs[0].Name)
	assert.False(t, sel.Attrs[0].HasValue)
}

func TestCompileAttributeOperators(t *testing.T) {
	tests := []struct {
		name string
		css  string
		op   Op
		val  string
	}{
		{"equals", `a[href="x"]`, OpEquals, "x"},
		{"includes", `a[class~="x"]`, OpIncludes, "x"},
		{"dash match", `a[lang|="en"]`, OpDashMatch, "en"},
		{"prefix", `a[href^="http"]`, OpPrefix, "http"},
		{"suffix", `a[href$=".png"]`, OpSuffix, ".png"},
		{"substring", `a[href*="example"]`, OpSubstring, "example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := compilePrelude(t, tt.css)
			require.Len(t, sel.Attrs, 1)
			assert.Equal(t, tt.op, sel.Attrs[0].Op)
			assert.Equal(t, tt.val, sel.Attrs[0].Value)
			assert.True(t, sel.Attrs[0].HasValue)
		})
	}
}

func TestCompileLoneAttributeSelector(t *testing.T) {
	sel := compilePrelude(t, `[disabled]`)
	assert.Equal(t, "", sel.Tag)
	require.Len(t, sel.Attrs, 1)
	assert.Equal(t, "disabled", sel.Attrs[0].Name)
}

func TestCompileDescendantCombinator(t *testing.T) {
	sel := compilePrelude(t, "div p span")
	assert.Equal(t, "span", sel.Tag)
	require.NotNil(t, sel.Ancestor)
	assert.Equal(t, "p", sel.Ancestor.Tag)
	require.NotNil(t, sel.Ancestor.Ancestor)
	assert.Equal(t, "div", sel.Ancestor.Ancestor.Tag)
}

func TestCompileChildCombinator(t *testing.T) {
	sel := compilePrelude(t, "div > p")
	assert.Equal(t, "p", sel.Tag)
	require.NotNil(t, sel.Parent)
	assert.Equal(t, "div", sel.Parent.Tag)
	assert.Nil(t, sel.Ancestor)
}

func TestCompileAdjacentSiblingCombinator(t *testing.T) {
	sel := compilePrelude(t, "h1 + p")
	assert.Equal(t, "p", sel.Tag)
	require.NotNil(t, sel.Prev)
	assert.Equal(t, "h1", sel.Prev.Tag)
}

func TestCompileCompoundWithAttributeAndCombinator(t *testing.T) {
	sel := compilePrelude(t, `div[id="main"] > a[href^="http"]`)
	assert.Equal(t, "a", sel.Tag)
	require.Len(t, sel.Attrs, 1)
	assert.Equal(t, OpPrefix, sel.Attrs[0].Op)
	require.NotNil(t, sel.Parent)
	assert.Equal(t, "div", sel.Parent.Tag)
	require.Len(t, sel.Parent.Attrs, 1)
	assert.Equal(t, "id", sel.Parent.Attrs[0].Name)
}

func TestCompileEmptySelectorErrors(t *testing.T) {
	_, err := Compile(nil)
	assert.Error(t, err)
}

func TestCompileRejectsTrailingCombinator(t *testing.T) {
	ts := cssom.Tokenize("div >", false)
	prims := cssom.ParseComponentValues(ts)
	_, err := Compile(prims)
	assert.Error(t, err)
}

func TestCompileList(t *testing.T) {
	ts := cssom.Tokenize("div, p, a[href]", false)
	prims := cssom.ParseComponentValues(ts)
	sels, err := CompileList(prims)
	require.NoError(t, err)
	require.Len(t, sels, 3)
	assert.Equal(t, "div", sels[0].Tag)
	assert.Equal(t, "p", sels[1].Tag)
	assert.Equal(t, "a", sels[2].Tag)
}
