package domtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeNodeAttr(t *testing.T) {
	n := NewElement("div")
	_, ok := n.Attr("class")
	assert.False(t, ok)

	n.SetAttribute("class", "container")
	v, ok := n.Attr("class")
	require.True(t, ok)
	assert.Equal(t, "container", v)
}

func TestTreeNodeAttrOnTextNode(t *testing.T) {
	text := NewText("hello")
	_, ok := text.Attr("class")
	assert.False(t, ok)
}

func TestTreeNodeParentChild(t *testing.T) {
	doc := NewDocument()
	div := NewElement("div")
	span := NewElement("span")

	doc.AppendChild(div)
	div.AppendChild(span)

	assert.Nil(t, doc.Parent())
	require.NotNil(t, div.Parent())
	assert.Equal(t, "#document", div.Parent().Name())
	require.NotNil(t, span.Parent())
	assert.Equal(t, "div", span.Parent().Name())
}

func TestTreeNodeChildren(t *testing.T) {
	div := NewElement("div")
	p := NewElement("p")
	span := NewElement("span")
	div.AppendChild(p)
	div.AppendChild(span)

	kids := div.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "p", kids[0].Name())
	assert.Equal(t, "span", kids[1].Name())
}

func TestTreeNodeNoChildren(t *testing.T) {
	leaf := NewElement("br")
	assert.Empty(t, leaf.Children())
}
