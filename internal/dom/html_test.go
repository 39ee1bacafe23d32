package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/kspgrab/internal/testutil"
	"golang.org/x/net/html/atom"
)

func TestElementByID(t *testing.T) {
	doc := testutil.ParseHTML(t, `<div><p id="x">one</p><p id="y">two <b>bold</b></p></div>`)

	y := ElementByID(doc, "y")
	require.NotNil(t, y)
	assert.True(t, IsElement(y, atom.P))
	assert.Equal(t, "two bold", TextContent(y))

	assert.Nil(t, ElementByID(doc, "missing"))
}

func TestHasClass(t *testing.T) {
	doc := testutil.ParseHTML(t, `<div id="d" class=" story  wide"></div><span id="s"></span>`)

	d := ElementByID(doc, "d")
	assert.True(t, HasClass(d, "story"))
	assert.True(t, HasClass(d, "wide"))
	assert.False(t, HasClass(d, "stor"))
	assert.False(t, HasClass(ElementByID(doc, "s"), "story"))
	assert.False(t, HasClass(nil, "story"))
}

func TestSetAttr(t *testing.T) {
	doc := testutil.ParseHTML(t, `<a id="a" href="x">l</a>`)
	a := ElementByID(doc, "a")

	SetAttr(a, "href", "y")
	SetAttr(a, "title", "t")

	out, err := OuterHTML(a)
	require.NoError(t, err)
	assert.Equal(t, `<a id="a" href="y" title="t">l</a>`, out)
}

func TestElementNavigation(t *testing.T) {
	doc := testutil.ParseHTML(t, `<div id="d"> text <i>1</i> more <u>2</u></div>`)
	d := ElementByID(doc, "d")

	first := FirstElementChild(d)
	require.True(t, IsElement(first, atom.I))
	next := NextElementSibling(first)
	require.True(t, IsElement(next, atom.U))
	assert.Nil(t, NextElementSibling(next))
}

func TestDetach(t *testing.T) {
	doc := testutil.ParseHTML(t, `<div id="d"><img id="i"><p>rest</p></div>`)
	Detach(ElementByID(doc, "i"))

	out, err := OuterHTML(ElementByID(doc, "d"))
	require.NoError(t, err)
	assert.Equal(t, `<div id="d"><p>rest</p></div>`, out)
}

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeSpace("  a \n\t b   c "))
	assert.Equal(t, "", NormalizeSpace(" \n "))
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "a &lt; b &amp;&amp; c &gt; d", EscapeText("a < b && c > d"))
	assert.Equal(t, `"quoted" 'text'`, EscapeText(`"quoted" 'text'`))
	assert.Equal(t, "x&nbsp;y", EscapeText("x\u00a0y"))
}
