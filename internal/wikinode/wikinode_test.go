package wikinode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textNode(s string) *Node { return &Node{Kind: KindText, Text: s} }

func TestResolveTrimsTrailingEmptyArgs(t *testing.T) {
	tpl := &Node{Kind: KindTemplate, Name: "alter", Args: []*Node{
		textNode("en"), textNode("colour"), textNode(""), textNode(""),
	}}
	inv := Resolve(tpl, TextRenderer{})
	assert.Equal(t, []string{"en", "colour"}, inv.Pos)
}

func TestInvocationArgNumericNamedShadowsPositional(t *testing.T) {
	tpl := &Node{Kind: KindTemplate, Name: "t", Args: []*Node{
		textNode("de"), textNode("Wort"),
	}, NamedArgs: map[string]*Node{
		"2":  textNode("Wörterbuch"),
		"tr": textNode("vort"),
	}}
	inv := Resolve(tpl, TextRenderer{})

	assert.Equal(t, "de", inv.Arg(1))
	assert.Equal(t, "Wörterbuch", inv.Arg(2))
	assert.Equal(t, "", inv.Arg(5))
	assert.Equal(t, "vort", inv.NamedArg("tr"))
}

func TestInvocationDict(t *testing.T) {
	tpl := &Node{Kind: KindTemplate, Name: "fi-decl-valo", Args: []*Node{
		textNode("val"), textNode("o"),
	}}
	d := Resolve(tpl, TextRenderer{}).Dict()
	assert.Equal(t, "fi-decl-valo", d["template_name"])
	assert.Equal(t, "val", d["1"])
	assert.Equal(t, "o", d["2"])
}

func TestTextRendererLinksAndTemplates(t *testing.T) {
	nodes := []*Node{
		textNode("a "),
		{Kind: KindLink, Target: "dog"},
		textNode(" or "),
		{Kind: KindTemplate, Name: "l", Args: []*Node{textNode("en"), textNode("cat")}},
		{Kind: KindLink, Target: "Category:Animals"},
	}
	got := TextRenderer{}.Render(nodes, nil)
	assert.Equal(t, "a dog or cat", got)
}

func TestTextRendererHook(t *testing.T) {
	nodes := []*Node{
		textNode("before "),
		{Kind: KindTemplate, Name: "lb", Args: []*Node{textNode("en"), textNode("informal")}},
		textNode(" after"),
	}
	var seen Invocation
	got := TextRenderer{}.Render(nodes, func(name string, inv Invocation) (string, bool) {
		if name == "lb" {
			seen = inv
			return "", true
		}
		return "", false
	})
	assert.Equal(t, "before after", got)
	require.Equal(t, "lb", seen.Name)
	assert.Equal(t, "informal", seen.Arg(2))
}

func TestTemplatesDoesNotDescendIntoArgs(t *testing.T) {
	inner := &Node{Kind: KindTemplate, Name: "inner"}
	outer := &Node{Kind: KindTemplate, Name: "outer", Args: []*Node{inner}}
	root := &Node{Kind: KindRoot, Children: []*Node{outer}}

	tpls := root.Templates()
	require.Len(t, tpls, 1)
	assert.Equal(t, "outer", tpls[0].Name)
}

func TestChildSectionsAndLists(t *testing.T) {
	root := &Node{Kind: KindRoot, Children: []*Node{
		{Kind: KindSection, Level: 2, Heading: "English"},
		{Kind: KindList},
		textNode("x"),
	}}
	assert.Len(t, root.ChildSections(), 1)
	assert.Len(t, root.Lists(), 1)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b", CleanText("  a \n\t b  "))
	assert.Equal(t, "", CleanText("   "))
}
