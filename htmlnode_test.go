package md2html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropsString(t *testing.T) {
	p := Props{{"href", "https://www.boot.dev"}, {"target", "_blank"}}
	assert.Equal(t, ` href="https://www.boot.dev" target="_blank"`, p.String())
	assert.Equal(t, "", Props(nil).String())

	v, ok := p.Get("target")
	assert.True(t, ok)
	assert.Equal(t, "_blank", v)
	_, ok = p.Get("rel")
	assert.False(t, ok)
}

func TestLeafRender(t *testing.T) {
	cases := []struct {
		name string
		leaf *Leaf
		want string
	}{
		{"untagged", NewText("Just plain text"), "Just plain text"},
		{"tagged", NewLeaf("p", "This is a paragraph"), "<p>This is a paragraph</p>"},
		{"props", NewLeaf("a", "Click me", Attr{"href", "https://www.boot.dev"}), `<a href="https://www.boot.dev">Click me</a>`},
		{"bold", NewLeaf("b", "Bold text"), "<b>Bold text</b>"},
		{"empty value", NewLeaf("img", "", Attr{"src", "x.png"}, Attr{"alt", ""}), `<img src="x.png" alt=""></img>`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.leaf.Render()
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestLeafMissingValue(t *testing.T) {
	_, err := (&Leaf{tag: "p"}).Render()
	assert.ErrorIs(t, err, ErrMissingValue)
}

func TestContainerRender(t *testing.T) {
	cases := []struct {
		name string
		node *Container
		want string
	}{
		{
			name: "child",
			node: NewContainer("div", []Node{NewLeaf("span", "child")}),
			want: "<div><span>child</span></div>",
		},
		{
			name: "grandchild",
			node: NewContainer("div", []Node{NewContainer("span", []Node{NewLeaf("b", "grandchild")})}),
			want: "<div><span><b>grandchild</b></span></div>",
		},
		{
			name: "glued inline children",
			node: NewContainer("p", []Node{NewLeaf("b", "Bold text"), NewText(" and "), NewLeaf("i", "italic text")}),
			want: "<p><b>Bold text</b> and <i>italic text</i></p>",
		},
		{
			name: "nested parents",
			node: NewContainer("div", []Node{
				NewContainer("p", []Node{NewText("First paragraph")}),
				NewContainer("p", []Node{NewText("Second paragraph")}),
			}),
			want: "<div><p>First paragraph</p><p>Second paragraph</p></div>",
		},
		{
			name: "deep",
			node: NewContainer("div", []Node{NewContainer("ul", []Node{
				NewContainer("li", []Node{NewLeaf("b", "Item 1")}),
				NewContainer("li", []Node{NewLeaf("b", "Item 2")}),
			})}),
			want: "<div><ul><li><b>Item 1</b></li><li><b>Item 2</b></li></ul></div>",
		},
		{
			name: "props",
			node: NewContainer("div", []Node{NewText("x")}, Attr{"class", "page"}, Attr{"id", "main"}),
			want: `<div class="page" id="main">x</div>`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.node.Render()
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestContainerErrors(t *testing.T) {
	_, err := NewContainer("", []Node{NewText("text")}).Render()
	assert.ErrorIs(t, err, ErrMissingTag)

	_, err = NewContainer("div", nil).Render()
	assert.ErrorIs(t, err, ErrMissingChildren)

	_, err = NewContainer("div", []Node{nil}).Render()
	assert.ErrorIs(t, err, ErrMissingChildren)

	_, err = NewContainer("div", []Node{&Leaf{tag: "b"}}).Render()
	assert.ErrorIs(t, err, ErrMissingValue, "child errors propagate")
}

func TestRenderIdempotent(t *testing.T) {
	root := NewContainer("div", []Node{
		NewContainer("p", []Node{NewText("a "), NewLeaf("code", "b")}),
	})
	first, err := root.Render()
	require.NoError(t, err)
	second, err := root.Render()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
