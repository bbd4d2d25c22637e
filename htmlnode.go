package md2html

import (
	"strings"

	"github.com/pkg/errors"
)

// Attr is a single HTML attribute.
type Attr struct {
	Key string
	Val string
}

// Props is an ordered attribute list. Rendering follows slice order.
type Props []Attr

// Get returns the value stored for key.
func (p Props) Get(key string) (string, bool) {
	for _, a := range p {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// String serialises the attributes, each preceded by a single space.
func (p Props) String() string {
	var b strings.Builder
	for _, a := range p {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Val)
		b.WriteByte('"')
	}
	return b.String()
}

// Node is an element of the HTML tree: either a *Leaf or a *Container.
type Node interface {
	Render() (string, error)
	isNode()
}

// Leaf renders its value directly. A leaf without a tag renders the bare value.
type Leaf struct {
	tag      string
	value    string
	props    Props
	hasValue bool
}

// NewLeaf returns a leaf for tag with the given value. An empty tag yields an
// untagged text leaf.
func NewLeaf(tag, value string, props ...Attr) *Leaf {
	return &Leaf{tag: tag, value: value, props: props, hasValue: true}
}

// NewText returns an untagged leaf.
func NewText(value string) *Leaf { return NewLeaf("", value) }

func (*Leaf) isNode() {}

func (l *Leaf) Tag() string   { return l.tag }
func (l *Leaf) Value() string { return l.value }
func (l *Leaf) Props() Props  { return l.props }

func (l *Leaf) Render() (string, error) {
	if !l.hasValue {
		return "", errors.Wrapf(ErrMissingValue, "<%s>", l.tag)
	}
	if l.tag == "" {
		return l.value, nil
	}
	return "<" + l.tag + l.props.String() + ">" + l.value + "</" + l.tag + ">", nil
}

// Container renders its children in order inside its tag.
type Container struct {
	tag      string
	children []Node
	props    Props
}

// NewContainer returns a container owning children.
func NewContainer(tag string, children []Node, props ...Attr) *Container {
	return &Container{tag: tag, children: children, props: props}
}

func (*Container) isNode() {}

func (c *Container) Tag() string      { return c.tag }
func (c *Container) Children() []Node { return c.children }
func (c *Container) Props() Props     { return c.props }

func (c *Container) Render() (string, error) {
	if c.tag == "" {
		return "", ErrMissingTag
	}
	if c.children == nil {
		return "", errors.Wrapf(ErrMissingChildren, "<%s>", c.tag)
	}
	var b strings.Builder
	b.WriteString("<" + c.tag + c.props.String() + ">")
	for i, child := range c.children {
		if child == nil {
			return "", errors.Wrapf(ErrMissingChildren, "<%s> child %d is nil", c.tag, i)
		}
		s, err := child.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteString("</" + c.tag + ">")
	return b.String(), nil
}
