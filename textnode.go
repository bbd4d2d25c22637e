package md2html

import (
	"fmt"

	"github.com/pkg/errors"
)

// TextType is the inline styling of a TextNode.
type TextType uint8

const (
	TextPlain TextType = iota
	TextBold
	TextItalic
	TextCode
	TextLink
	TextImage
)

var textTypeNames = [...]string{
	TextPlain:  "plain",
	TextBold:   "bold",
	TextItalic: "italic",
	TextCode:   "code",
	TextLink:   "link",
	TextImage:  "image",
}

func (t TextType) String() string {
	if int(t) < len(textTypeNames) {
		return textTypeNames[t]
	}
	return fmt.Sprintf("TextType(%d)", uint8(t))
}

// TextNode is a run of inline text. URL is only set for links and images.
// TextNode values are comparable with ==.
type TextNode struct {
	Text string
	Type TextType
	URL  string
}

// NewTextNode returns a node of type t without a URL.
func NewTextNode(text string, t TextType) TextNode {
	return TextNode{Text: text, Type: t}
}

// NewLinkNode returns a link with anchor text and destination url.
func NewLinkNode(text, url string) TextNode {
	return TextNode{Text: text, Type: TextLink, URL: url}
}

// NewImageNode returns an image with alt text and source url.
func NewImageNode(alt, url string) TextNode {
	return TextNode{Text: alt, Type: TextImage, URL: url}
}

func (n TextNode) String() string {
	if n.Type == TextLink || n.Type == TextImage {
		return fmt.Sprintf("TextNode(%q, %s, %q)", n.Text, n.Type, n.URL)
	}
	return fmt.Sprintf("TextNode(%q, %s)", n.Text, n.Type)
}

// TextNodeToHTML maps an inline node to the leaf that renders it.
func TextNodeToHTML(n TextNode) (*Leaf, error) {
	switch n.Type {
	case TextPlain:
		return NewText(n.Text), nil
	case TextBold:
		return NewLeaf("b", n.Text), nil
	case TextItalic:
		return NewLeaf("i", n.Text), nil
	case TextCode:
		return NewLeaf("code", n.Text), nil
	case TextLink:
		return NewLeaf("a", n.Text, Attr{"href", n.URL}), nil
	case TextImage:
		return NewLeaf("img", "", Attr{"src", n.URL}, Attr{"alt", n.Text}), nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%s", n.Type)
}
