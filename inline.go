package md2html

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Delimiters recognised by Tokenize, in the order they are applied.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "_"
	CodeDelimiter   = "`"
)

var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Reference is the text and destination of a Markdown link or image.
type Reference struct {
	Text string
	URL  string
}

// SplitDelimiter splits every plain node of nodes at pairs of delim. Text
// between a pair becomes a node of type t. Nodes that are not plain are
// passed through untouched.
func SplitDelimiter(nodes []TextNode, delim string, t TextType) ([]TextNode, error) {
	out := make([]TextNode, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != TextPlain {
			out = append(out, n)
			continue
		}
		parts := strings.Split(n.Text, delim)
		if len(parts) == 1 {
			out = append(out, n)
			continue
		}
		if len(parts)%2 == 0 {
			return nil, errors.Wrapf(ErrMalformedDelimiter, "unmatched %q in %q", delim, n.Text)
		}
		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, NewTextNode(part, TextPlain))
			} else {
				out = append(out, NewTextNode(part, t))
			}
		}
	}
	return out, nil
}

// location of one match: full span, text span, url span.
type refLoc [6]int

func findImages(text string) []refLoc {
	var locs []refLoc
	for _, m := range imagePattern.FindAllStringSubmatchIndex(text, -1) {
		locs = append(locs, refLoc{m[0], m[1], m[2], m[3], m[4], m[5]})
	}
	return locs
}

// findLinks skips bracket pairs preceded by '!', which are images.
func findLinks(text string) []refLoc {
	var locs []refLoc
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		locs = append(locs, refLoc{m[0], m[1], m[2], m[3], m[4], m[5]})
	}
	return locs
}

func references(text string, locs []refLoc) []Reference {
	refs := make([]Reference, 0, len(locs))
	for _, l := range locs {
		refs = append(refs, Reference{Text: text[l[2]:l[3]], URL: text[l[4]:l[5]]})
	}
	return refs
}

// ExtractImages returns every ![alt](url) in text, left to right.
func ExtractImages(text string) []Reference {
	return references(text, findImages(text))
}

// ExtractLinks returns every [text](url) in text that is not an image.
func ExtractLinks(text string) []Reference {
	return references(text, findLinks(text))
}

func splitReferences(nodes []TextNode, find func(string) []refLoc, mk func(text, url string) TextNode) []TextNode {
	out := make([]TextNode, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != TextPlain {
			out = append(out, n)
			continue
		}
		locs := find(n.Text)
		if len(locs) == 0 {
			out = append(out, n)
			continue
		}
		pos := 0
		for _, l := range locs {
			if l[0] > pos {
				out = append(out, NewTextNode(n.Text[pos:l[0]], TextPlain))
			}
			out = append(out, mk(n.Text[l[2]:l[3]], n.Text[l[4]:l[5]]))
			pos = l[1]
		}
		if pos < len(n.Text) {
			out = append(out, NewTextNode(n.Text[pos:], TextPlain))
		}
	}
	return out
}

// SplitImages replaces image syntax in plain nodes with image nodes.
func SplitImages(nodes []TextNode) []TextNode {
	return splitReferences(nodes, findImages, NewImageNode)
}

// SplitLinks replaces link syntax in plain nodes with link nodes.
func SplitLinks(nodes []TextNode) []TextNode {
	return splitReferences(nodes, findLinks, NewLinkNode)
}

// Tokenize turns a run of Markdown text into inline nodes. Bold, italic and
// code spans are split first, in that order, then images, then links.
func Tokenize(text string) ([]TextNode, error) {
	if text == "" {
		return []TextNode{}, nil
	}
	nodes := []TextNode{NewTextNode(text, TextPlain)}
	var err error
	for _, d := range []struct {
		delim string
		t     TextType
	}{
		{BoldDelimiter, TextBold},
		{ItalicDelimiter, TextItalic},
		{CodeDelimiter, TextCode},
	} {
		nodes, err = SplitDelimiter(nodes, d.delim, d.t)
		if err != nil {
			return nil, err
		}
	}
	nodes = SplitImages(nodes)
	nodes = SplitLinks(nodes)
	return nodes, nil
}
