package md2html

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type converter func(Block) (*Container, error)

// converters is keyed by every BlockType; Classify never yields another.
var converters = map[BlockType]converter{
	BlockParagraph:     paragraphToHTML,
	BlockHeading:       headingToHTML,
	BlockCode:          codeToHTML,
	BlockQuote:         quoteToHTML,
	BlockUnorderedList: unorderedListToHTML,
	BlockOrderedList:   orderedListToHTML,
}

// MarkdownToHTML converts a whole document into a div holding one container
// per block, in source order. The first error aborts the conversion.
func MarkdownToHTML(doc string) (*Container, error) {
	blocks := SplitBlocks(doc)
	children := make([]Node, 0, len(blocks))
	for _, raw := range blocks {
		c, err := BlockToHTML(raw)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return NewContainer("div", children), nil
}

// BlockToHTML classifies a single block and converts it.
func BlockToHTML(raw string) (*Container, error) {
	b, err := Classify(raw)
	if err != nil {
		return nil, err
	}
	conv, ok := converters[b.Type]
	if !ok {
		return nil, errors.Errorf("md2html: no converter for %s block", b.Type)
	}
	return conv(b)
}

func inlineChildren(text string) ([]Node, error) {
	nodes, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	children := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		leaf, err := TextNodeToHTML(n)
		if err != nil {
			return nil, err
		}
		children = append(children, leaf)
	}
	return children, nil
}

func inlineContainer(tag, text string) (*Container, error) {
	children, err := inlineChildren(text)
	if err != nil {
		return nil, errors.WithMessagef(err, "in <%s>", tag)
	}
	return NewContainer(tag, children), nil
}

func paragraphToHTML(b Block) (*Container, error) {
	text := strings.Join(strings.Split(b.Text, "\n"), " ")
	return inlineContainer("p", text)
}

// headingToHTML uses the level found by Classify. Continuation lines are
// joined with a space, as in paragraphs.
func headingToHTML(b Block) (*Container, error) {
	prefix := strings.Repeat("#", b.Level) + " "
	if b.Level < 1 || b.Level > 6 || !strings.HasPrefix(b.Text, prefix) {
		return nil, errors.Errorf("md2html: invalid level %d heading %q", b.Level, firstLine(b.Text))
	}
	text := strings.Join(strings.Split(b.Text[len(prefix):], "\n"), " ")
	return inlineContainer("h"+strconv.Itoa(b.Level), text)
}

func codeToHTML(b Block) (*Container, error) {
	lines := strings.Split(b.Text, "\n")
	lang, ok := isFenceOpen(lines[0])
	end := closingFence(lines)
	if !ok || end < 0 {
		return nil, errors.Wrapf(ErrUnterminatedCodeBlock, "%q", lines[0])
	}
	if end != len(lines)-1 {
		return nil, errors.Wrapf(ErrUnterminatedCodeBlock, "text after closing fence: %q", lines[end+1])
	}
	var content strings.Builder
	for _, l := range lines[1:end] {
		content.WriteString(l)
		content.WriteByte('\n')
	}
	var props []Attr
	if lang != "" {
		props = append(props, Attr{"class", "language-" + lang})
	}
	code := NewLeaf("code", content.String(), props...)
	return NewContainer("pre", []Node{code}), nil
}

func quoteToHTML(b Block) (*Container, error) {
	var parts []string
	for i, l := range strings.Split(b.Text, "\n") {
		if !strings.HasPrefix(l, quotePrefix) {
			return nil, errors.Wrapf(ErrMalformedQuoteBlock, "line %d: %q", i+1, l)
		}
		if l = strings.TrimSpace(strings.TrimPrefix(l, quotePrefix)); l != "" {
			parts = append(parts, l)
		}
	}
	return inlineContainer("blockquote", strings.Join(parts, " "))
}

func listToHTML(tag string, items []string) (*Container, error) {
	children := make([]Node, 0, len(items))
	for _, item := range items {
		li, err := inlineContainer("li", item)
		if err != nil {
			return nil, err
		}
		children = append(children, li)
	}
	return NewContainer(tag, children), nil
}

func unorderedListToHTML(b Block) (*Container, error) {
	lines := strings.Split(b.Text, "\n")
	items := make([]string, 0, len(lines))
	for _, l := range lines {
		if !strings.HasPrefix(l, bulletPrefix) {
			return nil, errors.Errorf("md2html: list item %q lacks %q", l, bulletPrefix)
		}
		items = append(items, l[len(bulletPrefix):])
	}
	return listToHTML("ul", items)
}

func orderedListToHTML(b Block) (*Container, error) {
	lines := strings.Split(b.Text, "\n")
	items := make([]string, 0, len(lines))
	for i, l := range lines {
		item, ok := orderedItem(l, i+1)
		if !ok {
			return nil, errors.Errorf("md2html: list item %q is not numbered %d", l, i+1)
		}
		items = append(items, item)
	}
	return listToHTML("ol", items)
}
