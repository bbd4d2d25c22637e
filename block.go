package md2html

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BlockType classifies a block of Markdown.
type BlockType uint8

const (
	BlockParagraph BlockType = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

func (t BlockType) String() string {
	switch t {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockCode:
		return "code"
	case BlockQuote:
		return "quote"
	case BlockUnorderedList:
		return "unordered_list"
	case BlockOrderedList:
		return "ordered_list"
	}
	return "BlockType(" + strconv.Itoa(int(t)) + ")"
}

// Block is a classified run of non-blank lines. Level is set for headings.
type Block struct {
	Type  BlockType
	Level int
	Text  string
}

const (
	fence        = "```"
	quotePrefix  = ">"
	bulletPrefix = "- "
)

var (
	blankLines     = regexp.MustCompile(`\n[ \t]*(?:\n[ \t]*)*\n`)
	headingPattern = regexp.MustCompile(`^(#{1,6}) (\S.*)$`)
	fenceInfo      = regexp.MustCompile("^```([^`\\s]+)$")
)

func normalizeNewlines(s string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
}

// SplitBlocks splits doc at blank lines. Blocks are trimmed of surrounding
// whitespace; empty blocks are dropped.
func SplitBlocks(doc string) []string {
	var blocks []string
	for _, b := range blankLines.Split(normalizeNewlines(doc), -1) {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func firstLine(block string) string {
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		return block[:i]
	}
	return block
}

// fenceLine drops trailing blanks, which never change the meaning of a fence.
func fenceLine(line string) string {
	return strings.TrimRight(line, " \t")
}

// isFenceOpen reports whether line opens a code block and returns its info
// string, if any.
func isFenceOpen(line string) (lang string, ok bool) {
	line = fenceLine(line)
	if line == fence {
		return "", true
	}
	if m := fenceInfo.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

// closingFence returns the index of the first line after the opening fence
// that is ``` save for trailing blanks, or -1.
func closingFence(lines []string) int {
	for i := 1; i < len(lines); i++ {
		if fenceLine(lines[i]) == fence {
			return i
		}
	}
	return -1
}

func headingLevel(block string) int {
	m := headingPattern.FindStringSubmatch(firstLine(block))
	if m == nil {
		return 0
	}
	return len(m[1])
}

// orderedItem strips the "{n}. " marker from line.
func orderedItem(line string, n int) (string, bool) {
	prefix := strconv.Itoa(n) + ". "
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	return line[len(prefix):], true
}

func allLines(lines []string, pred func(i int, line string) bool) bool {
	for i, l := range lines {
		if !pred(i, l) {
			return false
		}
	}
	return true
}

// Classify determines the type of block. The first matching rule wins:
// heading, code, quote, unordered list, ordered list, paragraph.
//
// A block opening with a fence but never closing it, and a block in which
// only some lines are quoted, are errors. A badly numbered ordered list is
// not: it is classified as a paragraph.
func Classify(block string) (Block, error) {
	b := Block{Type: BlockParagraph, Text: block}
	if lvl := headingLevel(block); lvl > 0 {
		b.Type, b.Level = BlockHeading, lvl
		return b, nil
	}

	lines := strings.Split(block, "\n")
	if strings.HasPrefix(lines[0], fence) {
		if closingFence(lines) < 0 {
			return b, errors.Wrapf(ErrUnterminatedCodeBlock, "%q", lines[0])
		}
		if _, ok := isFenceOpen(lines[0]); ok {
			b.Type = BlockCode
			return b, nil
		}
	}

	quoted := 0
	for _, l := range lines {
		if strings.HasPrefix(l, quotePrefix) {
			quoted++
		}
	}
	switch {
	case quoted == len(lines):
		b.Type = BlockQuote
		return b, nil
	case quoted > 0:
		return b, errors.Wrapf(ErrMalformedQuoteBlock, "%d of %d lines quoted", quoted, len(lines))
	}

	if allLines(lines, func(_ int, l string) bool { return strings.HasPrefix(l, bulletPrefix) }) {
		b.Type = BlockUnorderedList
		return b, nil
	}
	if allLines(lines, func(i int, l string) bool { _, ok := orderedItem(l, i+1); return ok }) {
		b.Type = BlockOrderedList
		return b, nil
	}
	return b, nil
}
