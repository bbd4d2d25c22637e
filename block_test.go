package md2html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBlocks(t *testing.T) {
	doc := `
This is **bolded** paragraph

This is another paragraph with _italic_ text and ` + "`code`" + ` here
This is the same paragraph on a new line



- This is a list
- with items
`
	assert.Equal(t, []string{
		"This is **bolded** paragraph",
		"This is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line",
		"- This is a list\n- with items",
	}, SplitBlocks(doc))

	assert.Empty(t, SplitBlocks(""))
	assert.Empty(t, SplitBlocks("\n\n  \n"))
	assert.Equal(t, []string{"a", "b"}, SplitBlocks("a\r\n\r\nb"))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		block string
		typ   BlockType
		level int
	}{
		{"# Heading 1", BlockHeading, 1},
		{"## Heading 2", BlockHeading, 2},
		{"###### Heading 6", BlockHeading, 6},
		{"####### Too deep", BlockParagraph, 0},
		{"#NoSpace", BlockParagraph, 0},
		{"# ", BlockParagraph, 0},
		{"#  two spaces", BlockParagraph, 0},
		{"# Title\nsecond line", BlockHeading, 1},
		{"```\ncode here\n```", BlockCode, 0},
		{"```go\nfmt.Println()\n```", BlockCode, 0},
		{"``` \ntrailing blanks\n```\t", BlockCode, 0},
		{"```go  \nx\n```", BlockCode, 0},
		{">This is a quote", BlockQuote, 0},
		{">Line one\n>Line two\n>Line three", BlockQuote, 0},
		{"- First\n- Second\n- Third", BlockUnorderedList, 0},
		{"-No space", BlockParagraph, 0},
		{"1. First\n2. Second\n3. Third", BlockOrderedList, 0},
		{"1. First\n3. Second", BlockParagraph, 0},
		{"2. Starts late", BlockParagraph, 0},
		{"1. First\n- Mixed", BlockParagraph, 0},
		{"Just a paragraph\nover two lines", BlockParagraph, 0},
	}
	for _, c := range cases {
		t.Run(c.block, func(t *testing.T) {
			b, err := Classify(c.block)
			require.NoError(t, err)
			assert.Equal(t, c.typ, b.Type, "type is %s", b.Type)
			assert.Equal(t, c.level, b.Level)
			assert.Equal(t, c.block, b.Text)
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	_, err := Classify("```\nnever closed")
	assert.ErrorIs(t, err, ErrUnterminatedCodeBlock)

	_, err = Classify("``` \nnever closed either")
	assert.ErrorIs(t, err, ErrUnterminatedCodeBlock)

	_, err = Classify("```code without closing")
	assert.ErrorIs(t, err, ErrUnterminatedCodeBlock)

	_, err = Classify(">Valid line\nInvalid line")
	assert.ErrorIs(t, err, ErrMalformedQuoteBlock)

	_, err = Classify("Plain start\n>then quoted")
	assert.ErrorIs(t, err, ErrMalformedQuoteBlock)
}

func TestBlockTypeString(t *testing.T) {
	assert.Equal(t, "ordered_list", BlockOrderedList.String())
	assert.Equal(t, "BlockType(9)", BlockType(9).String())
}
