// Package preview rasterises md2html document trees, giving a quick look at
// a page without a browser.
//
// It is not an HTML renderer. It knows the tags md2html produces: headings,
// paragraphs, quotes, lists and code blocks, with bold, italic, code, link
// and image leaves inside them.
package preview

import (
	"image"
	"strconv"

	"github.com/arran4/md2html"
	"github.com/golang/freetype"
	"github.com/pkg/errors"
)

const (
	defaultWidth    = 1024
	defaultMargin   = 48
	defaultFontSize = 16

	listIndent      = 32
	listMarkerWidth = 28
	listMarkerGap   = 8
)

var headingScale = [...]float64{1.9, 1.6, 1.4, 1.25, 1.15, 1.15}

// Options configure Render. Zero values select a 1024px wide image with a
// 48px margin, a 16pt base size, the light theme and the bundled Go fonts.
type Options struct {
	Width        int
	Margin       int
	BaseFontSize float64
	Theme        Theme
	Fonts        Fonts
}

func (o Options) withDefaults() (Options, error) {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Margin <= 0 {
		o.Margin = defaultMargin
	}
	if o.BaseFontSize <= 0 {
		o.BaseFontSize = defaultFontSize
	}
	o.Theme = o.Theme.orDefaults()
	if o.Fonts.complete() {
		return o, nil
	}
	bundled, err := LoadFonts(FontConfig{SizeBase: o.BaseFontSize})
	if err != nil {
		return o, err
	}
	for _, s := range []struct{ dst, src **FontAndFace }{
		{&o.Fonts.Regular, &bundled.Regular},
		{&o.Fonts.Bold, &bundled.Bold},
		{&o.Fonts.Italic, &bundled.Italic},
		{&o.Fonts.Mono, &bundled.Mono},
	} {
		if *s.dst == nil {
			*s.dst = *s.src
		}
	}
	return o, nil
}

// Render draws the document rooted at root.
func Render(root *md2html.Container, opts Options) (*image.RGBA, error) {
	if root == nil {
		return nil, errors.New("preview: nil document")
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	r := &renderer{
		c:    newCanvas(opts.Width, opts.Margin, opts.Theme, opts.Fonts, opts.BaseFontSize),
		base: opts.BaseFontSize,
	}
	for _, n := range root.Children() {
		r.block(n)
	}
	return r.c.crop(opts.Margin*2 + 50), nil
}

type renderer struct {
	c    *canvas
	base float64
}

func (r *renderer) left() int  { return r.c.margin }
func (r *renderer) right() int { return r.c.w - r.c.margin }

func (r *renderer) block(n md2html.Node) {
	b, ok := n.(*md2html.Container)
	if !ok {
		// Bare leaves only appear if a tree was built by hand.
		r.paragraph([]md2html.Node{n})
		return
	}
	if level := headingLevel(b.Tag()); level > 0 {
		r.heading(b.Children(), level)
		return
	}
	switch b.Tag() {
	case "pre":
		r.code(b)
	case "blockquote":
		r.quote(b.Children())
	case "ul", "ol":
		r.list(b)
	default:
		r.paragraph(b.Children())
	}
}

func headingLevel(tag string) int {
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
		return 0
	}
	return int(tag[1] - '0')
}

func (r *renderer) heading(children []md2html.Node, level int) {
	size := r.base * headingScale[level-1]
	r.c.addVSpace(int(r.base * 0.75))
	r.c.drawTokens(r.inline(children, r.c.fonts.Bold, size), r.left(), r.right())
	r.c.addVSpace(int(r.base * 0.5))
}

func (r *renderer) paragraph(children []md2html.Node) {
	tokens := r.inline(children, r.c.fonts.Regular, r.base)
	if len(tokens) == 0 {
		return
	}
	r.c.drawTokens(tokens, r.left(), r.right())
	r.c.addVSpace(int(r.base * 0.9))
}

func (r *renderer) quote(children []md2html.Node) {
	tokens := r.inline(children, r.c.fonts.Italic, r.base)
	if len(tokens) == 0 {
		return
	}
	top := r.c.cursorY
	r.c.addVSpace(2)
	r.c.drawTokens(tokens, r.left()+14, r.right())
	r.c.addVSpace(6)
	r.c.drawQuoteBar(r.left(), top+2, r.c.cursorY-top-2)
	r.c.addVSpace(int(r.base * 0.6))
}

func (r *renderer) code(pre *md2html.Container) {
	var text string
	for _, n := range pre.Children() {
		if l, ok := n.(*md2html.Leaf); ok {
			text += l.Value()
		}
	}
	if len(text) > 0 && text[len(text)-1] == '\n' {
		text = text[:len(text)-1]
	}
	r.c.addVSpace(4)
	r.c.drawCodeBlock(text, r.left(), r.right(), r.base*0.95)
	r.c.addVSpace(int(r.base * 0.4))
}

func (r *renderer) list(l *md2html.Container) {
	markerLeft := r.left() + listIndent
	markerRight := markerLeft + listMarkerWidth
	contentLeft := markerRight + listMarkerGap
	items := l.Children()
	for i, item := range items {
		marker := "•"
		if l.Tag() == "ol" {
			marker = strconv.Itoa(i+1) + "."
		}
		var children []md2html.Node
		if li, ok := item.(*md2html.Container); ok {
			children = li.Children()
		} else {
			children = []md2html.Node{item}
		}
		start := r.c.cursorY
		baselines := r.c.drawTokens(r.inline(children, r.c.fonts.Regular, r.base), contentLeft, r.right())
		baseline := start + int(r.base)
		if len(baselines) > 0 {
			baseline = baselines[0]
		} else {
			r.c.reserve(lineHeight(r.base))
			r.c.addVSpace(lineHeight(r.base))
		}
		r.drawMarker(marker, baseline, markerLeft, markerRight)
		if i < len(items)-1 {
			r.c.addVSpace(int(r.base * 0.6))
		}
	}
	r.c.addVSpace(int(r.base * 0.7))
}

func (r *renderer) drawMarker(marker string, baseline, left, right int) {
	ff := r.c.fonts.Regular
	r.c.setFace(ff, r.c.th.FG, r.base)
	x := right - int(measureWidth(ff, r.base, marker))
	if x < left {
		x = left
	}
	_, _ = r.c.dc.DrawString(marker, freetype.Pt(x, baseline))
}

// inline flattens inline nodes into styled tokens. face applies to
// untagged text.
func (r *renderer) inline(nodes []md2html.Node, face *FontAndFace, size float64) []textToken {
	var out []textToken
	for _, n := range nodes {
		switch v := n.(type) {
		case *md2html.Leaf:
			out = append(out, r.leaf(v, face, size))
		case *md2html.Container:
			out = append(out, r.inline(v.Children(), face, size)...)
		}
	}
	return out
}

func (r *renderer) leaf(l *md2html.Leaf, face *FontAndFace, size float64) textToken {
	f := r.c.fonts
	tok := textToken{text: l.Value(), face: face, size: size, color: r.c.th.FG}
	switch l.Tag() {
	case "b":
		tok.face = f.Bold
	case "i":
		tok.face = f.Italic
	case "code":
		tok.face, tok.size = f.Mono, size*0.95
	case "a":
		tok.color, tok.underline = r.c.th.Link, true
	case "img":
		alt, _ := l.Props().Get("alt")
		if alt == "" {
			alt, _ = l.Props().Get("src")
			tok.color = warningColor
		}
		tok.text = "[image: " + alt + "]"
	}
	return tok
}
