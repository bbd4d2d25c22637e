package preview

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golang/freetype"
	"golang.org/x/image/font"
)

const initialHeight = 2048

type canvas struct {
	img     *image.RGBA
	dc      *freetype.Context
	w       int
	margin  int
	cursorY int
	th      Theme
	fonts   Fonts
	ptSize  float64
}

func newCanvas(width, margin int, th Theme, fonts Fonts, ptSize float64) *canvas {
	c := &canvas{
		dc:      freetype.NewContext(),
		w:       width,
		margin:  margin,
		cursorY: margin,
		th:      th,
		fonts:   fonts,
		ptSize:  ptSize,
	}
	c.dc.SetDPI(dpi)
	c.dc.SetFontSize(ptSize)
	c.resize(initialHeight)
	return c
}

// resize swaps in a background filled image of height h, keeping what has
// been drawn so far.
func (c *canvas) resize(h int) {
	img := image.NewRGBA(image.Rect(0, 0, c.w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.th.BG), image.Point{}, draw.Src)
	if c.img != nil {
		draw.Draw(img, c.img.Bounds(), c.img, image.Point{}, draw.Src)
	}
	c.img = img
	c.dc.SetDst(img)
	c.dc.SetClip(img.Bounds())
}

// reserve grows the image so that px rows below the cursor fit above the
// bottom margin.
func (c *canvas) reserve(px int) {
	need := c.cursorY + px + c.margin
	h := c.img.Bounds().Dy()
	if need <= h {
		return
	}
	for h < need {
		h *= 2
	}
	c.resize(h)
}

// crop returns the drawn area, at least minHeight rows tall.
func (c *canvas) crop(minHeight int) *image.RGBA {
	h := c.cursorY + c.margin
	if h < minHeight {
		h = minHeight
	}
	c.reserve(h - c.cursorY - c.margin)
	out := image.NewRGBA(image.Rect(0, 0, c.w, h))
	draw.Draw(out, out.Bounds(), c.img, image.Point{}, draw.Src)
	return out
}

func (c *canvas) addVSpace(px int) { c.cursorY += px }

func (c *canvas) setFace(ff *FontAndFace, col color.Color, size float64) {
	c.dc.SetFont(ff.Font)
	c.dc.SetFontSize(size)
	c.dc.SetSrc(image.NewUniform(col))
}

func (c *canvas) fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *canvas) drawQuoteBar(x, top, height int) {
	c.fill(image.Rect(x, top, x+4, top+height), c.th.QuoteBar)
}

func (c *canvas) drawCodeBlock(text string, left, right int, size float64) {
	const pad = 10
	mono := c.fonts.Mono
	lines := wrapLines(mono, size, text, float64(right-left-2*pad))
	lh := lineHeight(size)
	height := len(lines)*lh + 2*pad + 6
	c.reserve(height + 6)

	top := c.cursorY
	c.fill(image.Rect(left, top, right, top+height), c.th.CodeBG)
	c.setFace(mono, c.th.FG, size)
	y := top + pad + int(size)
	for _, ln := range lines {
		_, _ = c.dc.DrawString(ln, freetype.Pt(left+pad, y))
		y += lh
	}
	c.cursorY = top + height + 6
}

func lineHeight(size float64) int { return int(size * 1.4) }

// measureWidth returns the advance of s at size. Faces are built at their
// base size, so other sizes are scaled linearly.
func measureWidth(ff *FontAndFace, size float64, s string) float64 {
	if ff == nil || s == "" {
		return 0
	}
	w := float64(font.MeasureString(ff.Face, s).Round())
	if size > 0 && ff.baseSize > 0 && size != ff.baseSize {
		w *= size / ff.baseSize
	}
	return w
}

// textToken is a run of text drawn in one style. A newline token ends the
// current line.
type textToken struct {
	text      string
	face      *FontAndFace
	size      float64
	color     color.Color
	underline bool
	newline   bool
}

// drawTokens lays tokens out between left and right, wrapping on spaces, and
// returns the baseline of every drawn line.
func (c *canvas) drawTokens(tokens []textToken, left, right int) []int {
	maxWidth := float64(right - left)
	var (
		line      []textToken
		width     float64
		maxSize   float64
		baselines []int
	)
	flush := func() {
		size := maxSize
		if size == 0 {
			size = c.ptSize
		}
		c.reserve(lineHeight(size))
		baseline := c.cursorY + int(size)
		x := left
		for _, w := range line {
			c.setFace(w.face, w.color, w.size)
			_, _ = c.dc.DrawString(w.text, freetype.Pt(x, baseline))
			ww := int(measureWidth(w.face, w.size, w.text))
			if w.underline && ww > 0 {
				y := baseline + max(1, int(w.size*0.12))
				c.fill(image.Rect(x, y, x+ww, y+1), w.color)
			}
			x += ww
		}
		if len(line) > 0 {
			baselines = append(baselines, baseline)
		}
		c.cursorY += lineHeight(size)
		line, width, maxSize = line[:0], 0, 0
	}

	for _, tok := range tokens {
		if tok.newline {
			flush()
			continue
		}
		if tok.face == nil {
			tok.face = c.fonts.Regular
		}
		for _, seg := range splitTextPreserveSpaces(tok.text) {
			r, _ := utf8.DecodeRuneInString(seg)
			space := unicode.IsSpace(r)
			if space && len(line) == 0 {
				continue
			}
			segWidth := measureWidth(tok.face, tok.size, seg)
			if !space && len(line) > 0 && width+segWidth > maxWidth {
				flush()
			}
			w := tok
			w.text = seg
			line = append(line, w)
			width += segWidth
			if tok.size > maxSize {
				maxSize = tok.size
			}
		}
	}
	if len(line) > 0 {
		flush()
	}
	return baselines
}

// wrapLines splits text on newlines and wraps each line to maxWidth without
// collapsing runs of spaces.
func wrapLines(ff *FontAndFace, size float64, text string, maxWidth float64) []string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln == "" || maxWidth <= 0 || measureWidth(ff, size, ln) <= maxWidth {
			lines = append(lines, ln)
			continue
		}
		lines = append(lines, wrapLine(ff, size, ln, maxWidth)...)
	}
	return lines
}

func wrapLine(ff *FontAndFace, size float64, line string, maxWidth float64) []string {
	var (
		out   []string
		cur   strings.Builder
		width float64
	)
	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		width = 0
	}
	for _, tok := range splitTextPreserveSpaces(line) {
		tw := measureWidth(ff, size, tok)
		if tw > maxWidth {
			if cur.Len() > 0 {
				flush()
			}
			out = append(out, breakToken(ff, size, tok, maxWidth)...)
			continue
		}
		if width+tw > maxWidth && cur.Len() > 0 {
			flush()
		}
		cur.WriteString(tok)
		width += tw
	}
	if cur.Len() > 0 {
		flush()
	}
	return out
}

// breakToken splits a token wider than maxWidth at rune boundaries.
func breakToken(ff *FontAndFace, size float64, tok string, maxWidth float64) []string {
	var (
		parts []string
		cur   strings.Builder
		width float64
	)
	for _, r := range tok {
		cw := measureWidth(ff, size, string(r))
		if width+cw > maxWidth && cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
			width = 0
		}
		cur.WriteRune(r)
		width += cw
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

// splitTextPreserveSpaces cuts s into alternating runs of space and
// non-space runes.
func splitTextPreserveSpaces(s string) []string {
	var parts []string
	start := 0
	prev := -1
	for i, r := range s {
		kind := 0
		if unicode.IsSpace(r) {
			kind = 1
		}
		if prev >= 0 && kind != prev {
			parts = append(parts, s[start:i])
			start = i
		}
		prev = kind
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}
