package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = `<html><head><title>{{ Title }}</title><link href="/index.css"></head><body>{{ Content }}</body></html>`

func TestTemplateFill(t *testing.T) {
	got := NewTemplate(testTemplate).Fill("Hi", "<p>x</p>")
	assert.Equal(t, `<html><head><title>Hi</title><link href="/index.css"></head><body><p>x</p></body></html>`, got)
}

func TestNormalizeBasePath(t *testing.T) {
	for in, want := range map[string]string{
		"":      "/",
		"/":     "/",
		"blog":  "/blog/",
		"/blog": "/blog/",
		"blog/": "/blog/",
		"/a/b/": "/a/b/",
	} {
		assert.Equal(t, want, NormalizeBasePath(in), in)
	}
}

func TestRewriteBasePath(t *testing.T) {
	page := `<a href="/x">x</a><img src="/i.png"></img><a href="https://e.com/">e</a>`
	assert.Equal(t, page, RewriteBasePath(page, "/"))
	assert.Equal(t,
		`<a href="/repo/x">x</a><img src="/repo/i.png"></img><a href="https://e.com/">e</a>`,
		RewriteBasePath(page, "repo"))
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage("# Title\n\nBody **bold**")
	require.NoError(t, err)
	assert.Equal(t, "Title", p.Title)
	assert.Equal(t, "<div><h1>Title</h1><p>Body <b>bold</b></p></div>", p.Content)
	assert.Equal(t, "div", p.Root.Tag())
}

func TestParsePageErrors(t *testing.T) {
	_, err := ParsePage("no title here")
	assert.ErrorIs(t, err, ErrNoTitleFound)

	_, err = ParsePage("# T\n\n```\nopen")
	assert.Error(t, err)
}

func TestGeneratePage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(src, []byte("# A\n\n[home](/)"), 0o644))
	dst := filepath.Join(dir, "out", "nested", "a.html")

	p, n, err := GeneratePage(src, dst, NewTemplate(testTemplate), "/site")
	require.NoError(t, err)
	assert.Equal(t, "A", p.Title)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Len(t, b, n)
	assert.Contains(t, string(b), `<title>A</title>`)
	assert.Contains(t, string(b), `<a href="/site/">home</a>`)
	assert.Contains(t, string(b), `href="/site/index.css"`)
}
