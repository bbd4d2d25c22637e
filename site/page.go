package site

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arran4/md2html"
	"github.com/pkg/errors"
)

// Placeholders substituted by Template.Fill.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// Template is an HTML page with title and content placeholders.
type Template struct {
	text string
}

// NewTemplate wraps template text.
func NewTemplate(text string) *Template {
	return &Template{text: text}
}

// LoadTemplate reads a template from path.
func LoadTemplate(path string) (*Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read template")
	}
	return NewTemplate(string(b)), nil
}

// Fill substitutes title and content into the template.
func (t *Template) Fill(title, content string) string {
	return strings.NewReplacer(TitlePlaceholder, title, ContentPlaceholder, content).Replace(t.text)
}

// NormalizeBasePath returns base with a leading and trailing slash. An empty
// base is "/".
func NormalizeBasePath(base string) string {
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// RewriteBasePath prefixes root-relative href and src attributes with base.
func RewriteBasePath(page, base string) string {
	base = NormalizeBasePath(base)
	if base == "/" {
		return page
	}
	return strings.NewReplacer(`href="/`, `href="`+base, `src="/`, `src="`+base).Replace(page)
}

// Page is a converted Markdown document.
type Page struct {
	Title string
	Root  *md2html.Container
	// Content is the rendered Root.
	Content string
}

// ParsePage converts markdown and extracts its title.
func ParsePage(markdown string) (*Page, error) {
	root, err := md2html.MarkdownToHTML(markdown)
	if err != nil {
		return nil, err
	}
	content, err := root.Render()
	if err != nil {
		return nil, err
	}
	title, err := ExtractTitle(markdown)
	if err != nil {
		return nil, err
	}
	return &Page{Title: title, Root: root, Content: content}, nil
}

// HTML returns the page filled into t with links rebased onto base.
func (p *Page) HTML(t *Template, base string) string {
	return RewriteBasePath(t.Fill(p.Title, p.Content), base)
}

// GeneratePage converts the Markdown file src and writes the filled template
// to dst, creating parent directories as needed.
func GeneratePage(src, dst string, t *Template, base string) (*Page, int, error) {
	b, err := os.ReadFile(src)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not read page")
	}
	p, err := ParsePage(string(b))
	if err != nil {
		return nil, 0, errors.WithMessage(err, src)
	}
	out := p.HTML(t, base)
	if err := writeFile(dst, []byte(out)); err != nil {
		return nil, 0, err
	}
	return p, len(out), nil
}

func writeFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, "could not create directory for %s", dst)
	}
	return errors.Wrapf(os.WriteFile(dst, data, 0o644), "could not write %s", dst)
}
