// Package site builds a static site from a tree of Markdown files and an
// HTML template, using md2html for the conversion.
package site

import (
	"bytes"
	"context"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arran4/md2html/preview"
	"github.com/pkg/errors"
)

// Options configure Build. Zero values select the defaults noted per field.
type Options struct {
	ContentDir   string // "content"
	StaticDir    string // "static"
	OutputDir    string // "public"
	TemplatePath string // "template.html"
	BasePath     string // "/"

	// PrettyURLs writes a/b.md to a/b/index.html instead of a/b.html.
	PrettyURLs bool
	// SkipInvalid reports pages that fail to convert and carries on.
	SkipInvalid bool
	// Previews writes a PNG rendering next to every generated page.
	Previews bool
	Preview  preview.Options

	Observer Observer
}

func (o Options) withDefaults() Options {
	if o.ContentDir == "" {
		o.ContentDir = "content"
	}
	if o.StaticDir == "" {
		o.StaticDir = "static"
	}
	if o.OutputDir == "" {
		o.OutputDir = "public"
	}
	if o.TemplatePath == "" {
		o.TemplatePath = "template.html"
	}
	o.BasePath = NormalizeBasePath(o.BasePath)
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	return o
}

// Stats summarise a build.
type Stats struct {
	Removed  int
	Copied   int
	Pages    int
	Previews int
	Skipped  int
	Failed   int
	Bytes    int64
}

// Build empties the output directory, copies static files into it and
// generates a page for every Markdown file under the content directory.
func Build(ctx context.Context, opts Options) (Stats, error) {
	opts = opts.withDefaults()
	var st Stats
	var err error
	if st.Removed, err = ResetDir(opts.OutputDir, opts.Observer); err != nil {
		return st, err
	}
	if st.Copied, err = CopyStatic(opts.StaticDir, opts.OutputDir, opts.Observer); err != nil {
		return st, err
	}
	tmpl, err := LoadTemplate(opts.TemplatePath)
	if err != nil {
		return st, err
	}
	pages, err := GeneratePages(ctx, opts.ContentDir, opts.OutputDir, tmpl, opts)
	pages.Removed, pages.Copied = st.Removed, st.Copied
	return pages, err
}

// OutputPath maps a content-relative Markdown path to its page path.
func OutputPath(rel string, pretty bool) string {
	base := strings.TrimSuffix(rel, filepath.Ext(rel))
	if pretty {
		return filepath.Join(base, "index.html")
	}
	return base + ".html"
}

func isMarkdown(p string) bool {
	return strings.EqualFold(filepath.Ext(p), ".md")
}

// GeneratePages converts every Markdown file under content into dst. When
// content is a single file it is written to dst/index.html with PrettyURLs,
// or dst/<name>.html otherwise. Other files are reported as skipped.
func GeneratePages(ctx context.Context, content, dst string, t *Template, opts Options) (Stats, error) {
	opts = opts.withDefaults()
	if opts.Previews && opts.Preview.Fonts == (preview.Fonts{}) {
		fonts, err := preview.LoadFonts(preview.FontConfig{SizeBase: opts.Preview.BaseFontSize})
		if err != nil {
			return Stats{}, err
		}
		opts.Preview.Fonts = fonts
	}
	g := &generator{opts: opts, tmpl: t}

	info, err := os.Stat(content)
	if err != nil {
		return g.st, errors.Wrapf(err, "content %s", content)
	}
	if !info.IsDir() {
		out := filepath.Join(dst, "index.html")
		if !opts.PrettyURLs {
			out = filepath.Join(dst, OutputPath(filepath.Base(content), false))
		}
		err := g.page(content, out)
		return g.st, err
	}

	err = filepath.WalkDir(content, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isMarkdown(p) {
			g.st.Skipped++
			opts.Observer.Skipped(p)
			return nil
		}
		rel, err := filepath.Rel(content, p)
		if err != nil {
			return err
		}
		return g.page(p, filepath.Join(dst, OutputPath(rel, opts.PrettyURLs)))
	})
	return g.st, err
}

type generator struct {
	opts Options
	tmpl *Template
	st   Stats
}

func (g *generator) page(src, dst string) error {
	p, n, err := GeneratePage(src, dst, g.tmpl, g.opts.BasePath)
	if err != nil {
		if g.opts.SkipInvalid {
			g.st.Failed++
			g.opts.Observer.Failed(src, err)
			return nil
		}
		return err
	}
	g.st.Pages++
	g.st.Bytes += int64(n)
	g.opts.Observer.Generated(src, dst, int64(n))

	if !g.opts.Previews {
		return nil
	}
	img, err := preview.Render(p.Root, g.opts.Preview)
	if err != nil {
		return errors.WithMessage(err, src)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrap(err, "could not encode preview")
	}
	out := strings.TrimSuffix(dst, filepath.Ext(dst)) + ".png"
	if err := writeFile(out, buf.Bytes()); err != nil {
		return err
	}
	g.st.Previews++
	g.st.Bytes += int64(buf.Len())
	g.opts.Observer.Generated(src, out, int64(buf.Len()))
	return nil
}
