package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/arran4/md2html"
	"github.com/arran4/md2html/preview"
	"github.com/arran4/md2html/site"
	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
)

func main() {
	in := flag.String("in", "", "Input Markdown file (default: stdin if empty)")
	out := flag.String("out", "", "Output HTML file (default: stdout if empty)")
	pngOut := flag.String("png", "", "Also write a preview image of the document to this file (.png or .jpg)")
	dump := flag.Bool("dump", false, "Pretty-print the node tree to stderr")

	build := flag.Bool("site", false, "Build a site instead of converting a single document")
	content := flag.String("content", "content", "Markdown content directory")
	static := flag.String("static", "static", "Static files copied into the output")
	public := flag.String("public", "public", "Output directory (emptied first)")
	tmpl := flag.String("template", "template.html", "Page template with {{ Title }} and {{ Content }}")
	base := flag.String("base", "", "Base path for root-relative links (default: first argument, or /)")
	pretty := flag.Bool("pretty", false, "Write a/b.md to a/b/index.html")
	previews := flag.Bool("previews", false, "Write a PNG preview next to every page")
	skipInvalid := flag.Bool("skip-invalid", false, "Report and skip pages that fail to convert")
	quiet := flag.Bool("quiet", false, "Do not log progress")
	theme := flag.String("theme", "light", "Preview theme: light|dark")
	width := flag.Int("width", 1024, "Preview image width in pixels")
	margin := flag.Int("margin", 48, "Preview margin in pixels")
	pt := flag.Float64("pt", 16, "Preview base font size in points (paragraph)")
	fontRegular := flag.String("font", "", "Path to TTF for regular text (optional; default Go Regular)")
	fontBold := flag.String("fontbold", "", "Path to TTF for bold text (optional; default Go Bold)")
	fontItalic := flag.String("fontitalic", "", "Path to TTF for italic text (optional; default Go Italic)")
	fontMono := flag.String("fontmono", "", "Path to TTF for mono/code (optional; default Go Mono)")
	flag.Parse()

	th, err := preview.ThemeByName(*theme)
	if err != nil {
		fatal(err)
	}
	var popts preview.Options
	if *pngOut != "" || *previews {
		fonts, err := preview.LoadFonts(preview.FontConfig{
			RegularPath: *fontRegular,
			BoldPath:    *fontBold,
			ItalicPath:  *fontItalic,
			MonoPath:    *fontMono,
			SizeBase:    *pt,
		})
		if err != nil {
			fatal(err)
		}
		popts = preview.Options{
			Width:        *width,
			Margin:       *margin,
			BaseFontSize: *pt,
			Theme:        th,
			Fonts:        fonts,
		}
	}

	if !*build {
		if err := convert(*in, *out, *pngOut, *dump, popts); err != nil {
			fatal(err)
		}
		return
	}

	basePath := *base
	if basePath == "" {
		basePath = flag.Arg(0)
	}
	var obs site.Observer = site.LogObserver{Logger: log.New(os.Stderr, "", 0)}
	if *quiet {
		obs = site.NopObserver{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	st, err := site.Build(ctx, site.Options{
		ContentDir:   *content,
		StaticDir:    *static,
		OutputDir:    *public,
		TemplatePath: *tmpl,
		BasePath:     basePath,
		PrettyURLs:   *pretty,
		Previews:     *previews,
		SkipInvalid:  *skipInvalid,
		Preview:      popts,
		Observer:     obs,
	})
	if err != nil {
		fatal(err)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "built %d pages (%d skipped, %d failed), copied %d static files, wrote %s\n",
			st.Pages, st.Skipped, st.Failed, st.Copied, humanize.Bytes(uint64(st.Bytes)))
	}
}

func convert(in, out, pngOut string, dump bool, popts preview.Options) error {
	var data []byte
	var err error
	if in == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(in)
	}
	if err != nil {
		return err
	}

	root, err := md2html.MarkdownToHTML(string(data))
	if err != nil {
		return err
	}
	if dump {
		pp.Fprintln(os.Stderr, root)
	}
	html, err := root.Render()
	if err != nil {
		return err
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if _, err := io.WriteString(w, html+"\n"); err != nil {
		return err
	}

	if pngOut == "" {
		return nil
	}
	img, err := preview.Render(root, popts)
	if err != nil {
		return err
	}
	return writeImage(pngOut, img)
}

func writeImage(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = png.Encode
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: 92})
		}
	default:
		return errors.Errorf("unsupported image extension: %q", ext)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	_, _ = os.Stderr.WriteString("md2html: " + err.Error() + "\n")
	os.Exit(1)
}
