package preview

import (
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const dpi = 96

// FontAndFace pairs a parsed font with a face sized for measurement.
type FontAndFace struct {
	Font     *truetype.Font
	Face     font.Face
	baseSize float64
}

// Fonts is the set of faces used for the inline styles.
type Fonts struct {
	Regular *FontAndFace
	Bold    *FontAndFace
	Italic  *FontAndFace
	Mono    *FontAndFace
}

func (f Fonts) complete() bool {
	return f.Regular != nil && f.Bold != nil && f.Italic != nil && f.Mono != nil
}

// FontConfig names TrueType files to load. Empty paths use the bundled Go
// fonts.
type FontConfig struct {
	RegularPath string
	BoldPath    string
	ItalicPath  string
	MonoPath    string
	SizeBase    float64 // paragraph size in pt
}

func parseFont(ttf []byte, size float64) (*FontAndFace, error) {
	ft, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse font")
	}
	face := truetype.NewFace(ft, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull})
	return &FontAndFace{Font: ft, Face: face, baseSize: size}, nil
}

func loadFont(path string, bundled []byte, size float64) (*FontAndFace, error) {
	if path == "" {
		return parseFont(bundled, size)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read font")
	}
	f, err := parseFont(b, size)
	return f, errors.WithMessage(err, path)
}

// LoadFonts loads the faces named by cfg.
func LoadFonts(cfg FontConfig) (Fonts, error) {
	if cfg.SizeBase <= 0 {
		cfg.SizeBase = defaultFontSize
	}
	var f Fonts
	for _, s := range []struct {
		dst     **FontAndFace
		path    string
		bundled []byte
	}{
		{&f.Regular, cfg.RegularPath, goregular.TTF},
		{&f.Bold, cfg.BoldPath, gobold.TTF},
		{&f.Italic, cfg.ItalicPath, goitalic.TTF},
		{&f.Mono, cfg.MonoPath, gomono.TTF},
	} {
		ff, err := loadFont(s.path, s.bundled, cfg.SizeBase)
		if err != nil {
			return Fonts{}, err
		}
		*s.dst = ff
	}
	return f, nil
}
