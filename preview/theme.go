package preview

import (
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

// Theme holds the colours used when drawing a document.
type Theme struct {
	BG       color.Color
	FG       color.Color
	CodeBG   color.Color
	QuoteBar color.Color
	Link     color.Color
}

var (
	// LightTheme is dark text on white. It is the default.
	LightTheme = Theme{
		BG:       color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		FG:       color.RGBA{0x11, 0x11, 0x11, 0xFF},
		CodeBG:   color.RGBA{0xF5, 0xF5, 0xF7, 0xFF},
		QuoteBar: color.RGBA{0xCC, 0xCC, 0xCC, 0xFF},
		Link:     color.RGBA{0x06, 0x4F, 0xBD, 0xFF},
	}
	// DarkTheme is light text on a near black background.
	DarkTheme = Theme{
		BG:       color.RGBA{0x12, 0x12, 0x14, 0xFF},
		FG:       color.RGBA{0xEE, 0xEE, 0xF0, 0xFF},
		CodeBG:   color.RGBA{0x1E, 0x1E, 0x22, 0xFF},
		QuoteBar: color.RGBA{0x44, 0x44, 0x48, 0xFF},
		Link:     color.RGBA{0x6C, 0xA8, 0xFF, 0xFF},
	}

	warningColor = color.RGBA{0xD9, 0x51, 0x2C, 0xFF}
)

// orDefaults fills unset colours from LightTheme.
func (t Theme) orDefaults() Theme {
	for _, c := range []struct {
		dst *color.Color
		def color.Color
	}{
		{&t.BG, LightTheme.BG},
		{&t.FG, LightTheme.FG},
		{&t.CodeBG, LightTheme.CodeBG},
		{&t.QuoteBar, LightTheme.QuoteBar},
		{&t.Link, LightTheme.Link},
	} {
		if *c.dst == nil {
			*c.dst = c.def
		}
	}
	return t
}

// ErrUnknownTheme is returned by ThemeByName.
var ErrUnknownTheme = errors.New("preview: unknown theme")

// ThemeByName returns a built-in theme, "light" (or "") or "dark".
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "light", "":
		return LightTheme, nil
	case "dark":
		return DarkTheme, nil
	default:
		return Theme{}, errors.Wrapf(ErrUnknownTheme, "%q", name)
	}
}
