package site

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrNoTitleFound is returned by ExtractTitle for documents without a "# " line.
var ErrNoTitleFound = errors.New("site: no title found")

// ExtractTitle returns the text of the first line starting with "# ",
// trimmed of surrounding whitespace.
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:]), nil
		}
	}
	return "", ErrNoTitleFound
}
