package site

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"first line", "# Hello", "Hello"},
		{"after content", "Some text\n\n# The Title\n\nMore", "The Title"},
		{"first of many", "# One\n# Two", "One"},
		{"extra spaces", "#    Spaced Out   ", "Spaced Out"},
		{"crlf", "# Windows\r\nbody", "Windows"},
		{"h2 then h1", "## Sub\n# Main", "Main"},
		{"special characters", "# Hello, World! & <Friends>", "Hello, World! & <Friends>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTitle(tt.markdown)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTitleMissing(t *testing.T) {
	for _, md := range []string{"", "no heading", "## only h2", "#NoSpace"} {
		_, err := ExtractTitle(md)
		assert.True(t, errors.Is(err, ErrNoTitleFound), "%q: %v", md, err)
	}
}
