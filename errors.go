package md2html

import "github.com/pkg/errors"

// Errors reported while converting a document. Callers match them with errors.Is;
// the returned errors are wrapped with the offending text or tag.
var (
	// ErrMalformedDelimiter reports an unterminated **, _ or ` span.
	ErrMalformedDelimiter = errors.New("md2html: malformed delimiter")
	// ErrUnterminatedCodeBlock reports a fence without a closing fence.
	ErrUnterminatedCodeBlock = errors.New("md2html: unterminated code block")
	// ErrMalformedQuoteBlock reports a block mixing quoted and unquoted lines.
	ErrMalformedQuoteBlock = errors.New("md2html: malformed quote block")
	// ErrUnknownKind reports a text node whose type has no HTML mapping.
	ErrUnknownKind = errors.New("md2html: unknown text type")
)

// Errors reported by Render. They point to a node built without required fields.
var (
	ErrMissingValue    = errors.New("md2html: leaf node has no value")
	ErrMissingTag      = errors.New("md2html: container node has no tag")
	ErrMissingChildren = errors.New("md2html: container node has no children")
)
