// Package sanitize makes arbitrary values safe to embed in single-quoted
// shell arguments.
package sanitize

import (
	"net/url"
	"strings"
)

// Mode selects the escaping rules for a value
type Mode string

const (
	Header     Mode = "header"
	Raw        Mode = "raw"
	URLEncoded Mode = "urlencoded"
	FormData   Mode = "formdata"
	File       Mode = "file"
)

// quoteEscaper closes the quoted string, emits an escaped quote and reopens it
var quoteEscaper = strings.NewReplacer(`'`, `'\''`)

// Sanitize escapes s for the given mode, trimming surrounding whitespace first when trim is set
func Sanitize(s string, mode Mode, trim bool) string {
	if trim {
		s = strings.TrimSpace(s)
	}

	switch mode {
	case URLEncoded, FormData:
		return encodeComponent(s)
	default:
		return quoteEscaper.Replace(s)
	}
}

// encodeComponent percent-encodes every byte outside A-Z a-z 0-9 - _ . ~,
// including ! ' ( ) *. Spaces become %20, not '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
