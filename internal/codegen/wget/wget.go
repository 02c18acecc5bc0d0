// Package wget generates wget command lines from request descriptions.
package wget

import (
	"fmt"
	"strings"

	"github.com/studiowebux/shellwget/internal/body"
	"github.com/studiowebux/shellwget/internal/codegen"
	"github.com/studiowebux/shellwget/internal/sanitize"
	"github.com/studiowebux/shellwget/internal/types"
)

// OutputDocument is the file wget writes the response to
const OutputDocument = "shellWget.txt"

// Generator is the shell/wget snippet generator. It holds no state and is
// safe for concurrent use.
type Generator struct{}

var _ codegen.Generator = (*Generator)(nil)

// New creates a wget generator
func New() *Generator {
	return &Generator{}
}

func (g *Generator) Language() string { return "shell" }

func (g *Generator) Variant() string { return "wget" }

// Convert generates the snippet for req with default options and hands it to cb
func (g *Generator) Convert(req *types.Request, cb codegen.Callback) {
	g.ConvertWithOptions(req, types.ConvertOptions{}, cb)
}

// ConvertWithOptions generates the snippet for req and hands it to cb.
// cb runs synchronously before ConvertWithOptions returns.
func (g *Generator) ConvertWithOptions(req *types.Request, opts types.ConvertOptions, cb codegen.Callback) {
	if cb == nil {
		panic("wget: Convert called without a callback")
	}
	cb(nil, Generate(req, opts))
}

// Generate assembles the wget command line for req
func Generate(req *types.Request, opts types.ConvertOptions) string {
	indent := Indentation(opts)

	var sb strings.Builder
	sb.WriteString("wget --no-check-certificate --quiet \\\n")
	fmt.Fprintf(&sb, "%s--method %s \\\n", indent, req.Method)

	// wget takes the timeout in seconds
	if opts.RequestTimeout > 0 {
		fmt.Fprintf(&sb, "%s--timeout=%d \\\n", indent, opts.RequestTimeout/1000)
	}

	// wget follows up to 20 redirects unless told otherwise
	if opts.FollowRedirect != nil && !*opts.FollowRedirect {
		fmt.Fprintf(&sb, "%s--max-redirect=0 \\\n", indent)
	}

	sb.WriteString(headers(req, indent))
	sb.WriteString("\n")
	sb.WriteString(body.Render(req.Body, opts.RequestBodyTrim, indent))
	fmt.Fprintf(&sb, "%s--output-document=%s \\\n", indent, OutputDocument)
	fmt.Fprintf(&sb, "%s- '%s'", indent, req.URL)

	return sb.String()
}

// Indentation resolves the indent string from the options.
// A zero count selects the default (1 tab or 4 spaces), a negative one yields no indentation.
func Indentation(opts types.ConvertOptions) string {
	unit, count := " ", 4
	if opts.IndentType == types.IndentTab {
		unit, count = "\t", 1
	}

	switch {
	case opts.IndentCount > 0:
		count = opts.IndentCount
	case opts.IndentCount < 0:
		count = 0
	}

	return strings.Repeat(unit, count)
}

// headers renders one --header line per enabled header, without the final newline
func headers(req *types.Request, indent string) string {
	enabled := req.EnabledHeaders()
	if len(enabled) == 0 {
		return indent + "--header '' \\"
	}

	lines := make([]string, 0, len(enabled))
	for _, h := range enabled {
		lines = append(lines, fmt.Sprintf("%s--header '%s: %s' \\",
			indent, sanitize.Sanitize(h.Key, sanitize.Header, false), sanitize.Sanitize(h.Value, sanitize.Header, false)))
	}
	return strings.Join(lines, "\n")
}
