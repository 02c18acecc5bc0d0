// Package output prints generated snippets and status messages.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

// Snippet is a generated command and the request it came from
type Snippet struct {
	Name string
	Code string
}

// Writer prints snippets, optionally highlighted
type Writer struct {
	Out   io.Writer
	Color bool
	Style string
}

// NewWriter returns a Writer for out
func NewWriter(out io.Writer, color bool, style string) *Writer {
	return &Writer{Out: out, Color: color, Style: style}
}

// WriteSnippets prints every snippet followed by a newline.
// With more than one snippet each is preceded by a "# <name>" line
// and separated from the next by a blank line.
func (w *Writer) WriteSnippets(snippets []Snippet) error {
	var sb strings.Builder
	for i, s := range snippets {
		if len(snippets) > 1 {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("# ")
			sb.WriteString(s.Name)
			sb.WriteString("\n")
		}
		sb.WriteString(s.Code)
		sb.WriteString("\n")
	}

	if !w.Color {
		_, err := io.WriteString(w.Out, sb.String())
		return err
	}
	return Highlight(w.Out, sb.String(), w.Style)
}

// Highlight writes src to w as ANSI-colored shell
func Highlight(w io.Writer, src, style string) error {
	lexer := lexers.Get("bash")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("failed to tokenise snippet: %w", err)
	}
	if err := formatter.Format(w, s, it); err != nil {
		return fmt.Errorf("failed to format snippet: %w", err)
	}
	return nil
}

// ShouldColor decides whether output to f is highlighted.
// mode is "always", "never" or "auto"; auto colors terminals only.
func ShouldColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if f == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Copy puts text on the system clipboard
func Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
