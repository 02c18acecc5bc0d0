package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Logger writes human-facing status lines to stderr
type Logger struct {
	w       io.Writer
	verbose bool

	info  lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	debug lipgloss.Style
}

// NewLogger returns a Logger writing to w. Colors follow the terminal
// profile of w, so a buffer or pipe gets plain text.
func NewLogger(w io.Writer, verbose bool) *Logger {
	r := lipgloss.NewRenderer(w)
	return &Logger{
		w:       w,
		verbose: verbose,
		info:    r.NewStyle().Foreground(lipgloss.Color("39")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		debug:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (l *Logger) Infof(format string, args ...any) {
	l.print(l.info, "", format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.print(l.warn, "Warning: ", format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.print(l.err, "Error: ", format, args...)
}

// Debugf only prints in verbose mode
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.print(l.debug, "", format, args...)
}

func (l *Logger) print(style lipgloss.Style, prefix, format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(l.w, style.Render(prefix+msg))
}
