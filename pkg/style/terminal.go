package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsColorTerminal reports whether w is a terminal that should get colors.
// NO_COLOR disables colors everywhere.
func IsColorTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).Profile != termenv.Ascii
}

// NewRenderer returns a lipgloss renderer for w, plain when w is not a
// color terminal
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !IsColorTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// ForWriter is New(NewRenderer(w))
func ForWriter(w io.Writer) *Styles {
	return New(NewRenderer(w))
}
