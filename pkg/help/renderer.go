// Package help renders the embedded documentation shown by the explain
// command.
package help

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into terminal output
type Renderer interface {
	Render(markdown string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(markdown string) string {
	return markdown
}

// GlamourRenderer uses glamour for rich markdown rendering
type GlamourRenderer struct {
	Style string // "auto", a glamour standard style name ("dark", "light", "notty") or a style file path
	Width int    // word wrap column, 0 keeps glamour's default
}

// NewGlamourRenderer creates a renderer that detects the terminal style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output. Rendering errors fall
// back to the raw markdown.
func (r *GlamourRenderer) Render(markdown string) string {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
