package help

import (
	_ "embed"
	"io"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/style"
)

//go:embed explain.md
var explainDoc string

// Explain returns the raw markdown describing every step and file
func Explain() string {
	return explainDoc
}

// RendererFor picks glamour styling for color terminals. Pipes and files
// get the markdown unchanged.
func RendererFor(w io.Writer) Renderer {
	if !style.IsColorTerminal(w) {
		return &PlainRenderer{}
	}
	return NewGlamourRenderer()
}
