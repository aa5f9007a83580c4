package help

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	doc := Explain()
	for _, label := range []string{
		"Preparing ...",
		"Installing dependencies...",
		"Setting up husky...",
		"Setting semantic release ...",
		"commitlint-plugin-jira-rules",
	} {
		assert.Contains(t, doc, label)
	}
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# x\n", r.Render("# x\n"))
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 80}
	out := r.Render("# Steps\n\nSome *text*.\n")
	assert.Contains(t, out, "Steps")
	assert.Contains(t, out, "text")
}

func TestRendererFor_NonTerminal(t *testing.T) {
	r := RendererFor(&bytes.Buffer{})
	assert.IsType(t, &PlainRenderer{}, r)
	assert.Equal(t, Explain(), r.Render(Explain()))
}
