// Package style defines the visual styling for terminal output.
//
// Styles have semantic names and are declared in the embedded styles.yaml.
// Colors collapse to plain text when the output is not a color terminal.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Style names
const (
	StepPrefix   = "StepPrefix"
	StepLabel    = "StepLabel"
	StepLabelDim = "StepLabelDim"
	Success      = "Success"
	Error        = "Error"
	Muted        = "Muted"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var defaultConfig = mustParse(embeddedStyles)

// Parse decodes a styles document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}
	for name, def := range cfg.Styles {
		for _, ref := range []string{def.Foreground, def.Background} {
			if ref == "" {
				continue
			}
			if _, ok := cfg.Colors[ref]; !ok {
				return nil, fmt.Errorf("style %s references unknown color %q", name, ref)
			}
		}
	}
	return &cfg, nil
}

func mustParse(data []byte) *Config {
	cfg, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Styles resolves named styles against one renderer
type Styles struct {
	renderer *lipgloss.Renderer
	config   *Config
}

// New binds the embedded styles to r
func New(r *lipgloss.Renderer) *Styles {
	return &Styles{renderer: r, config: defaultConfig}
}

// Get returns the named style. Unknown names yield an unstyled style.
func (s *Styles) Get(name string) lipgloss.Style {
	st := s.renderer.NewStyle()
	def, ok := s.config.Styles[name]
	if !ok {
		return st
	}
	if def.Foreground != "" {
		st = st.Foreground(s.color(def.Foreground))
	}
	if def.Background != "" {
		st = st.Background(s.color(def.Background))
	}
	return st.
		Bold(def.Bold).
		Faint(def.Faint).
		Italic(def.Italic).
		Underline(def.Underline)
}

// Render applies the named style to text
func (s *Styles) Render(name, text string) string {
	return s.Get(name).Render(text)
}

func (s *Styles) color(ref string) lipgloss.AdaptiveColor {
	c := s.config.Colors[ref]
	return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
}
