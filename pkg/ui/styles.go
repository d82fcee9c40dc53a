package ui

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// StylesConfig represents the complete styles configuration
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Theme holds the styles used by the diagnostics printer, bound to one
// lipgloss renderer.
type Theme struct {
	Banner  lipgloss.Style
	Message lipgloss.Style
}

// LoadTheme builds a Theme from YAML style data. Styles missing from data
// fall back to unstyled text.
func LoadTheme(r *lipgloss.Renderer, data []byte) (Theme, error) {
	var config StylesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Theme{}, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	style := func(name string) lipgloss.Style {
		s := r.NewStyle()
		def, ok := config.Styles[name]
		if !ok {
			return s
		}
		if def.Bold {
			s = s.Bold(true)
		}
		if def.Italic {
			s = s.Italic(true)
		}
		if def.Underline {
			s = s.Underline(true)
		}
		if color, ok := colors[def.Foreground]; ok {
			s = s.Foreground(color)
		}
		return s
	}

	return Theme{
		Banner:  style("Banner"),
		Message: style("Message"),
	}, nil
}

func defaultTheme(r *lipgloss.Renderer) Theme {
	theme, err := LoadTheme(r, embeddedStyles)
	if err != nil {
		return Theme{Banner: r.NewStyle(), Message: r.NewStyle()}
	}
	return theme
}
