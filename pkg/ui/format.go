package ui

import (
	"fmt"
	"strings"
)

// Format represents the output format of the resolved options document
type Format int

const (
	// FormatJSON renders indented JSON
	FormatJSON Format = iota
	// FormatYAML renders a YAML document
	FormatYAML
	// FormatTOML renders a TOML document
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatJSON, fmt.Errorf("unknown format: %s", s)
	}
}
