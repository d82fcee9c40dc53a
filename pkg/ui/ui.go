// Package ui renders the resolved options document and the diagnostics
// printed when resolution fails.
package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Renderer writes a result document in one format.
type Renderer interface {
	RenderResult(result interface{}) error
}

// NewRenderer creates a renderer for the given format.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatJSON:
		return &jsonRenderer{out: output}, nil
	case FormatYAML:
		return &yamlRenderer{out: output}, nil
	case FormatTOML:
		return &tomlRenderer{out: output}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Render is NewRenderer followed by RenderResult.
func Render(output io.Writer, format Format, result interface{}) error {
	r, err := NewRenderer(format, output)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

type jsonRenderer struct{ out io.Writer }

func (r *jsonRenderer) RenderResult(result interface{}) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

type yamlRenderer struct{ out io.Writer }

func (r *yamlRenderer) RenderResult(result interface{}) error {
	doc, err := toDocument(result)
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}

type tomlRenderer struct{ out io.Writer }

func (r *tomlRenderer) RenderResult(result interface{}) error {
	doc, err := toDocument(result)
	if err != nil {
		return err
	}
	// TOML has no null.
	if err := toml.NewEncoder(r.out).Encode(stripNulls(doc)); err != nil {
		return fmt.Errorf("failed to encode toml: %w", err)
	}
	return nil
}

// toDocument converts result into plain maps, slices and scalars through
// its JSON form, so every format sees the same keys the JSON output uses.
func toDocument(result interface{}) (interface{}, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return numbers(doc), nil
}

// numbers replaces json.Number with int64 where the value is integral and
// float64 otherwise.
func numbers(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, child := range t {
			t[k] = numbers(child)
		}
		return t
	case []interface{}:
		for i, child := range t {
			t[i] = numbers(child)
		}
		return t
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		f, _ := t.Float64()
		return f
	default:
		return v
	}
}

func stripNulls(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, child := range t {
			if child == nil {
				continue
			}
			out[k] = stripNulls(child)
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(t))
		for _, child := range t {
			if child == nil {
				continue
			}
			out = append(out, stripNulls(child))
		}
		return out
	default:
		return v
	}
}
