package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/xpile/pkg/ui"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type document struct {
	Compiler map[string]any `json:"compilerOptions"`
	CLI      struct {
		OutDir  string   `json:"outDir,omitempty"`
		Workers *int     `json:"workers,omitempty"`
		Ignore  []string `json:"ignore"`
	} `json:"cliOptions"`
}

func sampleDocument() document {
	workers := 4
	var doc document
	doc.Compiler = map[string]any{
		"xpilerc":    true,
		"sourceMaps": "inline",
		"module":     map[string]any{"type": "amd"},
		"unset":      nil,
		"ratio":      2.5,
	}
	doc.CLI.OutDir = "lib"
	doc.CLI.Workers = &workers
	doc.CLI.Ignore = []string{"a", "b"}
	return doc
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.Render(&buf, ui.FormatJSON, sampleDocument()))

	assert.JSONEq(t, `{
		"compilerOptions": {
			"xpilerc": true,
			"sourceMaps": "inline",
			"module": {"type": "amd"},
			"unset": null,
			"ratio": 2.5
		},
		"cliOptions": {"outDir": "lib", "workers": 4, "ignore": ["a", "b"]}
	}`, buf.String())
	assert.Contains(t, buf.String(), "\n  \"cliOptions\"", "output is indented")
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.Render(&buf, ui.FormatYAML, sampleDocument()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	compiler := got["compilerOptions"].(map[string]any)
	assert.Equal(t, true, compiler["xpilerc"])
	assert.Equal(t, map[string]any{"type": "amd"}, compiler["module"])
	assert.Equal(t, 2.5, compiler["ratio"])
	assert.Contains(t, compiler, "unset")

	cli := got["cliOptions"].(map[string]any)
	assert.Equal(t, 4, cli["workers"])
	assert.Equal(t, []any{"a", "b"}, cli["ignore"])
}

func TestRenderTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.Render(&buf, ui.FormatTOML, sampleDocument()))

	var got map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))

	compiler := got["compilerOptions"].(map[string]any)
	assert.Equal(t, "inline", compiler["sourceMaps"])
	assert.Equal(t, 2.5, compiler["ratio"])
	assert.NotContains(t, compiler, "unset", "TOML has no null")

	cli := got["cliOptions"].(map[string]any)
	assert.Equal(t, int64(4), cli["workers"])
	assert.Equal(t, "lib", cli["outDir"])
}

func TestNewRendererUnknownFormat(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}
