package options

import (
	"testing"

	"github.com/arthur-debert/xpile/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListFlagsAccumulate(t *testing.T) {
	raw, _, err := Parse(DefaultSchema(), []string{"--ignore", "a,b", "--ignore", "c"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, raw.Values[KeyIgnore])
	assert.True(t, raw.IsExplicit(KeyIgnore))
}

func TestParseOverridesAreNotSplit(t *testing.T) {
	raw, _, err := Parse(DefaultSchema(), []string{
		"-C", "jsc.target=es2020,es2021",
		"--config", "module.type=amd",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"jsc.target=es2020,es2021", "module.type=amd"}, raw.Values[KeyConfig])
}

func TestParseSourceMapsIsLoose(t *testing.T) {
	tests := []struct {
		args []string
		want any
	}{
		{[]string{"-s", "true"}, true},
		{[]string{"--source-maps", "false"}, false},
		{[]string{"--source-maps=inline"}, "inline"},
		{[]string{"-s", "both"}, "both"},
	}

	for _, tt := range tests {
		t.Run(tt.args[len(tt.args)-1], func(t *testing.T) {
			raw, _, err := Parse(DefaultSchema(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, raw.Values[KeySourceMaps])
		})
	}
}

func TestParseProvenance(t *testing.T) {
	raw, _, err := Parse(DefaultSchema(), []string{"-d", "lib", "--watch=false"})
	require.NoError(t, err)

	assert.True(t, raw.IsExplicit(KeyOutDir))
	assert.True(t, raw.IsExplicit(KeyWatch))
	assert.Equal(t, false, raw.Values[KeyWatch])

	assert.False(t, raw.IsExplicit(KeyXpilerc), "default values are not explicit")
	assert.Equal(t, true, raw.Values[KeyXpilerc])

	_, present := raw.Get(KeyOutFile)
	assert.False(t, present, "options without a default stay absent")

	assert.Equal(t, []string{KeyOutDir, KeyWatch}, raw.ExplicitKeys())
}

func TestParseNegatedFlag(t *testing.T) {
	raw, _, err := Parse(DefaultSchema(), []string{"--no-xpilerc"})
	require.NoError(t, err)

	assert.Equal(t, false, raw.Values[KeyXpilerc])
	assert.True(t, raw.IsExplicit(KeyXpilerc))
}

func TestParsePositionalOrder(t *testing.T) {
	_, positional, err := Parse(DefaultSchema(), []string{"b.js", "-d", "lib", "a.js", "--", "-c.js"})
	require.NoError(t, err)

	assert.Equal(t, []string{"b.js", "a.js", "-c.js"}, positional)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown long flag", []string{"--nope"}, "--nope"},
		{"unknown shorthand", []string{"-z"}, "z"},
		{"missing value", []string{"--out-dir"}, "out-dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(DefaultSchema(), tt.args)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrFlagParse))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCollectIgnoresForeignFlags(t *testing.T) {
	fs := pflag.NewFlagSet("cmd", pflag.ContinueOnError)
	fs.CountP("verbose", "v", "")
	DefaultSchema().Register(fs)
	require.NoError(t, fs.Parse([]string{"-vv", "-o", "out.js", "in.js"}))

	positional := fs.Args()
	raw, args := Collect(DefaultSchema(), fs, positional)

	assert.Equal(t, "out.js", raw.Values[KeyOutFile])
	assert.NotContains(t, raw.Values, "verbose")
	assert.Equal(t, []string{"in.js"}, args)

	positional[0] = "changed.js"
	assert.Equal(t, []string{"in.js"}, args, "positionals are copied")
}
