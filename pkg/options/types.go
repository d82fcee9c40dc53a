package options

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/copystructure"
)

// SourceMaps is the source map setting handed to the compiler. The zero
// value means unset, which the compiler treats differently from "false".
type SourceMaps string

const (
	SourceMapsUnset  SourceMaps = ""
	SourceMapsTrue   SourceMaps = "true"
	SourceMapsFalse  SourceMaps = "false"
	SourceMapsInline SourceMaps = "inline"
	SourceMapsBoth   SourceMaps = "both"
)

// IsSet reports whether a source map setting was given at all.
func (s SourceMaps) IsSet() bool { return s != SourceMapsUnset }

// MarshalJSON writes the boolean settings as JSON booleans.
func (s SourceMaps) MarshalJSON() ([]byte, error) {
	switch s {
	case SourceMapsTrue:
		return []byte("true"), nil
	case SourceMapsFalse:
		return []byte("false"), nil
	case SourceMapsUnset:
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

// CompilerOptions is the typed view of the compiler options tree. Keys not
// covered by a field, including everything set by -C overrides outside
// those fields, are in Extra. The full tree is available from Map.
//
// A CompilerOptions is a snapshot: Map and Get return copies, and nothing
// retains a reference to the tree after assembly.
type CompilerOptions struct {
	SourceMaps     SourceMaps     `mapstructure:"sourceMaps"`
	SourceFileName string         `mapstructure:"sourceFileName"`
	SourceRoot     string         `mapstructure:"sourceRoot"`
	ConfigFile     string         `mapstructure:"configFile"`
	Xpilerc        bool           `mapstructure:"xpilerc"`
	EnvName        string         `mapstructure:"envName"`
	Extra          map[string]any `mapstructure:",remain"`

	tree map[string]any
}

// Map returns a deep copy of the compiler options tree.
func (c CompilerOptions) Map() map[string]any {
	return deepCopy(c.tree)
}

// Get reads the value at a dotted path, e.g. "module.type".
func (c CompilerOptions) Get(path string) (any, bool) {
	var node any = c.tree
	for _, seg := range strings.Split(path, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	if m, ok := node.(map[string]any); ok {
		return deepCopy(m), true
	}
	return node, true
}

// MarshalJSON writes the tree, so absent settings stay absent.
func (c CompilerOptions) MarshalJSON() ([]byte, error) {
	if c.tree == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.tree)
}

// CliOptions configures the file-processing layer for one invocation.
type CliOptions struct {
	OutDir              string   `mapstructure:"outDir" json:"outDir,omitempty"`
	OutFile             string   `mapstructure:"outFile" json:"outFile,omitempty"`
	StripLeadingPaths   bool     `mapstructure:"stripLeadingPaths" json:"stripLeadingPaths"`
	Sync                bool     `mapstructure:"sync" json:"sync"`
	Workers             *int     `mapstructure:"-" json:"workers,omitempty"`
	SourceMapTarget     string   `mapstructure:"sourceMapTarget" json:"sourceMapTarget,omitempty"`
	Filename            string   `mapstructure:"filename" json:"filename,omitempty"`
	Filenames           []string `mapstructure:"-" json:"filenames"`
	Extensions          []string `mapstructure:"extensions" json:"extensions"`
	Watch               bool     `mapstructure:"watch" json:"watch"`
	CopyFiles           bool     `mapstructure:"copyFiles" json:"copyFiles"`
	OutFileExtension    string   `mapstructure:"outFileExtension" json:"outFileExtension,omitempty"`
	IncludeDotfiles     bool     `mapstructure:"includeDotfiles" json:"includeDotfiles"`
	DeleteDirOnStart    bool     `mapstructure:"deleteDirOnStart" json:"deleteDirOnStart"`
	Quiet               bool     `mapstructure:"quiet" json:"quiet"`
	Only                []string `mapstructure:"only" json:"only"`
	Ignore              []string `mapstructure:"ignore" json:"ignore"`
	LogWatchCompilation bool     `mapstructure:"logWatchCompilation" json:"logWatchCompilation"`
}

// WorkerCount returns the requested worker count, or 0 and false for auto.
func (c CliOptions) WorkerCount() (int, bool) {
	if c.Workers == nil {
		return 0, false
	}
	return *c.Workers, true
}

// Result is the outcome of a successful resolution.
type Result struct {
	Compiler CompilerOptions `json:"compilerOptions"`
	CLI      CliOptions      `json:"cliOptions"`
}

func deepCopy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return copystructure.Must(copystructure.Copy(m)).(map[string]any)
}
