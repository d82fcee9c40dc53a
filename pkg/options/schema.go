package options

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Kind is the value shape of a flag.
type Kind int

const (
	// KindBool is a plain switch (--watch).
	KindBool Kind = iota
	// KindNegatedBool is a --no-x switch whose key holds the positive form.
	KindNegatedBool
	// KindString takes one string value; the last occurrence wins.
	KindString
	// KindList takes comma-separated values and accumulates across repetitions.
	KindList
	// KindOverrides takes one key=value directive per occurrence, unsplit.
	KindOverrides
	// KindLoose takes a value that is read as JSON when possible.
	KindLoose
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNegatedBool:
		return "negated-bool"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindOverrides:
		return "overrides"
	case KindLoose:
		return "loose"
	default:
		return "unknown"
	}
}

// FlagSpec declares one recognized flag.
type FlagSpec struct {
	// Key is the option name used in RawOptionSet and config files. Derived
	// from Long when empty.
	Key   string
	Long  string
	Short string
	Kind  Kind
	// Default is the schema default; nil means the option is absent unless
	// supplied.
	Default any
	Usage   string
}

// Schema is an ordered, indexed catalogue of flags.
type Schema struct {
	specs  []FlagSpec
	byKey  map[string]int
	byLong map[string]int
}

// NewSchema indexes specs, deriving missing keys. It rejects duplicate keys,
// long names and shorthands.
func NewSchema(specs ...FlagSpec) (*Schema, error) {
	s := &Schema{
		specs:  make([]FlagSpec, 0, len(specs)),
		byKey:  make(map[string]int, len(specs)),
		byLong: make(map[string]int, len(specs)),
	}
	shorts := make(map[string]string)
	for _, spec := range specs {
		if spec.Long == "" {
			return nil, fmt.Errorf("flag spec %q has no long name", spec.Key)
		}
		if spec.Key == "" {
			spec.Key = deriveKey(spec)
		}
		if _, dup := s.byKey[spec.Key]; dup {
			return nil, fmt.Errorf("duplicate option key %q", spec.Key)
		}
		if _, dup := s.byLong[spec.Long]; dup {
			return nil, fmt.Errorf("duplicate flag --%s", spec.Long)
		}
		if spec.Short != "" {
			if prev, dup := shorts[spec.Short]; dup {
				return nil, fmt.Errorf("shorthand -%s used by --%s and --%s", spec.Short, prev, spec.Long)
			}
			shorts[spec.Short] = spec.Long
		}
		s.byKey[spec.Key] = len(s.specs)
		s.byLong[spec.Long] = len(s.specs)
		s.specs = append(s.specs, spec)
	}
	return s, nil
}

func mustSchema(specs ...FlagSpec) *Schema {
	s, err := NewSchema(specs...)
	if err != nil {
		panic(err)
	}
	return s
}

func deriveKey(spec FlagSpec) string {
	if spec.Kind == KindNegatedBool {
		return CamelCase(strings.TrimPrefix(spec.Long, "no-"))
	}
	return CamelCase(spec.Long)
}

// Specs returns the flag specs in declaration order.
func (s *Schema) Specs() []FlagSpec {
	out := make([]FlagSpec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Lookup finds a spec by option key.
func (s *Schema) Lookup(key string) (FlagSpec, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return FlagSpec{}, false
	}
	return s.specs[i], true
}

// LookupFlag finds a spec by long flag name, without leading dashes.
func (s *Schema) LookupFlag(long string) (FlagSpec, bool) {
	i, ok := s.byLong[long]
	if !ok {
		return FlagSpec{}, false
	}
	return s.specs[i], true
}

// Defaults returns the options that have a schema default.
func (s *Schema) Defaults() map[string]any {
	out := make(map[string]any)
	for _, spec := range s.specs {
		if spec.Default != nil {
			out[spec.Key] = spec.Default
		}
	}
	return out
}

// Register defines every schema flag on fs.
func (s *Schema) Register(fs *pflag.FlagSet) {
	for _, spec := range s.specs {
		switch spec.Kind {
		case KindBool, KindNegatedBool:
			fs.BoolP(spec.Long, spec.Short, false, spec.Usage)
		case KindString:
			fs.StringP(spec.Long, spec.Short, "", spec.Usage)
		case KindList:
			fs.StringSliceP(spec.Long, spec.Short, nil, spec.Usage)
		case KindOverrides:
			fs.StringArrayP(spec.Long, spec.Short, nil, spec.Usage)
		case KindLoose:
			fs.VarP(&looseValue{}, spec.Long, spec.Short, spec.Usage)
		}
	}
}

// Option keys the pipeline reads directly.
const (
	KeyFilename            = "filename"
	KeyConfigFile          = "configFile"
	KeyCliConfigFile       = "cliConfigFile"
	KeyEnvName             = "envName"
	KeyXpilerc             = "xpilerc"
	KeyIgnore              = "ignore"
	KeyOnly                = "only"
	KeyWatch               = "watch"
	KeyQuiet               = "quiet"
	KeySourceMaps          = "sourceMaps"
	KeySourceMapTarget     = "sourceMapTarget"
	KeySourceFileName      = "sourceFileName"
	KeySourceRoot          = "sourceRoot"
	KeyOutFile             = "outFile"
	KeyOutDir              = "outDir"
	KeyStripLeadingPaths   = "stripLeadingPaths"
	KeyCopyFiles           = "copyFiles"
	KeyIncludeDotfiles     = "includeDotfiles"
	KeyConfig              = "config"
	KeySync                = "sync"
	KeyWorkers             = "workers"
	KeyLogWatchCompilation = "logWatchCompilation"
	KeyExtensions          = "extensions"
	KeyOutFileExtension    = "outFileExtension"
	KeyDeleteDirOnStart    = "deleteDirOnStart"
)

var defaultSchema = mustSchema(
	FlagSpec{Long: "filename", Short: "f", Kind: KindString,
		Usage: "filename to use when reading from stdin; used in source maps and errors"},
	FlagSpec{Long: "config-file", Kind: KindString,
		Usage: "path to a .xpilerc file to use"},
	FlagSpec{Long: "cli-config-file", Kind: KindString,
		Usage: "path to a JSON file with CLI options; flags given on the command line take precedence"},
	FlagSpec{Long: "env-name", Kind: KindString,
		Usage: "name of the 'env' to use when loading configs and plugins"},
	FlagSpec{Long: "no-xpilerc", Kind: KindNegatedBool, Default: true,
		Usage: "disable .xpilerc lookup"},
	FlagSpec{Long: "ignore", Kind: KindList,
		Usage: "list of glob paths to not compile"},
	FlagSpec{Long: "only", Kind: KindList,
		Usage: "list of glob paths to only compile"},
	FlagSpec{Long: "watch", Short: "w", Kind: KindBool,
		Usage: "recompile files on changes"},
	FlagSpec{Long: "quiet", Short: "q", Kind: KindBool,
		Usage: "suppress compilation output"},
	FlagSpec{Long: "source-maps", Short: "s", Kind: KindLoose,
		Usage: "generate source maps [true|false|inline|both]"},
	FlagSpec{Long: "source-map-target", Kind: KindString,
		Usage: "define the file for the source map"},
	FlagSpec{Long: "source-file-name", Kind: KindString,
		Usage: "set sources[0] on returned source map"},
	FlagSpec{Long: "source-root", Kind: KindString,
		Usage: "the root from which all sources are relative"},
	FlagSpec{Long: "out-file", Short: "o", Kind: KindString,
		Usage: "compile all input files into a single file"},
	FlagSpec{Long: "out-dir", Short: "d", Kind: KindString,
		Usage: "compile an input directory of modules into an output directory"},
	FlagSpec{Long: "strip-leading-paths", Kind: KindBool,
		Usage: "remove the leading directory (including all parent relative paths) when building the final output path"},
	FlagSpec{Long: "copy-files", Short: "D", Kind: KindBool,
		Usage: "when compiling a directory copy over non-compilable files"},
	FlagSpec{Long: "include-dotfiles", Kind: KindBool,
		Usage: "include dotfiles when compiling and copying non-compilable files"},
	FlagSpec{Long: "config", Short: "C", Kind: KindOverrides,
		Usage: "override a compiler option, e.g. -C module.type=amd -C module.moduleId=hello"},
	FlagSpec{Long: "sync", Kind: KindBool,
		Usage: "invoke the compiler synchronously; useful for debugging"},
	FlagSpec{Long: "workers", Kind: KindString,
		Usage: "number of workers for parallel processing (default: auto)"},
	FlagSpec{Long: "log-watch-compilation", Kind: KindBool,
		Usage: "log a message when a watched file is successfully compiled"},
	FlagSpec{Long: "extensions", Kind: KindList,
		Usage: "use specific extensions"},
	FlagSpec{Long: "out-file-extension", Kind: KindString,
		Usage: "use a specific extension for the output files (default: js)"},
	FlagSpec{Long: "delete-dir-on-start", Kind: KindBool,
		Usage: "delete the output directory before compiling"},
)

// DefaultSchema returns the flag catalogue of the xpile command.
func DefaultSchema() *Schema {
	return defaultSchema
}
