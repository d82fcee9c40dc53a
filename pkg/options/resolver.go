package options

import (
	"github.com/arthur-debert/xpile/pkg/errors"
	"github.com/arthur-debert/xpile/pkg/filesystem"
	"github.com/arthur-debert/xpile/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// Resolver runs the option pipeline. It holds no per-invocation state and
// can be reused.
type Resolver struct {
	schema *Schema
	loader ConfigLoader
	logger zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithSchema replaces the default flag schema.
func WithSchema(s *Schema) ResolverOption {
	return func(r *Resolver) { r.schema = s }
}

// WithFS sets the file system CLI config files are read from.
func WithFS(fsys filesystem.FS) ResolverOption {
	return func(r *Resolver) { r.loader = NewConfigLoader(fsys) }
}

// WithLogger sets the logger used for pipeline tracing.
func WithLogger(l zerolog.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver returns a Resolver using the default schema and the OS file
// system unless overridden.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		schema: DefaultSchema(),
		loader: NewConfigLoader(filesystem.NewOS()),
		logger: logging.GetLogger("options"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Schema returns the flag schema the resolver parses against.
func (r *Resolver) Schema() *Schema {
	return r.schema
}

// Resolve parses args and runs the full pipeline.
func (r *Resolver) Resolve(args []string) (*Result, error) {
	raw, positional, err := Parse(r.schema, args)
	if err != nil {
		r.logger.Debug().Err(err).Msg("Argument parsing failed")
		return nil, err
	}
	return r.resolve(raw, positional)
}

// ResolveFlags runs the pipeline on a flag set that has already been parsed,
// such as a cobra command's flags.
func (r *Resolver) ResolveFlags(fs *pflag.FlagSet, positional []string) (*Result, error) {
	raw, args := Collect(r.schema, fs, positional)
	return r.resolve(raw, args)
}

func (r *Resolver) resolve(raw *RawOptionSet, positional []string) (*Result, error) {
	done := logging.LogOperationStart(r.logger, "resolve")
	defer done()

	r.logger.Trace().
		Strs("explicit", raw.ExplicitKeys()).
		Int("positional", len(positional)).
		Msg("Arguments parsed")

	merged, err := r.merge(raw)
	if err != nil {
		return nil, err
	}

	directives, err := overrideDirectives(merged[KeyConfig])
	if err != nil {
		return nil, err
	}
	tree := CompilerTree(merged)
	if err := ApplyOverrides(tree, directives); err != nil {
		r.logger.Debug().Err(err).Msg("Override rejected")
		return nil, err
	}
	r.logger.Trace().Int("overrides", len(directives)).Msg("Overrides applied")

	if err := Validate(merged, positional); err != nil {
		r.logger.Debug().Strs("violations", errors.Messages(err)).Msg("Validation failed")
		return nil, err
	}

	compiler, err := AssembleCompiler(tree)
	if err != nil {
		return nil, err
	}
	cli, err := AssembleCLI(merged, positional)
	if err != nil {
		return nil, err
	}

	r.logger.Debug().
		Str("outDir", cli.OutDir).
		Str("outFile", cli.OutFile).
		Int("filenames", len(cli.Filenames)).
		Bool("watch", cli.Watch).
		Msg("Options resolved")

	return &Result{Compiler: compiler, CLI: cli}, nil
}

func (r *Resolver) merge(raw *RawOptionSet) (map[string]any, error) {
	path, _ := raw.Values[KeyCliConfigFile].(string)
	if path == "" {
		return Merge(raw, nil), nil
	}

	configFile, err := r.loader.Load(path)
	if err != nil {
		r.logger.Debug().Err(err).Str("path", path).Msg("CLI config file unusable")
		return nil, err
	}
	r.logger.Debug().Str("path", path).Int("keys", len(configFile)).Msg("CLI config file loaded")
	return Merge(raw, configFile), nil
}

// overrideDirectives accepts the -C list from flags or a config file array.
func overrideDirectives(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return t, nil
	case string:
		return []string{t}, nil
	}
	list, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, errors.Validation([]string{"config must be a list of key=value overrides"})
	}
	return list, nil
}
