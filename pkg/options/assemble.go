package options

import (
	"reflect"

	"github.com/arthur-debert/xpile/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// DefaultExtensions are the source extensions compiled when --extensions is
// not given.
var DefaultExtensions = []string{".js", ".jsx", ".es6", ".es", ".mjs", ".ts", ".tsx", ".cts", ".mts"}

// CompilerTree builds the base compiler options tree from the merged
// options. The source map setting is copied only when it was defined.
func CompilerTree(merged map[string]any) map[string]any {
	tree := make(map[string]any)
	for _, key := range []string{KeySourceFileName, KeySourceRoot, KeyConfigFile, KeyEnvName} {
		if v, ok := merged[key]; ok && truthy(v) {
			tree[key] = v
		}
	}
	tree[KeyXpilerc] = true
	if v, ok := merged[KeyXpilerc]; ok && v != nil {
		tree[KeyXpilerc] = v
		if b, err := cast.ToBoolE(v); err == nil {
			tree[KeyXpilerc] = b
		}
	}
	if v, ok := merged[KeySourceMaps]; ok && v != nil {
		tree[KeySourceMaps] = normalizeSourceMaps(v)
	}
	return tree
}

// normalizeSourceMaps turns the string spellings "true" and "false" into
// booleans. Anything else is left for the decode hook to accept or reject.
func normalizeSourceMaps(v any) any {
	if s, ok := v.(string); ok {
		switch SourceMaps(s) {
		case SourceMapsTrue:
			return true
		case SourceMapsFalse:
			return false
		}
	}
	return v
}

// AssembleCompiler projects tree into CompilerOptions. The result keeps its
// own copy of the tree.
func AssembleCompiler(tree map[string]any) (CompilerOptions, error) {
	var out CompilerOptions
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		DecodeHook:       sourceMapsHookFunc(),
	})
	if err != nil {
		return CompilerOptions{}, errors.Wrap(err, errors.ErrInternal, "failed to build compiler options decoder")
	}
	if err := dec.Decode(deepCopy(tree)); err != nil {
		return CompilerOptions{}, errors.Validation([]string{"invalid compiler options: " + err.Error()})
	}
	out.tree = deepCopy(tree)
	return out, nil
}

// AssembleCLI builds CliOptions from the merged options and positional
// inputs. Workers must already have passed Validate.
func AssembleCLI(merged map[string]any, positional []string) (CliOptions, error) {
	input := make(map[string]any, len(merged))
	for k, v := range merged {
		if v != nil {
			input[k] = v
		}
	}
	delete(input, KeyWorkers)

	var out CliOptions
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return CliOptions{}, errors.Wrap(err, errors.ErrInternal, "failed to build CLI options decoder")
	}
	if err := dec.Decode(input); err != nil {
		return CliOptions{}, errors.Validation([]string{"invalid CLI options: " + err.Error()})
	}

	workers, ok := workerCount(merged[KeyWorkers])
	if !ok {
		return CliOptions{}, errors.Newf(errors.ErrInternal, "unvalidated worker count %v", merged[KeyWorkers])
	}
	out.Workers = workers

	if _, given := input[KeyExtensions]; !given {
		out.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if out.Only == nil {
		out.Only = []string{}
	}
	if out.Ignore == nil {
		out.Ignore = []string{}
	}
	if out.Extensions == nil {
		out.Extensions = []string{}
	}

	out.Filenames = make([]string, len(positional))
	copy(out.Filenames, positional)
	return out, nil
}

var sourceMapsType = reflect.TypeOf(SourceMaps(""))

// sourceMapsHookFunc decodes booleans and strings into SourceMaps before
// weak typing can turn a bool into "1".
func sourceMapsHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != sourceMapsType {
			return data, nil
		}
		switch v := data.(type) {
		case bool:
			if v {
				return SourceMapsTrue, nil
			}
			return SourceMapsFalse, nil
		case string, SourceMaps:
			switch sm := SourceMaps(reflect.ValueOf(v).String()); sm {
			case SourceMapsTrue, SourceMapsFalse, SourceMapsInline, SourceMapsBoth:
				return sm, nil
			}
		}
		return nil, errors.Newf(errors.ErrConfigInvalid, "sourceMaps must be a boolean or one of \"inline\", \"both\" (got %v)", data)
	}
}
