package options

import (
	"io"

	"github.com/arthur-debert/xpile/pkg/errors"
	"github.com/spf13/pflag"
)

// Parse parses args against schema. It returns the raw option set and the
// positional arguments in the order given.
func Parse(schema *Schema, args []string) (*RawOptionSet, []string, error) {
	fs := pflag.NewFlagSet("xpile", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(true)
	schema.Register(fs)

	if err := fs.Parse(args); err != nil {
		return nil, nil, errors.New(errors.ErrFlagParse, err.Error())
	}

	raw, positional := Collect(schema, fs, fs.Args())
	return raw, positional, nil
}

// Collect reads the schema's flags from an already parsed flag set. Flags
// the schema does not declare are ignored, so fs may carry extra flags.
func Collect(schema *Schema, fs *pflag.FlagSet, positional []string) (*RawOptionSet, []string) {
	raw := NewRawOptionSet()
	for _, spec := range schema.specs {
		f := fs.Lookup(spec.Long)
		if f == nil {
			continue
		}
		if !f.Changed {
			if spec.Default != nil {
				raw.Set(spec.Key, spec.Default, false)
			}
			continue
		}
		raw.Set(spec.Key, flagValue(fs, f, spec), true)
	}

	args := make([]string, len(positional))
	copy(args, positional)
	return raw, args
}

func flagValue(fs *pflag.FlagSet, f *pflag.Flag, spec FlagSpec) any {
	switch spec.Kind {
	case KindBool:
		v, _ := fs.GetBool(spec.Long)
		return v
	case KindNegatedBool:
		v, _ := fs.GetBool(spec.Long)
		return !v
	case KindString:
		v, _ := fs.GetString(spec.Long)
		return v
	case KindList:
		v, _ := fs.GetStringSlice(spec.Long)
		return v
	case KindOverrides:
		v, _ := fs.GetStringArray(spec.Long)
		return v
	case KindLoose:
		if lv, ok := f.Value.(*looseValue); ok {
			return lv.value
		}
		return ParseLoose(f.Value.String())
	}
	return f.Value.String()
}
