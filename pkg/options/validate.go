package options

import (
	"fmt"
	"math"
	"strings"

	"github.com/arthur-debert/xpile/pkg/errors"
	"github.com/spf13/cast"
)

// Violation messages, in the order Validate reports them.
const (
	MsgOutDirRequiresFilenames = "--out-dir requires filenames"
	MsgOutFileAndOutDir        = "--out-file and --out-dir cannot be used together"
	MsgWatchRequiresOutput     = "--watch requires --out-file or --out-dir"
	MsgWatchRequiresFilenames  = "--watch requires filenames"
	MsgStdinAmbiguous          = "stdin compilation requires either -f/--filename [filename] or --no-xpilerc"
	msgWorkersFormat           = "--workers must be a non-negative integer (found %v)"
)

// Validate checks the cross-option rules against the merged options and the
// positional inputs. All violations are returned together in one
// CONFIG_INVALID error; nil means the combination is usable.
func Validate(merged map[string]any, positional []string) error {
	var violations []string

	outDir := truthy(merged[KeyOutDir])
	outFile := truthy(merged[KeyOutFile])
	hasInputs := len(positional) > 0

	if outDir && !hasInputs {
		violations = append(violations, MsgOutDirRequiresFilenames)
	}
	if outFile && outDir {
		violations = append(violations, MsgOutFileAndOutDir)
	}
	if switchOn(merged[KeyWatch]) {
		if !outFile && !outDir {
			violations = append(violations, MsgWatchRequiresOutput)
		}
		if !hasInputs {
			violations = append(violations, MsgWatchRequiresFilenames)
		}
	}
	_, hasFilename := merged[KeyFilename].(string)
	if !outDir && !hasInputs && !hasFilename && configLookupEnabled(merged) {
		violations = append(violations, MsgStdinAmbiguous)
	}
	if raw, ok := merged[KeyWorkers]; ok && raw != nil {
		if _, valid := workerCount(raw); !valid {
			violations = append(violations, fmt.Sprintf(msgWorkersFormat, raw))
		}
	}

	if err := errors.Validation(violations); err != nil {
		return err
	}
	return nil
}

// configLookupEnabled is false only when the lookup option resolves to a
// boolean false ("false" from a config file counts).
func configLookupEnabled(merged map[string]any) bool {
	v, ok := merged[KeyXpilerc]
	if !ok || v == nil {
		return true
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return true
	}
	return b
}

// switchOn reads a boolean option with the same coercion the assembler
// uses, so "false" from a config file is off. Values that are not booleans
// at all fall back to truthy and are rejected during assembly.
func switchOn(v any) bool {
	b, err := cast.ToBoolE(v)
	if err != nil {
		return truthy(v)
	}
	return b
}

// workerCount parses a worker count given as a flag string or a config
// file number. nil means auto.
func workerCount(v any) (*int, bool) {
	if v == nil {
		return nil, true
	}
	if _, isBool := v.(bool); isBool {
		return nil, false
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return nil, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil, false
	}
	n := int(f)
	return &n, true
}
