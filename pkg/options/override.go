package options

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/xpile/pkg/errors"
)

// Directive is one parsed -C override.
type Directive struct {
	Raw   string
	Path  []string
	Value any
}

// ParseDirective splits s at its first "=" into a dotted key path and a
// value. Without "=" the value is true; otherwise it goes through
// ParseLoose.
func ParseDirective(s string) (Directive, error) {
	key, value, found := strings.Cut(s, "=")
	d := Directive{Raw: s, Value: true}
	if found {
		d.Value = ParseLoose(value)
	}
	if key == "" {
		return Directive{}, errors.Newf(errors.ErrOverrideType, "invalid override %q: missing key", s).
			WithDetail(errors.DetailDirective, s)
	}
	d.Path = strings.Split(key, ".")
	for _, seg := range d.Path {
		if seg == "" {
			return Directive{}, errors.Newf(errors.ErrOverrideType, "invalid override %q: empty path segment", s).
				WithDetail(errors.DetailDirective, s)
		}
	}
	return d, nil
}

// Apply assigns the directive's value into tree, creating intermediate
// objects for missing (or null) segments. Walking through any other
// non-object value is an error.
func (d Directive) Apply(tree map[string]any) error {
	node := tree
	last := len(d.Path) - 1
	for i, seg := range d.Path[:last] {
		next, ok := node[seg]
		if !ok || next == nil {
			child := make(map[string]any)
			node[seg] = child
			node = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			at := strings.Join(d.Path[:i+1], ".")
			return errors.Newf(errors.ErrOverrideType,
				"cannot apply override %q: %s is %s, not an object", d.Raw, at, describe(next)).
				WithDetail(errors.DetailDirective, d.Raw).
				WithDetail(errors.DetailPath, at)
		}
		node = child
	}
	node[d.Path[last]] = d.Value
	return nil
}

// ApplyOverrides applies directives to tree left to right, stopping at the
// first one that cannot be parsed or applied.
func ApplyOverrides(tree map[string]any, directives []string) error {
	for _, raw := range directives {
		d, err := ParseDirective(raw)
		if err != nil {
			return err
		}
		if err := d.Apply(tree); err != nil {
			return err
		}
	}
	return nil
}

func describe(v any) string {
	switch t := v.(type) {
	case bool:
		return fmt.Sprintf("the boolean %t", t)
	case string:
		return fmt.Sprintf("the string %q", t)
	case float64, int, int64:
		return fmt.Sprintf("the number %v", t)
	case []any, []string:
		return "an array"
	default:
		return fmt.Sprintf("a %T", t)
	}
}
