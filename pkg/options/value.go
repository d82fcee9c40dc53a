package options

import "encoding/json"

// ParseLoose interprets s as a JSON value when it is one and returns s
// unchanged otherwise. "true" becomes a bool, "2" a float64, "null" nil and
// "inline" stays a string.
func ParseLoose(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// looseValue is a pflag.Value that stores the ParseLoose form of its input.
type looseValue struct {
	raw   string
	value any
}

func (v *looseValue) String() string { return v.raw }

func (v *looseValue) Set(s string) error {
	v.raw = s
	v.value = ParseLoose(s)
	return nil
}

func (v *looseValue) Type() string { return "json" }

// truthy follows the loose truthiness the CLI has always used for option
// presence: nil, false, "", and 0 are unset, everything else is set.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}
