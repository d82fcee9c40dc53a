package options

import (
	"sort"
	"strings"
	"unicode"
)

// CamelCase turns a hyphenated name into the option key form: every "-x"
// becomes "X" ("source-maps" -> "sourceMaps"). A trailing hyphen is kept.
func CamelCase(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '-' && i+1 < len(runes) {
			b.WriteRune(unicode.ToUpper(runes[i+1]))
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// NormalizeKeys returns a copy of m with every top-level key in camel case.
// Nested values are shared, not rewritten. When a hyphenated key and its
// camel-case spelling are both present the camel-case entry wins.
func NormalizeKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	var hyphenated, exact []string
	for k := range m {
		if CamelCase(k) == k {
			exact = append(exact, k)
		} else {
			hyphenated = append(hyphenated, k)
		}
	}
	sort.Strings(hyphenated)
	for _, k := range hyphenated {
		out[CamelCase(k)] = m[k]
	}
	for _, k := range exact {
		out[k] = m[k]
	}
	return out
}
