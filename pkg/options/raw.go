package options

import "sort"

// RawOptionSet holds parsed option values keyed by option name, plus the
// set of keys the user supplied explicitly. Keys absent from Explicit carry
// their schema default.
type RawOptionSet struct {
	Values   map[string]any
	Explicit map[string]bool
}

// NewRawOptionSet returns an empty set.
func NewRawOptionSet() *RawOptionSet {
	return &RawOptionSet{
		Values:   make(map[string]any),
		Explicit: make(map[string]bool),
	}
}

// Set records a value and its provenance.
func (r *RawOptionSet) Set(key string, value any, explicit bool) {
	r.Values[key] = value
	if explicit {
		r.Explicit[key] = true
	} else {
		delete(r.Explicit, key)
	}
}

// Get returns the value stored for key.
func (r *RawOptionSet) Get(key string) (any, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// IsExplicit reports whether key was supplied on the command line.
func (r *RawOptionSet) IsExplicit(key string) bool {
	return r.Explicit[key]
}

// ExplicitKeys returns the explicitly supplied keys, sorted.
func (r *RawOptionSet) ExplicitKeys() []string {
	keys := make([]string, 0, len(r.Explicit))
	for k := range r.Explicit {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
