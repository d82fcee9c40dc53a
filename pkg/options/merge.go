package options

// Merge resolves every option key from three sources, highest priority
// first: a value supplied explicitly on the command line, a value from the
// CLI config file, then the schema default carried by raw.
//
//	merged[k] = explicit[k] if k is explicit
//	          = config[k]   if k is in the config file
//	          = default[k]  otherwise
//
// configFile may be nil. Neither input is modified.
func Merge(raw *RawOptionSet, configFile map[string]any) map[string]any {
	keys := make(map[string]struct{}, len(raw.Values)+len(configFile))
	for k := range raw.Values {
		keys[k] = struct{}{}
	}
	for k := range configFile {
		keys[k] = struct{}{}
	}

	merged := make(map[string]any, len(keys))
	for k := range keys {
		if raw.IsExplicit(k) {
			merged[k] = raw.Values[k]
			continue
		}
		if v, ok := configFile[k]; ok {
			merged[k] = v
			continue
		}
		if v, ok := raw.Values[k]; ok {
			merged[k] = v
		}
	}
	return merged
}
