// Package options resolves xpile's command-line flags, CLI configuration
// file and -C overrides into two read-only snapshots: CompilerOptions for
// the compiler library and CliOptions for the file-processing layer.
//
// Resolution runs as a fixed pipeline:
//
//	Parse/Collect     flags -> RawOptionSet (values + explicit-key set) and positionals
//	ConfigLoader      optional --cli-config-file, keys normalized to camel case
//	Merge             explicit flag > config file > schema default, per key
//	ApplyOverrides    -C key.path=value onto the compiler options tree
//	Validate          every cross-flag rule, reported together
//	Assemble*         typed CompilerOptions / CliOptions
//
// Each stage either hands its output to the next or stops with an
// *errors.XpileError whose code tells the caller how to report it.
package options
