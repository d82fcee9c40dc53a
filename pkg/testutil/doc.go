// Package testutil provides test environments for xpile components.
//
// A TestEnvironment owns the file system CLI config files are read from and
// isolates the process-wide state a command touches (log file location,
// color detection):
//
//   - EnvMemoryOnly: files live in an afero MemMapFs, paths are absolute
//     paths inside it. Use this for pkg/options tests.
//   - EnvIsolated: files live in a temporary directory on disk. Use this
//     when the code under test opens files through the OS, as the root
//     command does.
package testutil
