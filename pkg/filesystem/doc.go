// Package filesystem provides the read-only file system seam used when
// loading CLI configuration files.
//
// Production code reads through the OS file system; tests swap in an
// in-memory afero file system.
package filesystem
