// Package filesystem provides filesystem implementations for renumber.
//
// This package contains implementations of the types.FS interface backed by
// afero: the OS filesystem for real runs and in-memory filesystems for
// tests. It also probes whether a directory lives on a case-insensitive
// filesystem.
package filesystem
