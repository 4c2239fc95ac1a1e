// Package executor applies a validated rename plan to the filesystem.
//
// Entries are processed in plan order. Execution stops at the first entry
// whose destination is occupied by another file or whose rename fails.
// Renames applied before that point stay applied; the returned
// ExecutionResult records them together with the entry that stopped the
// run.
package executor
