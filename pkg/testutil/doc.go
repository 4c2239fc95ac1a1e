// Package testutil provides utilities for testing renumber components.
//
// Key components:
//   - NewTestFS: in-memory afero filesystem implementing types.FS
//   - CaseInsensitiveFS: wrapper resolving names case-insensitively, the
//     way macOS and Windows volumes do by default
//   - FaultyFS: wrapper injecting rename failures for partial-failure tests
//   - Directory helpers to populate and inspect a test directory
//
// All test data should be defined inline; each test builds its own
// filesystem.
package testutil
