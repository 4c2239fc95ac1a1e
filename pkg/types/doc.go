// Package types defines the core types and interfaces used throughout renumber.
// This includes the FS capability the planner and executor call, the naming
// configuration, and the plan and execution result structures.
package types
