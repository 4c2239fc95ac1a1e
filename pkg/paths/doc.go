// Package paths normalizes the directory paths users type.
//
// Shells expand ~ in command arguments but an interactive text prompt
// does not, so directories entered in a session go through Normalize
// before they reach the planner.
package paths
