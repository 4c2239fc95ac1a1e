// Package planner turns a sorted file listing into a rename plan and
// checks the plan before anything on disk is touched.
//
// Build pairs each file with the name the naming configuration assigns to
// its position. Validate then runs two passes in order: every target is
// checked for illegal characters, then targets are compared with each
// other in plan order so the first duplicate is reported. Validation only
// looks at the plan itself. Targets that happen to match files already in
// the directory are the executor's concern, since such a file may be a
// source that is renamed away earlier in the same plan.
package planner
