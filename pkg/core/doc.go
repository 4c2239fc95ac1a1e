// Package core implements the rename pipeline shared by every surface.
//
// # Flow
//
// Both entry points run the same steps against a directory:
//
//  1. List the regular files of the directory in byte order
//  2. Build the plan by naming each file after its position
//  3. Validate the plan (illegal characters, then collisions)
//  4. Apply the renames in plan order (Apply only)
//
// Preview stops after step 3 and touches nothing. Apply always recomputes
// the plan from the current directory contents instead of replaying an
// earlier preview, so a preview shown to the user and the renames applied
// afterwards can differ if the directory changed in between.
//
// # Case sensitivity
//
// Whether two targets differing only by case collide depends on the
// filesystem holding the directory. CaseAuto probes the directory and
// falls back to the platform default when the probe is inconclusive.
package core
