// Package config loads renumber's settings.
//
// Settings are layered, later layers winning:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. The user file, $XDG_CONFIG_HOME/renumber/config.toml or --config
//  3. RENUMBER_* environment variables (RENUMBER_OUTPUT_FORMAT sets
//     output.format)
//  4. Overrides supplied by the caller, typically command line flags
//
// The merged tree is decoded into Config and validated.
package config
