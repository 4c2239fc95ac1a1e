package config

import (
	"strings"

	"github.com/arthur-debert/renumber/pkg/errors"
)

// Config is the complete renumber configuration
type Config struct {
	Interactive Interactive `koanf:"interactive" toml:"interactive"`
	Output      Output      `koanf:"output" toml:"output"`
	Filesystem  Filesystem  `koanf:"filesystem" toml:"filesystem"`
}

// Interactive holds the initial values of an interactive session
type Interactive struct {
	Pattern string `koanf:"pattern" toml:"pattern"`
	Start   int    `koanf:"start" toml:"start"`
}

// Output selects how results are rendered
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Filesystem holds filesystem behaviour settings
type Filesystem struct {
	Case string `koanf:"case" toml:"case"`
}

var (
	validFormats   = []string{"auto", "term", "text", "json"}
	validCaseModes = []string{"auto", "sensitive", "insensitive"}
)

// Validate checks that every value is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Interactive.Pattern) == "" {
		return invalid("interactive.pattern", c.Interactive.Pattern, "cannot be empty")
	}
	if c.Interactive.Start < 0 {
		return invalid("interactive.start", c.Interactive.Start, "cannot be negative")
	}
	if !oneOf(c.Output.Format, validFormats) {
		return invalid("output.format", c.Output.Format, "must be one of "+strings.Join(validFormats, ", "))
	}
	if !oneOf(c.Filesystem.Case, validCaseModes) {
		return invalid("filesystem.case", c.Filesystem.Case, "must be one of "+strings.Join(validCaseModes, ", "))
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func invalid(key string, value interface{}, reason string) error {
	return errors.Newf(errors.ErrConfigParse, "invalid value %v for %s: %s", value, key, reason).
		WithDetail("key", key)
}
