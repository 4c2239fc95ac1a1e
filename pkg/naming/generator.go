package naming

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/types"
)

// Generator produces target names for one naming configuration. The
// pattern is validated and parsed once, so generating names for a large
// directory does not re-parse the template per file.
type Generator struct {
	config    types.NamingConfig
	prefix    string
	formatter *Formatter
}

// NewGenerator validates cfg and prepares it for name generation
func NewGenerator(cfg types.NamingConfig) (*Generator, error) {
	if cfg.StartNumber < 0 {
		return nil, errors.Newf(errors.ErrInvalidConfig, "start number cannot be negative: %d", cfg.StartNumber).
			WithDetail("startNumber", cfg.StartNumber)
	}

	g := &Generator{config: cfg}

	switch cfg.Mode {
	case types.ModeSequential:
		return g, nil
	case types.ModePattern:
		pattern := strings.TrimSpace(cfg.Pattern)
		if pattern == "" {
			return nil, errors.New(errors.ErrInvalidConfig, "pattern cannot be empty").
				WithDetail(errors.DetailPattern, cfg.Pattern)
		}
		g.config.Pattern = pattern
		if IsTemplate(pattern) {
			f, err := ParseFormatter(pattern)
			if err != nil {
				return nil, err
			}
			g.formatter = f
		} else {
			g.prefix = pattern
		}
		return g, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidConfig, "unknown naming mode %s", cfg.Mode)
	}
}

// IsTemplate reports whether pattern is treated as a format template
// rather than a literal prefix
func IsTemplate(pattern string) bool {
	return strings.Contains(pattern, "{") && strings.Contains(pattern, "}")
}

// Config returns the normalised configuration
func (g *Generator) Config() types.NamingConfig {
	return g.config
}

// Stem returns the generated stem for the file at the 1-based index
func (g *Generator) Stem(index int) string {
	n := g.config.EffectiveNumber(index)
	switch {
	case g.formatter != nil:
		return g.formatter.Format(n)
	case g.config.Mode == types.ModePattern:
		return g.prefix + strconv.Itoa(n)
	default:
		return strconv.Itoa(n)
	}
}

// Name returns the target name for the file at the 1-based index with the
// given extension. The stem is checked for illegal characters.
func (g *Generator) Name(index int, ext string) (string, error) {
	if index < 1 {
		return "", errors.Newf(errors.ErrInvalidInput, "file index must start at 1, got %d", index).
			WithDetail(errors.DetailIndex, index)
	}
	stem := g.Stem(index)
	if err := CheckName(stem); err != nil {
		return "", err
	}
	return stem + ext, nil
}

// ComputeTargetName returns the target name for a single file. Callers
// generating many names should build a Generator once instead.
func ComputeTargetName(index int, ext string, cfg types.NamingConfig) (string, error) {
	g, err := NewGenerator(cfg)
	if err != nil {
		return "", err
	}
	return g.Name(index, ext)
}
