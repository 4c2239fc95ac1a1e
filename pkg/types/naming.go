package types

import "fmt"

// NamingMode selects how target names are generated
type NamingMode int

const (
	// ModeSequential names files 1, 2, 3... keeping the extension
	ModeSequential NamingMode = iota
	// ModePattern substitutes the number into a user supplied pattern
	ModePattern
)

// String returns the string representation of the mode
func (m NamingMode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModePattern:
		return "pattern"
	default:
		return fmt.Sprintf("NamingMode(%d)", int(m))
	}
}

// MarshalText renders the mode by name in JSON output
func (m NamingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// NamingConfig describes how target names are generated.
//
// In ModeSequential, Pattern is ignored and numbering always starts at 1.
// In ModePattern, the effective number for the file at 1-based index i is
// i + StartNumber - 1.
type NamingConfig struct {
	Mode        NamingMode `json:"mode"`
	Pattern     string     `json:"pattern,omitempty"`
	StartNumber int        `json:"startNumber"`
}

// SequentialNaming returns the naming used by the command line surface
func SequentialNaming() NamingConfig {
	return NamingConfig{Mode: ModeSequential, StartNumber: 1}
}

// PatternNaming returns a pattern naming configuration
func PatternNaming(pattern string, start int) NamingConfig {
	return NamingConfig{Mode: ModePattern, Pattern: pattern, StartNumber: start}
}

// EffectiveNumber returns the number injected into the name of the file
// at the given 1-based index.
func (c NamingConfig) EffectiveNumber(index int) int {
	if c.Mode == ModeSequential {
		return index
	}
	return index + c.StartNumber - 1
}
