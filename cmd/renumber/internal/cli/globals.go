// Package cli holds the state shared by renumber's commands: the global
// flags and the settings resolved from them and the configuration.
package cli

import (
	"os"

	"github.com/arthur-debert/renumber/pkg/config"
	"github.com/arthur-debert/renumber/pkg/core"
	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/ui"
	"github.com/arthur-debert/renumber/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// Global flag names
const (
	FlagVerbose = "verbose"
	FlagFormat  = "format"
	FlagConfig  = "config"
	FlagCase    = "case"
)

// Globals are the values of the persistent flags
type Globals struct {
	Verbosity  int
	Format     string
	ConfigPath string
	CaseMode   string
}

// Settings is the resolved configuration of one invocation
type Settings struct {
	Config   *config.Config
	Format   ui.Format
	CaseMode core.CaseMode
}

// Register adds the persistent flags to root
func (g *Globals) Register(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.CountVarP(&g.Verbosity, FlagVerbose, "v", MsgFlagVerbose)
	flags.StringVar(&g.Format, FlagFormat, "", MsgFlagFormat)
	flags.StringVar(&g.ConfigPath, FlagConfig, "", MsgFlagConfig)
	flags.StringVar(&g.CaseMode, FlagCase, "", MsgFlagCase)
}

// Overrides returns the configuration keys set by flags
func (g *Globals) Overrides() map[string]interface{} {
	overrides := map[string]interface{}{}
	if g.Format != "" {
		overrides["output.format"] = g.Format
	}
	if g.CaseMode != "" {
		overrides["filesystem.case"] = g.CaseMode
	}
	return overrides
}

// Resolve loads the configuration with the flag overrides and any extra
// command specific ones applied on top
func (g *Globals) Resolve(extra map[string]interface{}) (*Settings, error) {
	overrides := g.Overrides()
	for k, v := range extra {
		overrides[k] = v
	}

	cfg, err := config.Load(config.LoadOptions{
		Path:      g.ConfigPath,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	mode, err := core.ParseCaseMode(cfg.Filesystem.Case)
	if err != nil {
		return nil, err
	}

	if format == ui.FormatAuto || format == ui.FormatTerminal {
		if err := loadUserStyles(); err != nil {
			return nil, err
		}
	}

	return &Settings{Config: cfg, Format: format, CaseMode: mode}, nil
}

// loadUserStyles replaces the built-in terminal styles with the user's
// styles file when there is one
func loadUserStyles() error {
	path := config.UserStylesPath()
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := styles.LoadStyles(path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "invalid styles file %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return nil
}
