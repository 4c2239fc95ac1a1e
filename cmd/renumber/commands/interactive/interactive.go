package interactive

import (
	"os"

	"github.com/arthur-debert/renumber/cmd/renumber/internal/cli"
	"github.com/arthur-debert/renumber/pkg/errors"
	session "github.com/arthur-debert/renumber/pkg/interactive"
	"github.com/arthur-debert/renumber/pkg/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewCommand creates the interactive command
func NewCommand(globals *cli.Globals) *cobra.Command {
	var (
		pattern string
		start   int
	)

	cmd := &cobra.Command{
		Use:     "interactive [DIR]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return errors.New(errors.ErrInvalidInput, MsgErrNoTerminal)
			}

			extra := map[string]interface{}{}
			if cmd.Flags().Changed("pattern") {
				extra["interactive.pattern"] = pattern
			}
			if cmd.Flags().Changed("start") {
				extra["interactive.start"] = start
			}
			settings, err := globals.Resolve(extra)
			if err != nil {
				return err
			}

			var dir string
			if len(args) > 0 {
				dir = args[0]
			}
			s := session.NewSession(session.Options{
				Directory:   dir,
				Pattern:     settings.Config.Interactive.Pattern,
				StartNumber: settings.Config.Interactive.Start,
				CaseMode:    settings.CaseMode,
			})

			format := settings.Format
			if format == ui.FormatJSON {
				format = ui.FormatAuto
			}
			r, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return session.Run(s, session.PtermPrompter{}, cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", MsgFlagPattern)
	cmd.Flags().IntVarP(&start, "start", "s", 0, MsgFlagStart)

	return cmd
}
