package renumber

import (
	"github.com/arthur-debert/renumber/cmd/renumber/internal/cli"
	"github.com/arthur-debert/renumber/pkg/core"
	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/arthur-debert/renumber/pkg/paths"
	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/arthur-debert/renumber/pkg/ui"
	"github.com/spf13/cobra"
)

// runRename previews or applies sequential naming on dir. Failures are
// rendered before being returned so the caller only sets the exit status.
func runRename(cmd *cobra.Command, globals *cli.Globals, dir string, execute bool) error {
	logger := logging.GetLogger(logging.ComponentCLI)

	settings, err := globals.Resolve(nil)
	if err != nil {
		return err
	}

	r, err := ui.NewRenderer(settings.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	dir, err = paths.Normalize(dir)
	if err != nil {
		return cli.Report(cmd, settings.Format, err)
	}

	logger.Info().
		Str("directory", dir).
		Bool("execute", execute).
		Str("case", string(settings.CaseMode)).
		Msg("Renumbering directory")

	if !execute {
		plan, err := core.Preview(core.PreviewOptions{
			Directory: dir,
			Naming:    types.SequentialNaming(),
			CaseMode:  settings.CaseMode,
		})
		if err != nil {
			return cli.Report(cmd, settings.Format, err)
		}
		return r.RenderPlan(plan)
	}

	result, err := core.Apply(core.ApplyOptions{
		Directory: dir,
		Naming:    types.SequentialNaming(),
		CaseMode:  settings.CaseMode,
	})
	if result != nil {
		if rerr := r.RenderExecution(result); rerr != nil {
			return rerr
		}
	}
	if err != nil {
		return cli.Report(cmd, settings.Format, err)
	}
	return nil
}
