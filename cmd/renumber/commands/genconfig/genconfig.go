package genconfig

import (
	"fmt"

	"github.com/arthur-debert/renumber/cmd/renumber/internal/cli"
	"github.com/arthur-debert/renumber/pkg/config"
	"github.com/spf13/cobra"
)

// NewCommand creates the gen-config command
func NewCommand(globals *cli.Globals) *cobra.Command {
	var write, force, effective bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if effective {
				settings, err := globals.Resolve(nil)
				if err != nil {
					return err
				}
				content, err := config.Marshal(settings.Config)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, content)
				return err
			}

			if !write {
				_, err := fmt.Fprint(out, config.GenerateConfigContent())
				return err
			}

			path := globals.ConfigPath
			if path == "" {
				path = config.UserConfigPath()
			}
			if err := config.WriteConfigFile(path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, MsgWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	cmd.MarkFlagsMutuallyExclusive("write", "effective")

	return cmd
}
