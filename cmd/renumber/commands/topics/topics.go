package topics

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommand creates the topics command, a shortcut for 'help topics'
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd == cmd.Root() {
				return fmt.Errorf("help command not found")
			}
			switch {
			case helpCmd.RunE != nil:
				return helpCmd.RunE(helpCmd, []string{"topics"})
			case helpCmd.Run != nil:
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}
