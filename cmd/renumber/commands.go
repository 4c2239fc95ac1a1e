package renumber

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/renumber/cmd/renumber/commands/genconfig"
	"github.com/arthur-debert/renumber/cmd/renumber/commands/interactive"
	topicscmd "github.com/arthur-debert/renumber/cmd/renumber/commands/topics"
	"github.com/arthur-debert/renumber/cmd/renumber/internal/cli"
	"github.com/arthur-debert/renumber/internal/version"
	"github.com/arthur-debert/renumber/pkg/cobrax/topics"
	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var helpTopics embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		globals cli.Globals
		execute bool
	)

	rootCmd := &cobra.Command{
		Use:     "renumber DIR",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(globals.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return fmt.Errorf(MsgErrNoDirectory)
			}
			return runRename(cmd, &globals, args[0], execute)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Version, version.Commit, version.Date))

	// Global flags
	globals.Register(rootCmd)
	rootCmd.Flags().BoolVarP(&execute, "execute", "x", false, MsgFlagExecute)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(interactive.NewCommand(&globals))
	rootCmd.AddCommand(genconfig.NewCommand(&globals))
	rootCmd.AddCommand(topicscmd.NewCommand())
	rootCmd.AddCommand(newCompletionCmd())

	initTopics(rootCmd)

	return rootCmd
}

// initTopics installs the topic aware help command over the embedded topics
func initTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(helpTopics, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	opts := topics.Options{
		Extensions: []string{".md", ".txt"},
		// Always use Glamour renderer for markdown files
		Renderer: topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, sub, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	if helpCmd, _, err := rootCmd.Find([]string{"help"}); err == nil && helpCmd != rootCmd {
		helpCmd.GroupID = "misc"
		rootCmd.SetHelpCommand(helpCmd)
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
