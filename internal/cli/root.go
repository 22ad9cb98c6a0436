package cli

import (
	"github.com/spf13/cobra"

	"github.com/trellis-dev/trellis/internal/branding"
	"github.com/trellis-dev/trellis/internal/config"
	"github.com/trellis-dev/trellis/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` provisions a local AI-assisted development environment:
it installs agent prompts, lifecycle hooks, slash commands, and the context
MCP server into the user-global Cursor directory, and activates them for the
current project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		level := logging.ParseLevel(config.Get(config.KeyLogLevel))
		if verbose {
			level = logging.DebugLevel
		}
		logging.Init(logging.Config{Level: level, Pretty: true})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
