package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/trellis-dev/trellis/internal/workspace"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <developer-name>",
	Short: "Initialize a developer workspace in this project",
	Long: `Initialize a developer workspace.

Creates .trellis/.developer and .trellis/workspace/<name>/ with journal seed
files. Safe to run in any subdirectory of the project: the nearest ancestor
containing .trellis/ is used as the root.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		fs := afero.NewOsFs()

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		root := workspace.FindRoot(fs, cwd)

		if existing := workspace.CurrentDeveloper(fs, root); existing != "" {
			fmt.Printf("Developer already initialized: %s\n", existing)
			return nil
		}

		if err := workspace.Init(fs, root, name, time.Now()); err != nil {
			return fmt.Errorf("initializing developer workspace: %w", err)
		}

		fmt.Printf("Developer initialized: %s\n", name)
		fmt.Printf("  Workspace: %s/.trellis/workspace/%s\n", root, name)
		return nil
	},
}
