package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/trellis-dev/trellis/internal/doctor"
	"github.com/trellis-dev/trellis/internal/paths"
)

var doctorProject string

func init() {
	doctorCmd.Flags().StringVar(&doctorProject, "project", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of the Trellis installation",
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := afero.NewOsFs()

		cursorRoot, err := paths.CursorRoot()
		if err != nil {
			return err
		}
		projectRoot, err := paths.ProjectRoot(doctorProject)
		if err != nil {
			return err
		}

		ok, err := doctor.Check(fs, os.Stdout, cursorRoot, projectRoot)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("installation has problems; run 'trellis install' to repair")
		}

		fmt.Println("\nInstallation looks healthy.")
		return nil
	},
}
