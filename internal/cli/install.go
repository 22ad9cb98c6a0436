package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/trellis-dev/trellis/internal/config"
	"github.com/trellis-dev/trellis/internal/installer"
	"github.com/trellis-dev/trellis/internal/logging"
	"github.com/trellis-dev/trellis/internal/paths"
	"github.com/trellis-dev/trellis/internal/templates"
)

var (
	installProject     string
	installTemplates   string
	installCursorDir   string
	installSkipProject bool
)

func init() {
	installCmd.Flags().StringVar(&installProject, "project", "", "Project directory (default: current directory)")
	installCmd.Flags().StringVar(&installTemplates, "templates", "", "Template bundle directory (default: embedded bundle)")
	installCmd.Flags().StringVar(&installCursorDir, "cursor-dir", "", "Global Cursor directory (default: ~/.cursor)")
	installCmd.Flags().BoolVar(&installSkipProject, "skip-project", false, "Install the global scope only")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the Trellis workflow for Cursor",
	Long: `Install the Trellis workflow.

Copies agents, hooks, commands, and the context MCP server into the global
Cursor directory, registers the server in mcp.json, and writes the project's
hooks.json activation. Re-running is always safe: existing files are never
overwritten, and the activation file is regenerated deterministically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := afero.NewOsFs()

		cursorRoot := installCursorDir
		if cursorRoot == "" {
			var err error
			cursorRoot, err = paths.CursorRoot()
			if err != nil {
				return err
			}
		}

		projectRoot, err := paths.ProjectRoot(installProject)
		if err != nil {
			return err
		}

		templateRoot, cleanup, err := resolveTemplateRoot(fs)
		if err != nil {
			return err
		}
		if cleanup != nil {
			defer cleanup()
		}

		logging.Debug().
			Str("cursor_root", cursorRoot).
			Str("project_root", projectRoot).
			Str("template_root", templateRoot).
			Msg("starting install")

		fmt.Printf("Installing Trellis to %s\n", cursorRoot)

		in := installer.New(fs, os.Stdout)
		opts := installer.Options{
			CursorRoot:   cursorRoot,
			ProjectRoot:  projectRoot,
			TemplateRoot: templateRoot,
			LoopLimit:    config.GetInt(config.KeyLoopLimit),
			SkipProject:  installSkipProject,
		}
		if err := in.Run(opts); err != nil {
			return err
		}

		fmt.Println("\nInstall complete.")
		return nil
	},
}

// resolveTemplateRoot picks the template bundle: the --templates flag, then
// the TRELLIS_TEMPLATES environment variable, then the configured path, and
// finally the embedded bundle staged to a throwaway directory.
func resolveTemplateRoot(fs afero.Fs) (string, func(), error) {
	if installTemplates != "" {
		return installTemplates, nil, nil
	}
	if env := paths.TemplateRoot(); env != "" {
		return env, nil, nil
	}
	if configured := config.Get(config.KeyTemplatesPath); configured != "" {
		return configured, nil, nil
	}

	staging, err := os.MkdirTemp("", "trellis-templates-")
	if err != nil {
		return "", nil, fmt.Errorf("creating staging directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(staging) }

	root, err := templates.Stage(fs, staging)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	return root, cleanup, nil
}
