package installer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/trellis-dev/trellis/internal/copier"
	"github.com/trellis-dev/trellis/internal/hookconfig"
	"github.com/trellis-dev/trellis/internal/logging"
	"github.com/trellis-dev/trellis/internal/manifest"
	"github.com/trellis-dev/trellis/internal/mcpconfig"
	"github.com/trellis-dev/trellis/internal/paths"
	"github.com/trellis-dev/trellis/internal/platform"
)

// Options configures one install run. All roots are absolute paths resolved
// by the caller; the installer itself never consults the environment.
type Options struct {
	CursorRoot   string
	ProjectRoot  string
	TemplateRoot string
	LoopLimit    int
	SkipProject  bool
}

// Installer runs the install sequence against an injected filesystem.
type Installer struct {
	FS  afero.Fs
	Out io.Writer
}

// New returns an Installer over fs that reports progress to out.
func New(fs afero.Fs, out io.Writer) *Installer {
	return &Installer{FS: fs, Out: out}
}

// Run executes the full orchestration in fixed order: global root setup,
// the scoped unit installers, context server registration, and finally the
// project activation. It aborts on the first fatal error; everything written
// up to that point is safe to leave in place and re-run over.
func (in *Installer) Run(opts Options) error {
	if err := in.FS.MkdirAll(opts.CursorRoot, paths.DirPerm); err != nil {
		return fmt.Errorf("creating global root %s: %w", opts.CursorRoot, err)
	}
	if !opts.SkipProject {
		if err := in.FS.MkdirAll(opts.ProjectRoot, paths.DirPerm); err != nil {
			return fmt.Errorf("creating project root %s: %w", opts.ProjectRoot, err)
		}
	}

	m, err := manifest.Load(in.FS, opts.TemplateRoot)
	if err != nil {
		return err
	}

	if installed := manifest.InstalledVersion(in.FS, opts.CursorRoot); installed != "" {
		if newer, err := manifest.IsNewer(m.Version, installed); err == nil && newer {
			fmt.Fprintf(in.Out, "  [NOTE] bundle %s is newer than installed %s; existing files are kept\n",
				m.Version, installed)
		}
	}

	for _, unit := range Units() {
		if err := in.installUnit(unit, opts); err != nil {
			return err
		}
	}

	if err := in.markHooksExecutable(opts.CursorRoot); err != nil {
		return err
	}

	if err := in.registerServer(m, opts); err != nil {
		return err
	}

	if err := manifest.WriteInstalledVersion(in.FS, opts.CursorRoot, m.Version); err != nil {
		return err
	}

	if !opts.SkipProject {
		if err := hookconfig.Write(in.FS, opts.ProjectRoot, opts.CursorRoot, opts.LoopLimit); err != nil {
			return err
		}
		fmt.Fprintf(in.Out, "  [ OK ] wrote %s\n", paths.HooksConfigPath(opts.ProjectRoot))
	}

	return nil
}

// installUnit runs one scoped installer: absent template subpath is a no-op,
// a present destination marker short-circuits (first-install-only), and
// otherwise the unit is copied with its overwrite policy.
func (in *Installer) installUnit(unit Unit, opts Options) error {
	src := filepath.Join(opts.TemplateRoot, filepath.FromSlash(unit.Subpath))
	dst := filepath.Join(opts.CursorRoot, filepath.FromSlash(unit.DestSubpath))

	if !copier.IsDir(in.FS, src) {
		logging.Debug().Str("unit", unit.Name).Str("src", src).Msg("template subpath absent, skipping unit")
		fmt.Fprintf(in.Out, "  [SKIP] %s: not in template bundle\n", unit.Name)
		return nil
	}

	if unit.Marker != "" && copier.Exists(in.FS, filepath.Join(dst, unit.Marker)) {
		logging.Debug().Str("unit", unit.Name).Msg("destination marker present, already installed")
		fmt.Fprintf(in.Out, "  [SKIP] %s: already installed\n", unit.Name)
		return nil
	}

	skipExisting := unit.Policy == SkipExisting
	var err error
	if unit.Flat {
		err = copier.CopyFlat(in.FS, src, dst, skipExisting)
	} else {
		err = copier.CopyTree(in.FS, src, dst, skipExisting)
	}
	if err != nil {
		return fmt.Errorf("installing %s: %w", unit.Name, err)
	}

	fmt.Fprintf(in.Out, "  [ OK ] installed %s -> %s\n", unit.Name, dst)
	return nil
}

// markHooksExecutable makes installed hook scripts runnable. Hooks are
// invoked directly by the editor, so they need the execute bit on Unix.
func (in *Installer) markHooksExecutable(cursorRoot string) error {
	hooksDir := paths.HooksDir(cursorRoot)
	entries, err := afero.ReadDir(in.FS, hooksDir)
	if err != nil {
		return nil // no hooks installed
	}
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		path := filepath.Join(hooksDir, entry.Name())
		if err := platform.Chmod(in.FS, path, paths.ExecutablePerm); err != nil {
			return fmt.Errorf("marking %s executable: %w", path, err)
		}
	}
	return nil
}

// registerServer merges the context server entry into the global mcp.json.
// A pre-existing entry under the same name wins, whatever its contents.
func (in *Installer) registerServer(m *manifest.BundleManifest, opts Options) error {
	env, err := m.ServerEnv(in.FS, opts.TemplateRoot)
	if err != nil {
		return err
	}

	entry := mcpconfig.ServerEntry{
		Command: m.Server.Command,
		Args:    m.ServerArgs(paths.ServerBundleDir(opts.CursorRoot)),
		Env:     env,
	}

	configPath := paths.MCPConfigPath(opts.CursorRoot)
	added, err := mcpconfig.Register(in.FS, configPath, m.Name, entry)
	if err != nil {
		return fmt.Errorf("registering %s: %w", m.Name, err)
	}

	if added {
		fmt.Fprintf(in.Out, "  [ OK ] registered %s in %s\n", m.Name, configPath)
	} else {
		fmt.Fprintf(in.Out, "  [SKIP] %s already registered\n", m.Name)
	}
	return nil
}
