// Package workspace bootstraps a developer's journal workspace inside a
// project's .trellis/ directory: the .developer identity file and the
// per-developer workspace folder with its journal and index seeds.
package workspace

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/trellis-dev/trellis/internal/paths"
)

const (
	developerFile = ".developer"
	workspaceDir  = "workspace"
	journalFile   = "journal-1.md"
	indexFile     = "index.md"
)

// FindRoot walks upward from start looking for a directory containing
// .trellis/. Returns start itself when no ancestor has one.
func FindRoot(fs afero.Fs, start string) string {
	current, err := filepath.Abs(start)
	if err != nil {
		return start
	}
	for {
		if ok, _ := afero.DirExists(fs, filepath.Join(current, paths.TrellisDirName)); ok {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return start
		}
		current = parent
	}
}

// CurrentDeveloper reads the developer name recorded in .trellis/.developer.
// Returns "" when the file is absent or carries no name.
func CurrentDeveloper(fs afero.Fs, root string) string {
	path := filepath.Join(paths.TrellisDir(root), developerFile)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "name=") {
			return strings.TrimSpace(strings.TrimPrefix(line, "name="))
		}
	}
	return ""
}

// Init records the developer identity and creates the workspace folder with
// its journal and index seeds. Seed files that already exist are kept.
func Init(fs afero.Fs, root, name string, now time.Time) error {
	trellisDir := paths.TrellisDir(root)
	devPath := filepath.Join(trellisDir, developerFile)
	wsDir := filepath.Join(trellisDir, workspaceDir, name)

	if err := fs.MkdirAll(wsDir, paths.DirPerm); err != nil {
		return fmt.Errorf("creating workspace %s: %w", wsDir, err)
	}

	devContent := fmt.Sprintf("name=%s\ninitialized_at=%s\n", name, now.Format(time.RFC3339))
	if err := afero.WriteFile(fs, devPath, []byte(devContent), paths.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", devPath, err)
	}

	journal := fmt.Sprintf("# Journal - %s (Part 1)\n\n> AI development session journal\n> Started: %s\n\n---\n\n",
		name, now.Format("2006-01-02"))
	if err := seedFile(fs, filepath.Join(wsDir, journalFile), journal); err != nil {
		return err
	}

	index := fmt.Sprintf(`# Workspace Index - %s

> Journal tracking for AI development sessions.

---

## Current Status

- **Active File**: %s
- **Total Sessions**: 0
`, name, "`"+journalFile+"`")
	return seedFile(fs, filepath.Join(wsDir, indexFile), index)
}

// seedFile writes content to path only when path does not exist yet.
func seedFile(fs afero.Fs, path, content string) error {
	if ok, _ := afero.Exists(fs, path); ok {
		return nil
	}
	if err := afero.WriteFile(fs, path, []byte(content), paths.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
