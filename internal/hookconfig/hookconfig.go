// Package hookconfig generates the project-local hooks.json document that
// binds Cursor lifecycle events to the globally installed hook scripts. The
// document carries no user-owned state, so it is regenerated in full on every
// run instead of merged.
package hookconfig

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/trellis-dev/trellis/internal/paths"
)

// DefaultLoopLimit bounds how many times the completion-gated check loop may
// re-dispatch before it is forcibly stopped.
const DefaultLoopLimit = 5

// Hook script names inside the global hooks/ directory.
const (
	sessionStartScript = "session-start.py"
	ralphLoopScript    = "ralph-loop.py"

	checkMatcher = "check"
)

// Binding wires one lifecycle event occurrence to a command.
type Binding struct {
	Command   string `json:"command"`
	Matcher   string `json:"matcher,omitempty"`
	LoopLimit int    `json:"loop_limit,omitempty"`
}

// Document is the hooks.json shape.
type Document struct {
	Version int                  `json:"version"`
	Hooks   map[string][]Binding `json:"hooks"`
}

// New builds the activation document for a global installation rooted at
// cursorRoot. Every embedded path is absolute and slash-normalized so the
// document reads the same on every platform.
func New(cursorRoot string, loopLimit int) *Document {
	if loopLimit <= 0 {
		loopLimit = DefaultLoopLimit
	}
	hooksDir := paths.HooksDir(cursorRoot)

	return &Document{
		Version: 1,
		Hooks: map[string][]Binding{
			"sessionStart": {
				{Command: hookCommand(hooksDir, sessionStartScript)},
			},
			"subagentStop": {
				{
					Command:   hookCommand(hooksDir, ralphLoopScript),
					Matcher:   checkMatcher,
					LoopLimit: loopLimit,
				},
			},
		},
	}
}

// Write unconditionally (re)creates hooks.json under the project's .cursor/
// directory. Overwriting is safe: the file is owned by the installer and
// idempotence comes from deterministic regeneration.
func Write(fs afero.Fs, projectRoot, cursorRoot string, loopLimit int) error {
	doc := New(cursorRoot, loopLimit)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling hooks config: %w", err)
	}
	data = append(data, '\n')

	dir := paths.ProjectCursorDir(projectRoot)
	if err := fs.MkdirAll(dir, paths.DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	path := paths.HooksConfigPath(projectRoot)
	if err := afero.WriteFile(fs, path, data, paths.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// hookCommand builds the python invocation for a hook script with a
// forward-slash path, regardless of the host separator.
func hookCommand(hooksDir, script string) string {
	return "python3 " + filepath.ToSlash(filepath.Join(hooksDir, script))
}
