package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trellis-dev/trellis/internal/branding"
)

// Directory and file name constants for the installed layout.
const (
	CursorDirName   = ".cursor"
	AgentsDirName   = "agents"
	HooksDirName    = "hooks"
	CommandsDirName = "commands"
	ServersDirName  = "mcp-servers"
	ServerBundleID  = "trellis-context"

	MCPConfigFile   = "mcp.json"
	HooksConfigFile = "hooks.json"
	VersionMarker   = ".version"

	TrellisDirName = ".trellis"
)

// Permission constants.
const (
	DirPerm        os.FileMode = 0755
	FilePerm       os.FileMode = 0644
	ExecutablePerm os.FileMode = 0755
)

// CursorRoot returns the user-global Cursor directory.
// It checks the TRELLIS_CURSOR_DIR environment variable first,
// then falls back to ~/.cursor.
func CursorRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("CURSOR_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, CursorDirName), nil
}

// AgentsDir returns the global agents/ directory.
func AgentsDir(cursorRoot string) string {
	return filepath.Join(cursorRoot, AgentsDirName)
}

// HooksDir returns the global hooks/ directory.
func HooksDir(cursorRoot string) string {
	return filepath.Join(cursorRoot, HooksDirName)
}

// CommandsDir returns the global commands/ directory.
func CommandsDir(cursorRoot string) string {
	return filepath.Join(cursorRoot, CommandsDirName)
}

// ServerBundleDir returns the global directory for the context server bundle.
func ServerBundleDir(cursorRoot string) string {
	return filepath.Join(cursorRoot, ServersDirName, ServerBundleID)
}

// MCPConfigPath returns the path to the global mcp.json document.
func MCPConfigPath(cursorRoot string) string {
	return filepath.Join(cursorRoot, MCPConfigFile)
}

// VersionMarkerPath returns the path to the installed-version marker file.
func VersionMarkerPath(cursorRoot string) string {
	return filepath.Join(cursorRoot, VersionMarker)
}

// ProjectCursorDir returns the project-local .cursor/ directory.
func ProjectCursorDir(projectRoot string) string {
	return filepath.Join(projectRoot, CursorDirName)
}

// HooksConfigPath returns the path to the project hooks.json document.
func HooksConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, CursorDirName, HooksConfigFile)
}

// TrellisDir returns the project-local .trellis/ directory.
func TrellisDir(projectRoot string) string {
	return filepath.Join(projectRoot, TrellisDirName)
}

// TemplateRoot returns the template bundle location, or "" when no external
// bundle is configured. It checks the TRELLIS_TEMPLATES environment variable;
// the caller falls back to the embedded bundle when this returns "".
func TemplateRoot() string {
	return os.Getenv(branding.EnvVar("TEMPLATES"))
}

// ProjectRoot returns the project directory: the explicit value when given,
// otherwise the current working directory.
func ProjectRoot(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
