package installer

import "github.com/trellis-dev/trellis/internal/paths"

// Policy selects how a unit treats files already present at the destination.
type Policy int

const (
	// SkipExisting never overwrites a destination file that already exists.
	// This is the default for every unit: re-running install must not
	// clobber a user's local customization, even when the template changed.
	SkipExisting Policy = iota

	// AlwaysOverwrite rewrites destination files unconditionally. Reserved
	// for documents the installer owns outright.
	AlwaysOverwrite
)

// Unit is one installable template subtree: where it comes from in the
// bundle, where it lands under the global root, and the file whose presence
// at the destination marks the unit as already installed.
type Unit struct {
	Name        string
	Subpath     string
	DestSubpath string
	Marker      string
	Policy      Policy
	Flat        bool
}

// units are the fixed install units, in dependency order. The context server
// bundle goes last; its registration in mcp.json depends on it being on disk.
var units = []Unit{
	{
		Name:        "agents",
		Subpath:     paths.AgentsDirName,
		DestSubpath: paths.AgentsDirName,
		Marker:      "implement.md",
		Policy:      SkipExisting,
	},
	{
		Name:        "hooks",
		Subpath:     paths.HooksDirName,
		DestSubpath: paths.HooksDirName,
		Marker:      "session-start.py",
		Policy:      SkipExisting,
	},
	{
		Name:        "commands",
		Subpath:     paths.CommandsDirName,
		DestSubpath: paths.CommandsDirName,
		Marker:      "start-task.md",
		Policy:      SkipExisting,
	},
	{
		Name:        "context-server",
		Subpath:     paths.ServersDirName + "/" + paths.ServerBundleID,
		DestSubpath: paths.ServersDirName + "/" + paths.ServerBundleID,
		Marker:      "server.py",
		Policy:      SkipExisting,
		Flat:        true,
	},
}

// Units returns the fixed install units in order.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}
