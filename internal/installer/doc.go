// Package installer orchestrates the Trellis install: it materializes the
// template bundle's units into the global Cursor directory, registers the
// context server in mcp.json, and writes the project's hooks.json activation.
// Every step is idempotent or fully regenerative, so re-running a failed
// install is the recovery mechanism; nothing needs a force or clean flag.
package installer
