// Package mcpconfig reads and amends the global mcp.json document that
// registers MCP servers with Cursor. The document is user-owned shared state:
// entries this installer did not create must survive every merge unchanged,
// and a corrupt or missing file degrades to an empty document rather than an
// error. Comments in hand-edited files are tolerated on read (JSONC), though
// a rewrite emits plain JSON.
package mcpconfig
