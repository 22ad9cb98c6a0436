package mcpconfig

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/trellis-dev/trellis/internal/paths"
)

// ServerEntry describes one registered MCP server.
type ServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// Document is the full mcp.json shape. Both the top-level keys and the
// individual server entries are held as raw JSON so that everything this
// installer did not write survives a read-modify-write untouched.
type Document struct {
	servers map[string]json.RawMessage
	raw     map[string]json.RawMessage
}

const serversKey = "mcpServers"

// Load reads the document at path. A missing file and a file that fails to
// parse both yield an empty document: a corrupt config is treated as absent.
func Load(fs afero.Fs, path string) *Document {
	doc := &Document{
		servers: map[string]json.RawMessage{},
		raw:     map[string]json.RawMessage{},
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return doc
	}

	// Tolerate comments and trailing commas in hand-edited files.
	data = jsonc.ToJSON(data)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return doc
	}

	servers := map[string]json.RawMessage{}
	if rawServers, ok := raw[serversKey]; ok {
		if err := json.Unmarshal(rawServers, &servers); err != nil {
			return doc
		}
	}

	doc.raw = raw
	doc.servers = servers
	return doc
}

// Has reports whether a server with the given name is registered.
func (d *Document) Has(name string) bool {
	_, ok := d.servers[name]
	return ok
}

// Names returns the registered server names.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.servers))
	for name := range d.servers {
		names = append(names, name)
	}
	return names
}

// Entry decodes the entry registered under name.
func (d *Document) Entry(name string) (ServerEntry, bool) {
	raw, ok := d.servers[name]
	if !ok {
		return ServerEntry{}, false
	}
	var entry ServerEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return ServerEntry{}, false
	}
	return entry, true
}

// Save serializes the whole document and rewrites the file in full.
func (d *Document) Save(fs afero.Fs, path string) error {
	rawServers, err := json.Marshal(d.servers)
	if err != nil {
		return fmt.Errorf("marshaling server entries: %w", err)
	}
	d.raw[serversKey] = rawServers

	data, err := json.MarshalIndent(d.raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling mcp config: %w", err)
	}
	data = append(data, '\n')

	if err := fs.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fs, path, data, paths.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Register inserts entry under name unless an entry with that name already
// exists; existing entries, including hand-edited ones, are authoritative.
// Returns true when the document was modified and written.
func Register(fs afero.Fs, path, name string, entry ServerEntry) (bool, error) {
	doc := Load(fs, path)
	if doc.Has(name) {
		return false, nil
	}

	// Embedded paths must stay portable regardless of host convention.
	entry.Args = normalizeArgs(entry.Args)
	if entry.Env == nil {
		entry.Env = map[string]string{}
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return false, fmt.Errorf("marshaling entry %s: %w", name, err)
	}
	doc.servers[name] = raw

	if err := doc.Save(fs, path); err != nil {
		return false, err
	}
	return true, nil
}

// normalizeArgs rewrites path-like args to forward slashes.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = filepath.ToSlash(a)
	}
	return out
}
