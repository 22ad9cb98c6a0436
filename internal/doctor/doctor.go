// Package doctor validates an existing Trellis installation: the global
// directory layout, the mcp.json registration, and the project's hooks.json
// against its JSON Schema. Checks report [ OK ]/[MISS]/[FAIL] lines and never
// mutate anything.
package doctor

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/trellis-dev/trellis/internal/copier"
	"github.com/trellis-dev/trellis/internal/manifest"
	"github.com/trellis-dev/trellis/internal/mcpconfig"
	"github.com/trellis-dev/trellis/internal/paths"
)

//go:embed schema/hooks.schema.json
var hooksSchemaBytes []byte

var (
	hooksSchema     *jsonschema.Schema
	hooksSchemaOnce sync.Once
	hooksSchemaErr  error
)

// Check runs all health checks and reports to w. The returned error covers
// only internal failures (e.g., a schema that will not compile); findings are
// reported as lines, and ok is false when any check failed.
func Check(fs afero.Fs, w io.Writer, cursorRoot, projectRoot string) (ok bool, err error) {
	ok = true

	fmt.Fprintln(w, "Global installation:")
	for _, dir := range []string{
		paths.AgentsDir(cursorRoot),
		paths.HooksDir(cursorRoot),
		paths.CommandsDir(cursorRoot),
		paths.ServerBundleDir(cursorRoot),
	} {
		if copier.IsDir(fs, dir) {
			fmt.Fprintf(w, "  [ OK ] %s\n", dir)
		} else {
			fmt.Fprintf(w, "  [MISS] %s\n", dir)
			ok = false
		}
	}

	if v := manifest.InstalledVersion(fs, cursorRoot); v != "" {
		fmt.Fprintf(w, "  [ OK ] installed version %s\n", v)
	} else {
		fmt.Fprintf(w, "  [MISS] no version marker\n")
		ok = false
	}

	if !checkMCPConfig(fs, w, cursorRoot) {
		ok = false
	}

	fmt.Fprintln(w, "Project activation:")
	hooksOK, err := checkHooksConfig(fs, w, projectRoot)
	if err != nil {
		return false, err
	}
	if !hooksOK {
		ok = false
	}

	return ok, nil
}

// checkMCPConfig verifies that mcp.json exists and carries the context
// server registration.
func checkMCPConfig(fs afero.Fs, w io.Writer, cursorRoot string) bool {
	path := paths.MCPConfigPath(cursorRoot)
	if !copier.Exists(fs, path) {
		fmt.Fprintf(w, "  [MISS] %s\n", path)
		return false
	}

	doc := mcpconfig.Load(fs, path)
	if !doc.Has(manifest.DefaultName) {
		fmt.Fprintf(w, "  [FAIL] %s: %s not registered\n", path, manifest.DefaultName)
		return false
	}

	entry, valid := doc.Entry(manifest.DefaultName)
	if !valid || entry.Command == "" {
		fmt.Fprintf(w, "  [FAIL] %s: %s entry is malformed\n", path, manifest.DefaultName)
		return false
	}

	fmt.Fprintf(w, "  [ OK ] %s registers %s\n", path, manifest.DefaultName)
	return true
}

// checkHooksConfig validates the project hooks.json against its schema.
func checkHooksConfig(fs afero.Fs, w io.Writer, projectRoot string) (bool, error) {
	path := paths.HooksConfigPath(projectRoot)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s\n", path)
		return false, nil
	}

	schema, err := getHooksSchema()
	if err != nil {
		return false, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonc.ToJSON(data)))
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: not valid JSON: %v\n", path, err)
		return false, nil
	}

	if err := schema.Validate(inst); err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return false, nil
	}

	fmt.Fprintf(w, "  [ OK ] %s\n", path)
	return true, nil
}

func getHooksSchema() (*jsonschema.Schema, error) {
	hooksSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(hooksSchemaBytes))
		if err != nil {
			hooksSchemaErr = fmt.Errorf("unmarshaling hooks schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("hooks.schema.json", doc); err != nil {
			hooksSchemaErr = fmt.Errorf("adding hooks schema resource: %w", err)
			return
		}
		hooksSchema, hooksSchemaErr = c.Compile("hooks.schema.json")
	})
	return hooksSchema, hooksSchemaErr
}
