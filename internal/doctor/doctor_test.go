package doctor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/trellis-dev/trellis/internal/hookconfig"
	"github.com/trellis-dev/trellis/internal/mcpconfig"
	"github.com/trellis-dev/trellis/internal/paths"
)

const (
	cursorRoot  = "/home/dev/.cursor"
	projectRoot = "/work/project"
)

func setupHealthyInstall(t *testing.T, fs afero.Fs) {
	t.Helper()
	for _, dir := range []string{
		paths.AgentsDir(cursorRoot),
		paths.HooksDir(cursorRoot),
		paths.CommandsDir(cursorRoot),
		paths.ServerBundleDir(cursorRoot),
	} {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := afero.WriteFile(fs, paths.VersionMarkerPath(cursorRoot), []byte("1.0.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := mcpconfig.Register(fs, paths.MCPConfigPath(cursorRoot), "trellis-context", mcpconfig.ServerEntry{
		Command: "python3",
		Args:    []string{cursorRoot + "/mcp-servers/trellis-context/server.py"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := hookconfig.Write(fs, projectRoot, cursorRoot, 0); err != nil {
		t.Fatal(err)
	}
}

func TestCheckHealthyInstall(t *testing.T) {
	fs := afero.NewMemMapFs()
	setupHealthyInstall(t, fs)

	var out bytes.Buffer
	ok, err := Check(fs, &out, cursorRoot, projectRoot)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !ok {
		t.Fatalf("expected healthy install, output:\n%s", out.String())
	}
	if strings.Contains(out.String(), "[MISS]") || strings.Contains(out.String(), "[FAIL]") {
		t.Errorf("unexpected failures:\n%s", out.String())
	}
}

func TestCheckReportsMissingLayout(t *testing.T) {
	fs := afero.NewMemMapFs()

	var out bytes.Buffer
	ok, err := Check(fs, &out, cursorRoot, projectRoot)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if ok {
		t.Fatal("empty filesystem should not pass")
	}
	if !strings.Contains(out.String(), "[MISS]") {
		t.Errorf("expected [MISS] lines:\n%s", out.String())
	}
}

func TestCheckReportsUnregisteredServer(t *testing.T) {
	fs := afero.NewMemMapFs()
	setupHealthyInstall(t, fs)

	// Replace mcp.json with one missing the registration.
	if err := afero.WriteFile(fs, paths.MCPConfigPath(cursorRoot),
		[]byte(`{"mcpServers": {"other": {"command": "x", "args": [], "env": {}}}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	ok, err := Check(fs, &out, cursorRoot, projectRoot)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("missing registration should fail")
	}
	if !strings.Contains(out.String(), "not registered") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestCheckReportsInvalidHooksConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	setupHealthyInstall(t, fs)

	// version must be 1; schema validation should flag this.
	if err := afero.WriteFile(fs, paths.HooksConfigPath(projectRoot),
		[]byte(`{"version": 2, "hooks": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	ok, err := Check(fs, &out, cursorRoot, projectRoot)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("invalid hooks.json should fail")
	}
	if !strings.Contains(out.String(), "[FAIL]") {
		t.Errorf("output:\n%s", out.String())
	}
}
