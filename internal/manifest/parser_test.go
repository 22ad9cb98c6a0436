package manifest

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func writeBundle(t *testing.T, fs afero.Fs, root, content string) {
	t.Helper()
	if err := fs.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, filepath.Join(root, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingManifestYieldsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("bundle", 0o755); err != nil {
		t.Fatal(err)
	}

	m, err := Load(fs, "bundle")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != DefaultName {
		t.Errorf("name = %q, want %q", m.Name, DefaultName)
	}
	if m.Server.Command != DefaultCommand {
		t.Errorf("command = %q, want %q", m.Server.Command, DefaultCommand)
	}
	if len(m.Server.Args) != 1 || m.Server.Args[0] != DefaultArg {
		t.Errorf("args = %v", m.Server.Args)
	}
}

func TestLoadParsesManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeBundle(t, fs, "bundle", `name: trellis-context
version: 1.2.0
server:
  command: python3
  args:
    - server.py
    - --verbose
  env:
    TRELLIS_MODE: cursor
`)

	m, err := Load(fs, "bundle")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Version != "1.2.0" {
		t.Errorf("version = %q", m.Version)
	}
	if len(m.Server.Args) != 2 {
		t.Errorf("args = %v", m.Server.Args)
	}
	if m.Server.Env["TRELLIS_MODE"] != "cursor" {
		t.Errorf("env = %v", m.Server.Env)
	}
}

func TestLoadRejectsInvalidManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeBundle(t, fs, "bundle", `name: "NOT VALID NAME"
version: not-semver
`)

	if _, err := Load(fs, "bundle"); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestServerArgsResolvesAgainstInstallDir(t *testing.T) {
	m := &BundleManifest{
		Server: ServerSpec{
			Command: "python3",
			Args:    []string{"server.py", "--stdio", "/abs/path.py"},
		},
	}

	args := m.ServerArgs("/home/dev/.cursor/mcp-servers/trellis-context")

	if args[0] != "/home/dev/.cursor/mcp-servers/trellis-context/server.py" {
		t.Errorf("args[0] = %q", args[0])
	}
	if args[1] != "--stdio" {
		t.Errorf("flag arg was rewritten: %q", args[1])
	}
	if args[2] != "/abs/path.py" {
		t.Errorf("absolute arg was rewritten: %q", args[2])
	}
}

func TestServerEnvOverlaysEnvFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeBundle(t, fs, "bundle", `name: trellis-context
version: 1.0.0
server:
  command: python3
  env_file: server.env
  env:
    SHARED: manifest-wins
`)
	if err := afero.WriteFile(fs, "bundle/server.env", []byte("SHARED=file\nFROM_FILE=yes\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(fs, "bundle")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	env, err := m.ServerEnv(fs, "bundle")
	if err != nil {
		t.Fatalf("ServerEnv: %v", err)
	}
	if env["FROM_FILE"] != "yes" {
		t.Errorf("env file value missing: %v", env)
	}
	if env["SHARED"] != "manifest-wins" {
		t.Errorf("manifest env should override env file: %v", env)
	}
}

func TestServerEnvMissingFileIsNotError(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := &BundleManifest{Server: ServerSpec{EnvFile: "absent.env"}}

	env, err := m.ServerEnv(fs, "bundle")
	if err != nil {
		t.Fatalf("ServerEnv: %v", err)
	}
	if len(env) != 0 {
		t.Errorf("env = %v, want empty", env)
	}
}
