package templates

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestStageMaterializesBundle(t *testing.T) {
	fs := afero.NewMemMapFs()

	root, err := Stage(fs, "/staging")
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if root != "/staging" {
		t.Errorf("root = %q", root)
	}

	for _, rel := range []string{
		"bundle.yaml",
		"agents/implement.md",
		"agents/check.md",
		"hooks/session-start.py",
		"hooks/ralph-loop.py",
		"commands/start-task.md",
		"mcp-servers/trellis-context/server.py",
	} {
		path := filepath.Join(root, rel)
		if ok, _ := afero.Exists(fs, path); !ok {
			t.Errorf("missing staged file %s", rel)
		}
	}
}

func TestStagedManifestIsWellFormed(t *testing.T) {
	fs := afero.NewMemMapFs()

	root, err := Stage(fs, "/staging")
	if err != nil {
		t.Fatal(err)
	}

	data, err := afero.ReadFile(fs, filepath.Join(root, "bundle.yaml"))
	if err != nil {
		t.Fatalf("reading staged bundle.yaml: %v", err)
	}
	if !strings.Contains(string(data), "name: trellis-context") {
		t.Errorf("bundle.yaml = %q", data)
	}
}
