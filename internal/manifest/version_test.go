package manifest

import (
	"testing"

	"github.com/spf13/afero"
)

func TestInstalledVersionRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := "/home/dev/.cursor"
	if err := fs.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}

	if got := InstalledVersion(fs, root); got != "" {
		t.Errorf("unexpected version before install: %q", got)
	}

	if err := WriteInstalledVersion(fs, root, "1.2.0"); err != nil {
		t.Fatalf("WriteInstalledVersion: %v", err)
	}
	if got := InstalledVersion(fs, root); got != "1.2.0" {
		t.Errorf("version = %q, want 1.2.0", got)
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		bundle    string
		installed string
		newer     bool
		wantErr   bool
	}{
		{"1.1.0", "1.0.0", true, false},
		{"1.0.0", "1.0.0", false, false},
		{"1.0.0", "2.0.0", false, false},
		{"v1.1.0", "1.0.0", true, false},
		{"1.1.0", "", true, false},
		{"1.1.0", "garbage", true, false},
		{"garbage", "1.0.0", false, true},
	}

	for _, tt := range tests {
		newer, err := IsNewer(tt.bundle, tt.installed)
		if tt.wantErr {
			if err == nil {
				t.Errorf("IsNewer(%q, %q): expected error", tt.bundle, tt.installed)
			}
			continue
		}
		if err != nil {
			t.Errorf("IsNewer(%q, %q): %v", tt.bundle, tt.installed, err)
			continue
		}
		if newer != tt.newer {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.bundle, tt.installed, newer, tt.newer)
		}
	}
}
