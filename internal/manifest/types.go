package manifest

// BundleManifest describes a template bundle (bundle.yaml at the bundle root).
type BundleManifest struct {
	Name    string     `yaml:"name" json:"name"`
	Version string     `yaml:"version" json:"version"`
	Server  ServerSpec `yaml:"server" json:"server"`
}

// ServerSpec declares how the bundled context server is launched once
// installed. Args are relative to the installed bundle directory; the
// installer rewrites them to absolute paths at registration time.
type ServerSpec struct {
	Command string            `yaml:"command" json:"command"`
	Args    []string          `yaml:"args,omitempty" json:"args,omitempty"`
	EnvFile string            `yaml:"env_file,omitempty" json:"env_file,omitempty"`
	Env     map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
}

// Defaults used when a bundle ships no manifest.
const (
	DefaultName    = "trellis-context"
	DefaultVersion = "0.0.0"
	DefaultCommand = "python3"
	DefaultArg     = "server.py"
)

// Default returns the manifest assumed for bundles without a bundle.yaml.
func Default() *BundleManifest {
	return &BundleManifest{
		Name:    DefaultName,
		Version: DefaultVersion,
		Server: ServerSpec{
			Command: DefaultCommand,
			Args:    []string{DefaultArg},
		},
	}
}
