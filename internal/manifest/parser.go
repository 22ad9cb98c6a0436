package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// FileName is the manifest file expected at the bundle root.
const FileName = "bundle.yaml"

// Load reads bundle.yaml from the bundle root. A missing file yields the
// built-in defaults; a present-but-invalid file is an error so a broken
// bundle does not silently install under the wrong identity.
func Load(fs afero.Fs, bundleRoot string) (*BundleManifest, error) {
	path := filepath.Join(bundleRoot, FileName)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Default(), nil
	}

	m := Default()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if result, err := Validate(data); err == nil && !result.Valid {
		return nil, fmt.Errorf("invalid %s: %s", path, result.Issues[0].Message)
	}

	if m.Name == "" {
		m.Name = DefaultName
	}
	if m.Server.Command == "" {
		m.Server.Command = DefaultCommand
	}
	if len(m.Server.Args) == 0 {
		m.Server.Args = []string{DefaultArg}
	}
	return m, nil
}

// ServerEnv resolves the environment mapping for the server entry: the
// optional env_file next to the manifest first, overlaid by the manifest's
// inline env block. A missing env file is not an error.
func (m *BundleManifest) ServerEnv(fs afero.Fs, bundleRoot string) (map[string]string, error) {
	env := map[string]string{}

	if m.Server.EnvFile != "" {
		path := filepath.Join(bundleRoot, m.Server.EnvFile)
		data, err := afero.ReadFile(fs, path)
		if err == nil {
			parsed, err := godotenv.UnmarshalBytes(data)
			if err != nil {
				return nil, fmt.Errorf("parsing env file %s: %w", path, err)
			}
			for k, v := range parsed {
				env[k] = v
			}
		}
	}

	for k, v := range m.Server.Env {
		env[k] = v
	}
	return env, nil
}

// ServerArgs resolves the declared args against the installed bundle
// directory, producing absolute slash-normalized paths for path-like args.
// Non-path args (flags, bare words) are passed through.
func (m *BundleManifest) ServerArgs(installedBundleDir string) []string {
	args := make([]string, len(m.Server.Args))
	for i, a := range m.Server.Args {
		if strings.HasPrefix(a, "-") || filepath.IsAbs(a) {
			args[i] = filepath.ToSlash(a)
			continue
		}
		args[i] = filepath.ToSlash(filepath.Join(installedBundleDir, a))
	}
	return args
}
