// Package templates embeds the default Trellis template bundle and stages it
// onto a filesystem so the installer always copies from a real directory.
// The embedded bundle is the fallback; an external bundle supplied via flag
// or environment takes precedence and never touches this package.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/trellis-dev/trellis/internal/paths"
)

//go:embed all:templates
var bundleFS embed.FS

const embedRoot = "templates"

// Stage extracts the embedded bundle into dir on fsys and returns dir.
// Staging is a plain overwrite: the staging area is throwaway state, not an
// install destination.
func Stage(fsys afero.Fs, dir string) (string, error) {
	err := fs.WalkDir(bundleFS, embedRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(embedRoot, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, rel)

		if d.IsDir() {
			return fsys.MkdirAll(target, paths.DirPerm)
		}

		data, err := bundleFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading embedded %s: %w", path, err)
		}
		return afero.WriteFile(fsys, target, data, paths.FilePerm)
	})
	if err != nil {
		return "", fmt.Errorf("staging embedded bundle: %w", err)
	}
	return dir, nil
}
