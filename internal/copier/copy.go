package copier

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// CopyTree recursively copies src to dst on fs, pruning excluded entries.
// When skipExisting is true, destination files that already exist are left
// untouched without reading the source, which is what keeps re-runs from
// clobbering local edits. Symlinks and other special files are skipped.
func CopyTree(fs afero.Fs, src, dst string, skipExisting bool) error {
	srcInfo, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if !srcInfo.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	if err := fs.MkdirAll(dst, srcInfo.Mode().Perm()|0o700); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	entries, err := afero.ReadDir(fs, src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	for _, entry := range entries {
		if Excluded(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			if err := CopyTree(fs, srcPath, dstPath, skipExisting); err != nil {
				return err
			}
		case entry.Mode().IsRegular():
			if err := copyFile(fs, srcPath, dstPath, skipExisting); err != nil {
				return err
			}
		}
	}

	return nil
}

// CopyFlat copies the regular files at the root of src into dst without
// recursing, applying the same exclusion filter. Used for the context server
// bundle, which is installed as a flat set of files.
func CopyFlat(fs afero.Fs, src, dst string, skipExisting bool) error {
	if err := fs.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	entries, err := afero.ReadDir(fs, src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	for _, entry := range entries {
		if !entry.Mode().IsRegular() || Excluded(entry.Name()) {
			continue
		}
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if err := copyFile(fs, srcPath, dstPath, skipExisting); err != nil {
			return err
		}
	}

	return nil
}

// copyFile copies a single file, preserving the source mode. With
// skipExisting set, an existing destination wins and the source is not read.
func copyFile(fs afero.Fs, src, dst string, skipExisting bool) error {
	if skipExisting {
		if _, err := fs.Stat(dst); err == nil {
			return nil
		}
	}

	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	srcInfo, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	if err := afero.WriteFile(fs, dst, data, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// Exists reports whether the path exists on fs.
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsDir reports whether the path exists and is a directory.
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}
