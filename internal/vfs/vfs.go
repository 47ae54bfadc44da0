// Package vfs provides the filesystem abstraction used by the generator.
// It wraps afero so the same code runs against the real project tree and
// against an in-memory tree in tests.
package vfs

import (
	"os"
	"sort"

	"github.com/spf13/afero"
)

// FS is the filesystem interface used throughout the codebase.
type FS = afero.Fs

// NewOSFS returns a filesystem backed by the real operating system filesystem.
func NewOSFS() FS {
	return afero.NewOsFs()
}

// NewMemMapFS returns an in-memory filesystem for testing purposes.
func NewMemMapFS() FS {
	return afero.NewMemMapFs()
}

// FileExists checks if a regular file exists at path.
// Returns (true, nil) if it exists, (false, nil) if it does not or is a directory,
// and (false, error) for other errors (e.g., permission denied).
func FileExists(fs FS, path string) (bool, error) {
	info, err := fs.Stat(path)
	if err == nil {
		return !info.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// DirExists checks if a directory exists at path.
func DirExists(fs FS, path string) (bool, error) {
	return afero.DirExists(fs, path)
}

// SubDirs returns the base names of the immediate subdirectories of path, sorted lexicographically.
func SubDirs(fs FS, path string) ([]string, error) {
	entries, err := afero.ReadDir(fs, path)
	if err != nil {
		return nil, err
	}

	var dirs []string

	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}

	sort.Strings(dirs)

	return dirs, nil
}

// WriteFile writes data to a file on the given filesystem, truncating any existing content.
func WriteFile(fs FS, filename string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(fs, filename, data, perm)
}

// ReadFile reads the contents of a file from the given filesystem.
func ReadFile(fs FS, filename string) ([]byte, error) {
	return afero.ReadFile(fs, filename)
}
