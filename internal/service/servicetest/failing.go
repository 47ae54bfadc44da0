package servicetest

import (
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// FailingFS wraps an afero.Fs and denies opening any file for writing
// whose path contains one of the given fragments.
type FailingFS struct {
	afero.Fs
	fragments []string
}

// NewFailingFS creates a FailingFS over base
func NewFailingFS(base afero.Fs, fragments ...string) *FailingFS {
	return &FailingFS{Fs: base, fragments: fragments}
}

// OpenFile fails with fs.ErrPermission for writes to matching paths
func (f *FailingFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC) != 0 && f.matches(name) {
		return nil, &os.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

// Create fails with fs.ErrPermission for matching paths
func (f *FailingFS) Create(name string) (afero.File, error) {
	if f.matches(name) {
		return nil, &os.PathError{Op: "create", Path: name, Err: fs.ErrPermission}
	}
	return f.Fs.Create(name)
}

func (f *FailingFS) matches(name string) bool {
	for _, fragment := range f.fragments {
		if strings.Contains(name, fragment) {
			return true
		}
	}
	return false
}
