package service

import (
	"os"
	"path/filepath"

	"github.com/kamui-project/svcgen/internal/errors"
	iface "github.com/kamui-project/svcgen/internal/service/interface"
	"github.com/kamui-project/svcgen/internal/vfs"
	"github.com/sirupsen/logrus"
)

const (
	dirMode  os.FileMode = 0755
	fileMode os.FileMode = 0644
)

// fileWriter implements iface.FileWriter
type fileWriter struct {
	fs     vfs.FS
	logger logrus.FieldLogger
}

// NewFileWriter creates a writer on fs
func NewFileWriter(fs vfs.FS, logger logrus.FieldLogger) iface.FileWriter {
	return &fileWriter{
		fs:     fs,
		logger: logger,
	}
}

// Write creates the missing parents of path and replaces any existing file.
// Manual edits to a previously generated file are discarded.
func (w *fileWriter) Write(path, content string) error {
	if err := w.fs.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return errors.WithStackTrace(errors.WriteError{Path: path, Err: err})
	}

	if err := vfs.WriteFile(w.fs, path, []byte(content), fileMode); err != nil {
		return errors.WithStackTrace(errors.WriteError{Path: path, Err: err})
	}

	w.logger.WithField("path", path).Debug("Wrote file")

	return nil
}
