package service

import (
	"path/filepath"

	"github.com/kamui-project/svcgen/internal/config"
	"github.com/kamui-project/svcgen/internal/errors"
	iface "github.com/kamui-project/svcgen/internal/service/interface"
	"github.com/kamui-project/svcgen/internal/vfs"
	"github.com/sirupsen/logrus"
)

// modelLocator implements iface.ModelLocator
type modelLocator struct {
	cfg    *config.Config
	fs     vfs.FS
	logger logrus.FieldLogger
}

// NewModelLocator creates a locator searching the configured models root and its immediate subdirectories
func NewModelLocator(cfg *config.Config, fs vfs.FS, logger logrus.FieldLogger) iface.ModelLocator {
	return &modelLocator{
		cfg:    cfg,
		fs:     fs,
		logger: logger,
	}
}

// Locate returns the root match if there is one, otherwise the single group match.
// A model present in several groups is reported as ambiguous rather than picked by directory order.
func (l *modelLocator) Locate(name string) (*iface.ModelLocation, error) {
	candidates, err := l.Candidates(name)
	if err != nil {
		return nil, err
	}

	switch {
	case len(candidates) == 0:
		return nil, errors.WithStackTrace(errors.ModelNotFoundError{Name: name})
	case candidates[0].SubGroup == "" || len(candidates) == 1:
		location := candidates[0]
		l.logger.WithFields(logrus.Fields{"model": name, "group": location.SubGroup}).Debug("Located model")
		return &location, nil
	}

	groups := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		groups = append(groups, candidate.SubGroup)
	}

	return nil, errors.WithStackTrace(errors.AmbiguousModelError{Name: name, Groups: groups})
}

// Candidates returns every location of name: the models root first, then groups in lexicographic order.
// The search never goes deeper than one directory level.
func (l *modelLocator) Candidates(name string) ([]iface.ModelLocation, error) {
	modelsDir := l.cfg.Path(l.cfg.Paths.Models)
	fileName := name + l.cfg.Extension

	var candidates []iface.ModelLocation

	found, err := vfs.FileExists(l.fs, filepath.Join(modelsDir, fileName))
	if err != nil {
		return nil, errors.Errorf("failed to check model %s: %w", name, err)
	}
	if found {
		candidates = append(candidates, iface.ModelLocation{Name: name})
	}

	isDir, err := vfs.DirExists(l.fs, modelsDir)
	if err != nil {
		return nil, errors.Errorf("failed to check models directory %s: %w", modelsDir, err)
	}
	if !isDir {
		return candidates, nil
	}

	groups, err := vfs.SubDirs(l.fs, modelsDir)
	if err != nil {
		return nil, errors.Errorf("failed to list models directory %s: %w", modelsDir, err)
	}

	for _, group := range groups {
		found, err := vfs.FileExists(l.fs, filepath.Join(modelsDir, group, fileName))
		if err != nil {
			return nil, errors.Errorf("failed to check model %s in %s: %w", name, group, err)
		}
		if found {
			candidates = append(candidates, iface.ModelLocation{Name: name, SubGroup: group})
		}
	}

	return candidates, nil
}
