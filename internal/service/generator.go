package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/kamui-project/svcgen/internal/config"
	"github.com/kamui-project/svcgen/internal/errors"
	"github.com/kamui-project/svcgen/internal/naming"
	iface "github.com/kamui-project/svcgen/internal/service/interface"
	"github.com/kamui-project/svcgen/internal/vfs"
	"github.com/sirupsen/logrus"
)

// generator implements iface.Generator
type generator struct {
	cfg      *config.Config
	fs       vfs.FS
	locator  iface.ModelLocator
	renderer iface.TemplateRenderer
	writer   iface.FileWriter
	patcher  iface.ProviderPatcher
	logger   *logrus.Logger
}

// NewGenerator creates the make:service pipeline from its components
func NewGenerator(
	cfg *config.Config,
	fs vfs.FS,
	locator iface.ModelLocator,
	renderer iface.TemplateRenderer,
	writer iface.FileWriter,
	patcher iface.ProviderPatcher,
	logger *logrus.Logger,
) iface.Generator {
	return &generator{
		cfg:      cfg,
		fs:       fs,
		locator:  locator,
		renderer: renderer,
		writer:   writer,
		patcher:  patcher,
		logger:   logger,
	}
}

// CheckPrerequisites verifies the base interface and base repository exist
func (g *generator) CheckPrerequisites() error {
	prerequisites := []struct {
		path string
		what string
	}{
		{g.cfg.Paths.BaseInterface, "BaseInterface"},
		{g.cfg.Paths.BaseRepository, "Base Repository"},
	}

	for _, p := range prerequisites {
		exists, err := vfs.FileExists(g.fs, g.cfg.Path(p.path))
		if err != nil {
			return errors.Errorf("failed to check %s: %w", p.path, err)
		}
		if !exists {
			return errors.WithStackTrace(errors.PrerequisiteMissingError{
				Path: p.path,
				Hint: fmt.Sprintf("The %s is required. Please create %s", p.what, p.path),
			})
		}
	}

	return nil
}

// GeneratePlainService writes a single service class for name
func (g *generator) GeneratePlainService(ctx context.Context, name string) (*iface.Result, error) {
	if err := g.CheckPrerequisites(); err != nil {
		return nil, err
	}

	segments := naming.SplitSegments(name)
	if len(segments) == 0 || slices.ContainsFunc(segments, func(s string) bool { return !naming.ValidateName(s) }) {
		return nil, errors.WithStackTrace(errors.InvalidNameError{Name: name})
	}

	plain := naming.DerivePlain(g.cfg, name)
	result := &iface.Result{}

	if err := g.generate(ctx, plain.Stub(), plain.Service, result); err != nil {
		return result, err
	}

	return result, nil
}

// GenerateRepository writes the interface, repository and service for a model,
// in that order, and then binds them in the registration file.
// The run is not transactional: on failure, the returned Result lists what was already written.
func (g *generator) GenerateRepository(ctx context.Context, name string, chooser iface.GroupChooser) (*iface.Result, error) {
	if err := g.CheckPrerequisites(); err != nil {
		return nil, err
	}

	if !naming.ValidateName(name) {
		return nil, errors.WithStackTrace(errors.InvalidNameError{Name: name})
	}

	location, err := g.locate(naming.Studly(name), chooser)
	if err != nil {
		return nil, err
	}

	c := naming.Derive(g.cfg, location.Name, location.SubGroup)
	result := &iface.Result{}

	steps := []struct {
		stub     iface.Stub
		artifact naming.Artifact
	}{
		{c.InterfaceStub(), c.Interface},
		{c.RepositoryStub(), c.Repository},
		{c.ServiceStub(), c.Service},
	}

	for _, step := range steps {
		if err := g.generate(ctx, step.stub, step.artifact, result); err != nil {
			return result, err
		}
	}

	if err := g.patcher.Patch(g.cfg.Path(g.cfg.Paths.Provider), c.ProviderPatch()); err != nil {
		return result, err
	}
	result.Patched = g.cfg.Paths.Provider

	return result, nil
}

// locate resolves name, deferring to chooser when the model exists in several groups
func (g *generator) locate(name string, chooser iface.GroupChooser) (*iface.ModelLocation, error) {
	location, err := g.locator.Locate(name)
	if err == nil {
		return location, nil
	}

	var ambiguous errors.AmbiguousModelError
	if chooser == nil || !errors.As(err, &ambiguous) {
		return nil, err
	}

	group, err := chooser(ambiguous.Name, ambiguous.Groups)
	if err != nil {
		return nil, errors.Errorf("failed to choose a group for %s: %w", name, err)
	}
	if !slices.Contains(ambiguous.Groups, group) {
		return nil, errors.WithStackTrace(ambiguous)
	}

	return &iface.ModelLocation{Name: ambiguous.Name, SubGroup: group}, nil
}

// generate renders one stub and writes it to the artifact's path
func (g *generator) generate(ctx context.Context, stub iface.Stub, artifact naming.Artifact, result *iface.Result) error {
	content, err := g.renderer.Render(stub)
	if err != nil {
		return err
	}

	if err := g.writer.Write(g.cfg.Path(artifact.Path), content); err != nil {
		return err
	}
	result.Written = append(result.Written, artifact.Path)

	g.logger.WithContext(ctx).WithFields(logrus.Fields{
		"class":    artifact.FQN(),
		"template": stub.TemplateID(),
		"artifact": artifact.Path,
	}).Debug("Generated artifact")

	return nil
}
