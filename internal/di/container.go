// Package di provides dependency injection for svcgen.
// It contains the service container and factory functions.
package di

import (
	"io"
	"os"

	"github.com/kamui-project/svcgen/internal/config"
	"github.com/kamui-project/svcgen/internal/log"
	"github.com/kamui-project/svcgen/internal/service"
	iface "github.com/kamui-project/svcgen/internal/service/interface"
	"github.com/kamui-project/svcgen/internal/vfs"
	"github.com/sirupsen/logrus"
)

// Options selects the project and logging set up by NewContainer
type Options struct {
	// ProjectRoot is the Laravel project directory
	ProjectRoot string

	// ConfigFile overrides the optional .svcgen.yaml in ProjectRoot
	ConfigFile string

	// LogLevel overrides the configured log level when set
	LogLevel string

	// LogOutput receives log entries, os.Stderr when nil
	LogOutput io.Writer
}

// Container holds all service dependencies for the CLI.
// Services are accessed via interfaces to enable mocking in tests.
type Container struct {
	cfg       *config.Config
	logger    *logrus.Logger
	generator iface.Generator
}

// NewContainer creates a new dependency container with default implementations
// working on the real filesystem
func NewContainer(opts Options) (*Container, error) {
	cfg, err := config.NewManager(opts.ProjectRoot, opts.ConfigFile).Load()
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logOutput := opts.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}

	logger, err := log.New(cfg.Log, logOutput)
	if err != nil {
		return nil, err
	}

	return NewContainerWithFS(cfg, vfs.NewOSFS(), logger), nil
}

// NewContainerWithFS wires the default implementations on top of fs.
// This is useful for running the full pipeline against an in-memory project.
func NewContainerWithFS(cfg *config.Config, fs vfs.FS, logger *logrus.Logger) *Container {
	return &Container{
		cfg:    cfg,
		logger: logger,
		generator: service.NewGenerator(
			cfg,
			fs,
			service.NewModelLocator(cfg, fs, logger),
			service.NewTemplateRenderer(cfg, fs, logger),
			service.NewFileWriter(fs, logger),
			service.NewProviderPatcher(cfg, fs, logger),
			logger,
		),
	}
}

// NewContainerWithServices creates a container with custom service implementations.
// This is useful for testing with mock services.
func NewContainerWithServices(cfg *config.Config, generator iface.Generator) *Container {
	return &Container{
		cfg:       cfg,
		logger:    log.Discard(),
		generator: generator,
	}
}

// Generator returns the make:service pipeline
func (c *Container) Generator() iface.Generator {
	return c.generator
}

// Config returns the resolved configuration
func (c *Container) Config() *config.Config {
	return c.cfg
}

// Logger returns the shared logger
func (c *Container) Logger() *logrus.Logger {
	return c.logger
}
