package service

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kamui-project/svcgen/internal/config"
	"github.com/kamui-project/svcgen/internal/errors"
	iface "github.com/kamui-project/svcgen/internal/service/interface"
	"github.com/kamui-project/svcgen/internal/vfs"
	"github.com/sirupsen/logrus"
)

// templateRenderer implements iface.TemplateRenderer
type templateRenderer struct {
	cfg    *config.Config
	fs     vfs.FS
	logger logrus.FieldLogger
}

// NewTemplateRenderer creates a renderer loading stubs from the configured templates directory
func NewTemplateRenderer(cfg *config.Config, fs vfs.FS, logger logrus.FieldLogger) iface.TemplateRenderer {
	return &templateRenderer{
		cfg:    cfg,
		fs:     fs,
		logger: logger,
	}
}

// Render loads the stub's template and applies its typed substitutions
func (r *templateRenderer) Render(stub iface.Stub) (string, error) {
	return r.RenderRaw(stub.TemplateID(), stub.Substitutions())
}

// RenderRaw replaces every placeholder in one pass over the original template text,
// so a value is never re-scanned for placeholders. Unknown placeholders are left as they are.
func (r *templateRenderer) RenderRaw(templateID string, subs []iface.Substitution) (string, error) {
	content, err := r.load(templateID)
	if err != nil {
		return "", err
	}

	oldnew := make([]string, 0, len(subs)*2)
	for _, sub := range subs {
		if sub.Placeholder == "" {
			continue
		}
		oldnew = append(oldnew, sub.Placeholder, sub.Value)
	}

	r.logger.WithField("template", templateID).Debug("Rendered template")

	return strings.NewReplacer(oldnew...).Replace(content), nil
}

func (r *templateRenderer) load(templateID string) (string, error) {
	templatePath := filepath.Join(r.cfg.Path(r.cfg.Paths.Templates), templateID)

	data, err := vfs.ReadFile(r.fs, templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.WithStackTrace(errors.TemplateNotFoundError{TemplateID: templateID, Path: templatePath})
		}
		return "", errors.Errorf("failed to load template %s: %w", templateID, err)
	}

	return string(data), nil
}
