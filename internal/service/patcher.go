package service

import (
	"strings"

	"github.com/kamui-project/svcgen/internal/config"
	"github.com/kamui-project/svcgen/internal/errors"
	iface "github.com/kamui-project/svcgen/internal/service/interface"
	"github.com/kamui-project/svcgen/internal/vfs"
	"github.com/sirupsen/logrus"
)

const indentUnit = "    "

// providerPatcher implements iface.ProviderPatcher
type providerPatcher struct {
	cfg    *config.Config
	fs     vfs.FS
	logger logrus.FieldLogger
}

// NewProviderPatcher creates a patcher for the registration file
func NewProviderPatcher(cfg *config.Config, fs vfs.FS, logger logrus.FieldLogger) iface.ProviderPatcher {
	return &providerPatcher{
		cfg:    cfg,
		fs:     fs,
		logger: logger,
	}
}

// anchors holds the line indexes new content goes after
type anchors struct {
	namespace int
	body      int
	indent    string
}

// Patch inserts the use statements after the namespace line and the binding as the
// first statement of the boot method body. Both anchors are resolved before anything
// is written, so a missing anchor leaves the file byte-identical.
func (p *providerPatcher) Patch(path string, patch iface.ProviderPatch) error {
	info, err := p.fs.Stat(path)
	if err != nil {
		return errors.Errorf("failed to read registration file %s: %w", path, err)
	}

	data, err := vfs.ReadFile(p.fs, path)
	if err != nil {
		return errors.Errorf("failed to read registration file %s: %w", path, err)
	}

	content := string(data)
	eol := "\n"
	if strings.Contains(content, "\r\n") {
		eol = "\r\n"
	}

	lines := strings.Split(content, "\n")

	found, err := p.findAnchors(path, lines)
	if err != nil {
		return err
	}

	out := make([]string, 0, len(lines)+len(patch.UseStatements)+1)
	for i, line := range lines {
		out = append(out, line)

		if i == found.namespace {
			for _, use := range patch.UseStatements {
				out = append(out, withEOL(use, eol))
			}
		}
		if i == found.body {
			out = append(out, withEOL(found.indent+indentUnit+patch.Binding, eol))
		}
	}

	if err := vfs.WriteFile(p.fs, path, []byte(strings.Join(out, "\n")), info.Mode().Perm()); err != nil {
		return errors.WithStackTrace(errors.WriteError{Path: path, Err: err})
	}

	p.logger.WithFields(logrus.Fields{"path": path, "binding": patch.Binding}).Debug("Patched registration file")

	return nil
}

// findAnchors locates the first namespace line and the first opening brace of the boot method.
// The brace may sit on the signature line or on the next non-blank line.
func (p *providerPatcher) findAnchors(path string, lines []string) (*anchors, error) {
	namespaceAnchor := p.cfg.ProviderAnchor()
	signature := p.cfg.BootSignature

	found := &anchors{namespace: -1, body: -1}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if found.namespace < 0 && trimmed == namespaceAnchor {
			found.namespace = i
		}

		if found.body >= 0 || !strings.HasPrefix(trimmed, signature) {
			continue
		}

		switch rest := strings.TrimSpace(strings.TrimPrefix(trimmed, signature)); {
		case rest == "{":
			found.body = i
			found.indent = leadingSpace(line)
		case rest == "":
			if j := nextNonBlank(lines, i+1); j >= 0 && strings.TrimSpace(lines[j]) == "{" {
				found.body = j
				found.indent = leadingSpace(lines[j])
			}
		}
	}

	if found.namespace < 0 {
		return nil, errors.WithStackTrace(errors.AnchorNotFoundError{Path: path, Anchor: namespaceAnchor})
	}
	if found.body < 0 {
		return nil, errors.WithStackTrace(errors.AnchorNotFoundError{Path: path, Anchor: signature + " {"})
	}

	return found, nil
}

// nextNonBlank returns the index of the first non-blank line at or after from, or -1
func nextNonBlank(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i
		}
	}
	return -1
}

func leadingSpace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// withEOL keeps inserted lines consistent with CRLF files; the "\n" itself comes from the join.
func withEOL(line, eol string) string {
	return line + strings.TrimSuffix(eol, "\n")
}
