// Package log builds the logrus logger shared by the generator's components.
package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/kamui-project/svcgen/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	// FormatText is the human-readable key=value format.
	FormatText = "text"

	// FormatJSON emits one JSON object per line.
	FormatJSON = "json"

	defaultLevel = logrus.WarnLevel
)

// New creates a logger writing to out with the configured level and format.
func New(c config.Log, out io.Writer) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(out)

	level := defaultLevel
	if c.Level != "" {
		parsed, err := logrus.ParseLevel(strings.ToLower(c.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
		level = parsed
	}
	l.SetLevel(level)

	switch strings.ToLower(c.Format) {
	case "", FormatText:
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q (supported: %s, %s)", c.Format, FormatText, FormatJSON)
	}

	return l, nil
}

// Discard returns a logger that drops everything, for tests and library use.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
