// Package logging holds the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logg = newLogger(os.Stdout)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(out)
	return l
}

func Logger() *logrus.Logger {
	return logg
}

// Configure sets level ("debug", "info", ...) and format ("json" or "text").
func Configure(level, format string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	logg.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		logg.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", format)
	}
	return nil
}

// SetOutput redirects the logger, mainly for tests.
func SetOutput(w io.Writer) {
	logg.SetOutput(w)
}

// For returns an entry tagged with the module and operation being logged.
func For(module, op string) *logrus.Entry {
	return logg.WithFields(logrus.Fields{
		"module": module,
		"op":     op,
	})
}

func LogError(module, op, context string, data any, err error) {
	fields := logrus.Fields{
		"module":  module,
		"op":      op,
		"context": context,
	}
	if data != nil {
		fields["data"] = data
	}
	logg.WithFields(fields).Error(err.Error())
}
