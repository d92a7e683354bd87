// Package logger holds the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var defaultLogger *logrus.Logger

// Setup configures the default logger from a level name (debug, info,
// warn, error) and a format name (text, json). Unknown values fall back
// to info and text.
func Setup(level, format string) *logrus.Logger {
	return setup(os.Stderr, level, format)
}

func setup(out io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	defaultLogger = l
	return l
}

// L returns the default logger, setting it up with defaults if needed.
func L() *logrus.Logger {
	if defaultLogger == nil {
		return Setup("info", "text")
	}
	return defaultLogger
}
