// Package logging configures the process-wide structured logger used by
// every subsystem, via logrus with one "component" field per subsystem.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus.Logger writing to stdout at the given level name
// ("debug", "info", "warn", "error"). An unrecognized level falls back to
// info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}

// For returns a logger entry tagged with component, the convention every
// subsystem's entry point uses to identify its log lines.
func For(log *logrus.Logger, component string) *logrus.Entry {
	return log.WithField("component", component)
}
