// Package logger builds prefixed charmbracelet/log loggers for the build
// pipeline.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a new default charm log with a prefix that respects the
// global log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
