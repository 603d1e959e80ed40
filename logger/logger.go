// SPDX-License-Identifier: MIT

// Package logger builds the leveled loggers used by the command line tool
// and the batch runner. The solver packages themselves never log.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// DefaultLogLevel is used when no (or an unknown) level is given.
const DefaultLogLevel = "INFO"

const format = "%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset} %{message}"

// LogLevelFlag selects the verbosity of every command.
var LogLevelFlag = cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value:   DefaultLogLevel,
}

// Logger is the subset of *logging.Logger used across the module.
type Logger interface {
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Warning(args ...any)
	Warningf(format string, args ...any)
	Notice(args ...any)
	Noticef(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Debug(args ...any)
	Debugf(format string, args ...any)
	IsEnabledFor(level logging.Level) bool
}

// NewLogger returns a stderr logger for module at the given level. Unknown
// levels fall back to DefaultLogLevel.
func NewLogger(level string, module string) Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl, _ = logging.LogLevel(DefaultLogLevel)
	}
	leveled.SetLevel(lvl, module)
	log.SetBackend(leveled)
	// IsEnabledFor consults the package-level backend, not the logger's own.
	logging.SetLevel(lvl, module)

	return log
}

// ParseTime splits an elapsed duration into hours, minutes and seconds for
// progress reports.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	var (
		hours   = uint32(elapsed.Hours())
		minutes = uint32(elapsed.Minutes()) % 60
		seconds = uint32(elapsed.Seconds()) % 60
	)

	return hours, minutes, seconds
}
