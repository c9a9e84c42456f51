package aga8

import (
	"fmt"
	"strings"

	"github.com/hhkbp2/go-logging"
)

// LoggerName is the go-logging logger every file of the package writes to.
const LoggerName = "aga8"

var logLevels = map[string]bool{
	"DEBUG":    true,
	"INFO":     true,
	"WARN":     true,
	"ERROR":    true,
	"CRITICAL": true,
}

func logger() logging.Logger {
	return logging.GetLogger(LoggerName)
}

// SetLogLevel sets the package logger level from DEBUG, INFO, WARN, ERROR
// or CRITICAL.
func SetLogLevel(level string) error {
	l := logger()
	switch strings.ToUpper(level) {
	case "DEBUG":
		l.SetLevel(logging.LevelDebug)
	case "INFO":
		l.SetLevel(logging.LevelInfo)
	case "WARN":
		l.SetLevel(logging.LevelWarn)
	case "ERROR":
		l.SetLevel(logging.LevelError)
	case "CRITICAL":
		l.SetLevel(logging.LevelCritical)
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}
