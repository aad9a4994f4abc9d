// Package logger provides leveled terminal logging for the histdb CLI
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// Logger writes leveled diagnostics through pterm's prefix printers.
// Construct one with New and hand it to the components that log; there is
// no package-level instance.
type Logger struct {
	level Level
}

// New returns a logger emitting messages at or above level.
func New(level Level) *Logger {
	if level <= LevelDebug {
		pterm.EnableDebugMessages()
	}

	return &Logger{level: level}
}

// ParseLevel maps a log-level flag value to a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	if l.level <= LevelTrace {
		pterm.Debug.Printfln(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.level <= LevelDebug {
		pterm.Debug.Printfln(format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level <= LevelInfo {
		pterm.Info.Printfln(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.level <= LevelWarn {
		pterm.Warning.Printfln(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.level <= LevelError {
		pterm.Error.Printfln(format, args...)
	}
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	pterm.Error.Printfln(format, args...)
	os.Exit(1)
}

func (l *Logger) Trace(args ...interface{}) {
	if l.level <= LevelTrace {
		pterm.Debug.Println(args...)
	}
}

func (l *Logger) Debug(args ...interface{}) {
	if l.level <= LevelDebug {
		pterm.Debug.Println(args...)
	}
}

func (l *Logger) Info(args ...interface{}) {
	if l.level <= LevelInfo {
		pterm.Info.Println(args...)
	}
}

func (l *Logger) Warn(args ...interface{}) {
	if l.level <= LevelWarn {
		pterm.Warning.Println(args...)
	}
}

func (l *Logger) Error(args ...interface{}) {
	if l.level <= LevelError {
		pterm.Error.Println(args...)
	}
}

func (l *Logger) Fatal(args ...interface{}) {
	pterm.Error.Println(args...)
	os.Exit(1)
}
