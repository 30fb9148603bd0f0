// Package logger provides leveled logging over the standard log package.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

type Logger struct {
	level Level
	out   *log.Logger
}

var defaultLogger = &Logger{level: InfoLevel, out: log.New(os.Stderr, "", log.LstdFlags)}

// Init sets the level of the package-level logger. Unknown levels fall back
// to info.
func Init(level string) {
	l := InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		l = DebugLevel
	case "warn":
		l = WarnLevel
	case "error":
		l = ErrorLevel
	}
	defaultLogger = &Logger{level: l, out: log.New(os.Stderr, "", log.LstdFlags)}
}

func logf(min Level, tag, format string, args ...any) {
	if defaultLogger.level > min {
		return
	}
	defaultLogger.out.Output(3, fmt.Sprintf(tag+" "+format, args...))
}

func Debug(format string, args ...any) { logf(DebugLevel, "[DEBUG]", format, args...) }
func Info(format string, args ...any)  { logf(InfoLevel, "[INFO]", format, args...) }
func Warn(format string, args ...any)  { logf(WarnLevel, "[WARN]", format, args...) }
func Error(format string, args ...any) { logf(ErrorLevel, "[ERROR]", format, args...) }

// Fatal logs at error level and exits.
func Fatal(format string, args ...any) {
	defaultLogger.out.Output(3, fmt.Sprintf("[FATAL] "+format, args...))
	os.Exit(1)
}
