package utils

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes leveled log lines
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a logger writing info and warnings to stdout and errors to stderr
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr)
}

// NewLoggerTo creates a logger over the given writers
func NewLoggerTo(out, errOut io.Writer) *Logger {
	const flags = log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		infoLogger:  log.New(out, "[LIFE-INFO] ", flags),
		warnLogger:  log.New(out, "[LIFE-WARN] ", flags),
		errorLogger: log.New(errOut, "[LIFE-ERROR] ", flags),
	}
}

// Info logs informational messages
func (l *Logger) Info(format string, args ...any) {
	_ = l.infoLogger.Output(2, fmt.Sprintf(format, args...))
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...any) {
	_ = l.warnLogger.Output(2, fmt.Sprintf(format, args...))
}

// Error logs error messages
func (l *Logger) Error(format string, args ...any) {
	_ = l.errorLogger.Output(2, fmt.Sprintf(format, args...))
}

// Fatal logs an error and exits with status 1
func (l *Logger) Fatal(format string, args ...any) {
	_ = l.errorLogger.Output(2, fmt.Sprintf(format, args...))
	os.Exit(1)
}
