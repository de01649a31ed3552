// Package logger internal/infrastructure/logger/logger.go
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for the application logger.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	Fatal(msg string, fields map[string]interface{})
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

// LogrusLogger implements Logger on top of logrus with JSON output.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger creates a JSON-formatted logrus logger at the given level.
// Unknown level strings fall back to info.
func NewLogrusLogger(output io.Writer, level string) *LogrusLogger {
	if output == nil {
		output = os.Stdout
	}

	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

// WithField returns a new logger with the field added to the log context.
func (l *LogrusLogger) WithField(key string, value interface{}) Logger {
	return &LogrusLogger{entry: l.entry.WithField(key, value)}
}

// WithFields returns a new logger with the fields added to the log context.
func (l *LogrusLogger) WithFields(fields map[string]interface{}) Logger {
	if len(fields) == 0 {
		return l
	}
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// Debug logs a message at debug level.
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs a message at info level.
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a message at warn level.
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs a message at error level.
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Fatal logs a message at fatal level and then terminates the program.
func (l *LogrusLogger) Fatal(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Fatal(msg)
}

// Default logger instance
var defaultLogger Logger = NewLogrusLogger(os.Stdout, "info")

// GetDefaultLogger returns the default logger.
func GetDefaultLogger() Logger {
	return defaultLogger
}

// SetDefaultLogger sets the default logger.
func SetDefaultLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}
