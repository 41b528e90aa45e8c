// Package logging provides a logging abstraction layer that decouples the engine
// from the concrete logging backend. Pure engine code never logs; the stateful
// collaborators (rule store, history, ingestion, CLI) receive a Logger.
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program
	Fatal(msg string, fields ...Field)

	// Fatalf logs a fatal-level message with formatting and exits the program
	Fatalf(msg string, args ...interface{})
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

var (
	defaultMu     sync.RWMutex
	defaultLogrus = logrus.New()
	defaultLogger Logger
)

// GetLogger returns the process-wide default logger. Components built by the
// container get their own logger; this one backs code paths that run before
// the container exists (flag parsing, env loading).
func GetLogger() Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		defaultLogger = NewLogrusAdapterFromLogger(defaultLogrus)
	}
	return defaultLogger
}

// SetLogger replaces the process-wide default logger. Nil is ignored.
func SetLogger(logger Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetAllLogLevels sets the level on the logrus standard logger and on the
// default logger's backend.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)

	defaultMu.Lock()
	defaultLogrus.SetLevel(level)
	defaultMu.Unlock()
}
