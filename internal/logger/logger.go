// Package logger wraps logrus behind a small structured-logging facade
// shared by the transports, game service, and room registry.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	// Log is the global logger instance
	Log *logrus.Logger
)

// Initialize sets up the logger with proper formatting and level.
func Initialize(debug bool) {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if debug {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}

// Fields shorthand for logrus.Fields
type Fields logrus.Fields

// ensure returns a usable logger even when Initialize was not called,
// which keeps library tests independent of bootstrap order.
func ensure() *logrus.Logger {
	if Log == nil {
		Initialize(false)
	}
	return Log
}

// Error logs a message at level Error
func Error(msg string, fields Fields) {
	if fields == nil {
		ensure().Error(msg)
	} else {
		ensure().WithFields(logrus.Fields(fields)).Error(msg)
	}
}

// Info logs a message at level Info
func Info(msg string, fields Fields) {
	if fields == nil {
		ensure().Info(msg)
	} else {
		ensure().WithFields(logrus.Fields(fields)).Info(msg)
	}
}

// Warn logs a message at level Warn
func Warn(msg string, fields Fields) {
	if fields == nil {
		ensure().Warn(msg)
	} else {
		ensure().WithFields(logrus.Fields(fields)).Warn(msg)
	}
}

// Debug logs a message at level Debug
func Debug(msg string, fields Fields) {
	if fields == nil {
		ensure().Debug(msg)
	} else {
		ensure().WithFields(logrus.Fields(fields)).Debug(msg)
	}
}

// Fatal logs a message at level Fatal then the process will exit with status set to 1
func Fatal(msg string, fields Fields) {
	if fields == nil {
		ensure().Fatal(msg)
	} else {
		ensure().WithFields(logrus.Fields(fields)).Fatal(msg)
	}
}
