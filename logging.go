package flatpage

import (
	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the minimal logging contract the store reports scan diagnostics
// through. It is a subset of the go-logger surface, so a glog logger
// satisfies it directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NewDefaultLogger returns a console logger backed by go-logger for callers
// that want scan diagnostics without wiring their own provider.
func NewDefaultLogger() Logger {
	return glog.NewLogger(glog.WithLoggerTypeConsole())
}

// NoOpLogger returns a logger that drops every entry. It is what stores use
// when no WithLogger option is supplied.
func NoOpLogger() Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ Logger = noopLogger{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
