// Package log forwards to the process wide zerolog logger configured by the
// parent package, so callers get the otel hook without wiring it themselves.
package log

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func With() zerolog.Context {
	return log.With()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
