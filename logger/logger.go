// Package logger holds the CLI's debug logger. It is silent unless --debug
// is passed.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger = New(os.Stderr, false)

// New returns a console logger writing to w. Debug output is only emitted
// when debug is set.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Init replaces the global logger.
func Init(w io.Writer, debug bool) {
	Logger = New(w, debug)
}

func Debug() *zerolog.Event {
	return Logger.Debug()
}
