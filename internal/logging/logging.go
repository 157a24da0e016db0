// Package logging configures the zerolog logger used for diagnostics.
// Rendered output never goes through it.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Level maps a -v count to a log level.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup returns a console logger writing to w at the level for verbosity.
// Caller information is added at debug and trace.
func Setup(verbosity int, w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}
	ctx := zerolog.New(console).Level(Level(verbosity)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	logger := ctx.Logger()
	logger.Debug().Int("verbosity", verbosity).Msg("logger initialized")
	return logger
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
