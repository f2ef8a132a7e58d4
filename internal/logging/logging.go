// Package logging builds the service-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON to stdout in production and a console
// format otherwise. Unknown levels fall back to info.
func New(service, level string, production bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	if !production {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	hostname, _ := os.Hostname()
	return zerolog.New(out).Level(lvl).With().
		Timestamp().
		Str("service", service).
		Str("hostname", hostname).
		Logger()
}
