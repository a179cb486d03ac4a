// Package logging constructs the process-wide zerolog logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to w, timestamped and tagged with the
// service name.
func New(w io.Writer, service string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).With().Timestamp().Str("service", service).Logger()
}
