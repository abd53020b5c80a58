package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the application logger: JSON lines on stdout tagged with the
// service name and hostname.
func New(service string) zerolog.Logger {
	hostname, _ := os.Hostname()
	return zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Str("hostname", hostname).
		Logger()
}
