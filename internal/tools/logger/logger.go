package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New creates the process-wide logger. Unknown levels fall back to info
// rather than failing startup.
func New(level string) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	log := zerolog.
		New(os.Stdout).
		Level(parsed).
		With().
		Timestamp().
		Logger()

	return &log
}
