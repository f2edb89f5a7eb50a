package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. Debug mode uses the human-readable
// console writer; release mode emits JSON lines.
func New(debug bool) zerolog.Logger {
	if debug {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}
