package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger for JSON output on stdout.
func Init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	log.Info().Msg("logger initialized")
}

func Info(msg string, fields map[string]any) {
	emit(log.Info(), msg, fields)
}

func Warn(msg string, fields map[string]any) {
	emit(log.Warn(), msg, fields)
}

func Error(msg string, fields map[string]any) {
	emit(log.Error(), msg, fields)
}

// Fatal logs and exits the process. Startup-only.
func Fatal(msg string, fields map[string]any) {
	emit(log.Fatal(), msg, fields)
}

func emit(e *zerolog.Event, msg string, fields map[string]any) {
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}
