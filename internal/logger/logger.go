package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger = zerolog.Nop()

// Init initializes the global logger
func Init(serviceName string, isDevelopment bool, level string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var output io.Writer = os.Stdout
	if isDevelopment {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	Logger = zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Logger = Logger
}

// WithContext returns a logger carrying the request id, if any
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Logger.With().Logger()
	if id := middleware.GetReqID(ctx); id != "" {
		l = l.With().Str("request_id", id).Logger()
	}
	return &l
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
