package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the service logger.
type Options struct {
	Service string
	Env     string
	Level   string
	Output  io.Writer
}

// New builds the shared zerolog logger. JSON by default; a console writer
// is used when STORE_WEB_LOG_FORMAT=console.
func New(opts Options) zerolog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	if strings.EqualFold(os.Getenv("STORE_WEB_LOG_FORMAT"), "console") {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(output).
		With().
		Timestamp().
		Str("service", opts.Service).
		Str("env", opts.Env).
		Logger().
		Level(ParseLevel(opts.Level))
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(value); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.InfoLevel
}
