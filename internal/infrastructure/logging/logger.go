package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger.
//
// format "json" writes one JSON object per line; anything else uses the
// human-readable console writer.
func Setup(level, format string) zerolog.Logger {
	return SetupWriter(os.Stderr, level, format)
}

func SetupWriter(out io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("service", "storefront").Logger()
	return log.Logger
}
