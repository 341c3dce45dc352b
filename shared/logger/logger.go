package logger

import (
	"context"
	"dashboard/config"
	"dashboard/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	InitLoggerWithOutput(os.Stdout)
}

// InitLoggerWithOutput points the global logger at out with a console writer.
// Everything is logged until SetLogLevel narrows it.
func InitLoggerWithOutput(out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// WithRequest returns the global logger tagged with the request id carried by ctx, if any.
func WithRequest(ctx context.Context) zerolog.Logger {
	requestID, _ := ctx.Value(constant.ContextKeyRequestID).(string)
	if requestID == "" {
		return log.Logger
	}

	return log.Logger.With().Str("request_id", requestID).Logger()
}

// SetLogLevel applies SERVER_LOG_LEVEL. Unknown or empty values fall back to info.
func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("loglevel", config.Server.LogLevel).Msg("Unrecognised log level, using info.")

		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)
}
