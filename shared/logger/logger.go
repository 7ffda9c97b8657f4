package logger

import (
	"io"
	"os"
	"time"

	"bistro/config"
	"bistro/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a human readable console logger at trace level.
// Configure replaces it once the configuration is known.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

// Configure applies the configured level and switches to JSON lines outside development,
// tagging every entry with the application name and environment.
func Configure(cfg *config.Config) {
	Setup(cfg, os.Stdout)
}

// Setup is Configure with an explicit destination.
func Setup(cfg *config.Config, out io.Writer) {
	SetLogLevel(cfg)

	var writer io.Writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}

	if cfg.Server.Env != "" && cfg.Server.Env != constant.ServerEnvDevelopment {
		writer = out
	}

	log.Logger = zerolog.New(writer).With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("env", cfg.Server.Env).
		Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
