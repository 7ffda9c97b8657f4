package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"bistro/config"
	"bistro/shared/constant"
	"bistro/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()
	format := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = format
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestSetup(t *testing.T) {
	t.Run("production writes json lines", func(t *testing.T) {
		restore(t)

		cfg := &config.Config{}
		cfg.App.Name = "bistro"
		cfg.Server.Env = constant.ServerEnvProduction
		cfg.Server.LogLevel = "info"

		var buf bytes.Buffer
		logger.Setup(cfg, &buf)

		log.Info().Str("table_id", "T001").Msg("reservation confirmed")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		assert.Equal(t, "bistro", entry["app"])
		assert.Equal(t, constant.ServerEnvProduction, entry["env"])
		assert.Equal(t, "T001", entry["table_id"])
		assert.Equal(t, "reservation confirmed", entry["message"])
	})

	t.Run("development stays on the console writer", func(t *testing.T) {
		restore(t)

		cfg := &config.Config{}
		cfg.Server.Env = constant.ServerEnvDevelopment
		cfg.Server.LogLevel = "debug"

		var buf bytes.Buffer
		logger.Setup(cfg, &buf)

		log.Debug().Msg("slot checked")

		assert.Contains(t, buf.String(), "slot checked")
		assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("entries below the level are dropped", func(t *testing.T) {
		restore(t)

		cfg := &config.Config{}
		cfg.Server.Env = constant.ServerEnvProduction
		cfg.Server.LogLevel = "warn"

		var buf bytes.Buffer
		logger.Setup(cfg, &buf)

		log.Info().Msg("ignored")

		assert.Empty(t, buf.String())
	})
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger.ErrorWithStack(errors.New("reservations_no_overlap violated"))

	assert.Contains(t, buf.String(), "reservations_no_overlap violated")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     zerolog.Level
	}{
		{name: "trace", logLevel: "trace", want: zerolog.TraceLevel},
		{name: "debug", logLevel: "debug", want: zerolog.DebugLevel},
		{name: "info", logLevel: "info", want: zerolog.InfoLevel},
		{name: "warn", logLevel: "warn", want: zerolog.WarnLevel},
		{name: "error", logLevel: "error", want: zerolog.ErrorLevel},
		{name: "disabled", logLevel: "disabled", want: zerolog.Disabled},
		{name: "invalid falls back to trace", logLevel: "loud", want: zerolog.TraceLevel},
		{name: "empty is no level", logLevel: "", want: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			log.Logger = zerolog.New(&bytes.Buffer{})

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
