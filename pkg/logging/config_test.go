package logging_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/agentsmd/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	// Save and restore the original logger and level
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.False(t, cfg.AddCaller)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("NewLoggerFromConfig creates logger with config", func(t *testing.T) {
		tmpfile, err := os.CreateTemp(t.TempDir(), "test-log-*.txt")
		assert.NoError(t, err)
		defer tmpfile.Close()

		cfg := &logging.Config{
			Level:     "debug",
			Format:    "json",
			Output:    tmpfile.Name(),
			AddCaller: true,
		}

		logger := logging.NewLoggerFromConfig(cfg)
		logger.Info().Msg("test message")

		content, err := os.ReadFile(tmpfile.Name())
		assert.NoError(t, err)
		output := string(content)
		assert.Contains(t, output, "test message")
		assert.Contains(t, output, "info")
	})

	t.Run("Configure sets global logger from config", func(t *testing.T) {
		tmpfile, err := os.CreateTemp(t.TempDir(), "test-log-*.txt")
		assert.NoError(t, err)
		defer tmpfile.Close()

		cfg := &logging.Config{
			Level:     "warn",
			Format:    "json",
			Output:    tmpfile.Name(),
			AddCaller: false,
		}

		logging.Configure(cfg)

		// These should not appear (below warn level)
		logging.Debug().Msg("debug message")
		logging.Info().Msg("info message")

		// These should appear
		logging.Warn().Msg("warn message")
		logging.Error().Msg("error message")

		content, err := os.ReadFile(tmpfile.Name())
		assert.NoError(t, err)
		output := string(content)
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})

	t.Run("ConfigureFromEnv reads from environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_OUTPUT", "discard")

		// This should read from env and configure the logger without panicking
		logging.ConfigureFromEnv()
	})

	t.Run("console format configuration", func(t *testing.T) {
		tmpfile, err := os.CreateTemp(t.TempDir(), "test-log-*.txt")
		assert.NoError(t, err)
		defer tmpfile.Close()

		cfg := &logging.Config{
			Level:     "info",
			Format:    "console",
			Output:    tmpfile.Name(),
			AddCaller: false,
		}

		logger := logging.NewLoggerFromConfig(cfg)
		logger.Info().Str("key", "value").Msg("console test")

		content, err := os.ReadFile(tmpfile.Name())
		assert.NoError(t, err)
		output := string(content)
		assert.Contains(t, output, "console test")
		// Console format uses short level names
		assert.Contains(t, output, "INF")
	})

	t.Run("different log levels", func(t *testing.T) {
		testCases := []struct {
			name      string
			level     string
			logFunc   func() *zerolog.Event
			shouldLog bool
		}{
			{"debug at debug", "debug", logging.Debug, true},
			{"info at info", "info", logging.Info, true},
			{"debug below info", "info", logging.Debug, false},
			{"warn at warn", "warn", logging.Warn, true},
			{"info below warn", "warn", logging.Info, false},
			{"error at error", "error", logging.Error, true},
			{"warn below error", "error", logging.Warn, false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tmpfile, err := os.CreateTemp(t.TempDir(), "test-log-*.txt")
				assert.NoError(t, err)
				defer tmpfile.Close()

				cfg := &logging.Config{
					Level:  tc.level,
					Format: "json",
					Output: tmpfile.Name(),
				}

				logging.Configure(cfg)
				tc.logFunc().Msg("test")

				content, err := os.ReadFile(tmpfile.Name())
				assert.NoError(t, err)
				output := string(content)

				if tc.shouldLog {
					assert.Contains(t, output, "test")
				} else {
					assert.Empty(t, output)
				}
			})
		}
	})
}

func TestLoggerFunctions(t *testing.T) {
	// Save and restore the global level
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	t.Run("Default returns global logger", func(t *testing.T) {
		logger := logging.Default()
		assert.NotNil(t, logger)
	})

	t.Run("SetDefault sets global logger", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger := zerolog.New(&buf).Level(zerolog.InfoLevel)
		logging.SetDefault(newLogger)

		logging.Info().Msg("test with new default")
		assert.Contains(t, buf.String(), "test with new default")
	})

	t.Run("New creates JSON logger", func(t *testing.T) {
		var buf bytes.Buffer
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger := logging.New(&buf)

		logger.Info().Str("fmt", "json").Msg("structured")
		assert.Contains(t, buf.String(), `"fmt":"json"`)
	})

	t.Run("NewJSON defaults nil writer to stderr", func(t *testing.T) {
		logger := logging.NewJSON(nil)
		assert.NotNil(t, logger)
	})
}
