package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jroosing/dnsly/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Logger Configuration Tests
// =============================================================================

func TestConfigure_DefaultConfig(t *testing.T) {
	logger := logging.Configure(logging.Config{Level: "INFO"})
	require.NotNil(t, logger, "Configure should return a logger")
}

func TestConfigure_AllLogLevels(t *testing.T) {
	levels := []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			logger := logging.Configure(logging.Config{Level: level})
			assert.NotNil(t, logger)
		})
	}
}

func TestConfigure_CaseInsensitiveLevel(t *testing.T) {
	levels := []string{"debug", "Debug", "DEBUG", "DeBuG"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			logger := logging.Configure(logging.Config{Level: level})
			assert.NotNil(t, logger)
		})
	}
}

func TestConfigure_InvalidLevelDefaultsToInfo(t *testing.T) {
	logger := logging.Configure(logging.Config{Level: "INVALID"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestConfigure_VerboseEnablesDebug(t *testing.T) {
	logger := logging.Configure(logging.Config{Level: "INFO", Verbose: true})
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestConfigure_QuietSuppressesBelowError(t *testing.T) {
	logger := logging.Configure(logging.Config{Level: "DEBUG", Quiet: true})
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestConfigure_QuietWinsOverVerbose(t *testing.T) {
	logger := logging.Configure(logging.Config{Verbose: true, Quiet: true})
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestConfigure_JSONHandler(t *testing.T) {
	logger := logging.Configure(logging.Config{Level: "INFO", JSON: true})
	assert.NotNil(t, logger)
}
