package common

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrintBanner_LogsSessionStart(t *testing.T) {
	var screen, logs bytes.Buffer
	logger := NewLoggerWithOutput("info", &logs)

	PrintBanner(&screen, NewDefaultConfig(), logger)

	assert.Contains(t, screen.String(), "DeFi Genie")
	assert.Contains(t, screen.String(), "Your Magical DeFi Companion")
	assert.Contains(t, logs.String(), `"catalog":"built-in"`)
	assert.Contains(t, logs.String(), "Genie summoned")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLoggerWithOutput("warn", &logs).WithSession("abc")

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := logs.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"session":"abc"`)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestLogger_Silent(t *testing.T) {
	NewSilentLogger().Error().Msg("nowhere")
}

func TestPrintShutdownBanner_LogsSessionDuration(t *testing.T) {
	var screen, logs bytes.Buffer
	logger := NewLoggerWithOutput("info", &logs)

	PrintShutdownBanner(&screen, logger, time.Now().Add(-2*time.Second))

	assert.Contains(t, screen.String(), "═")
	assert.Contains(t, logs.String(), "Genie returned to the lamp")
	assert.Contains(t, logs.String(), `"session_duration":`)
}
