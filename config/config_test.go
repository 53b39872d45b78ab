package config

import (
	"os"
	"testing"
	"time"

	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/stretchr/testify/require"
)

func setenv(t *testing.T, key, val string) func() {
	require.NoError(t, os.Setenv(key, val))
	return func() { os.Unsetenv(key) }
}

func TestGetEnvInt(t *testing.T) {
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_INT", 7))

	defer setenv(t, "SNAKE_TEST_INT", "42")()
	require.Equal(t, 42, getEnvInt("SNAKE_TEST_INT", 7))

	os.Setenv("SNAKE_TEST_INT", "nope")
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_INT", 7))
}

func TestGetEnvFloat(t *testing.T) {
	defer setenv(t, "SNAKE_TEST_FLOAT", "2.5")()
	require.Equal(t, 2.5, getEnvFloat("SNAKE_TEST_FLOAT", 1))

	os.Setenv("SNAKE_TEST_FLOAT", "fast")
	require.Equal(t, 1.0, getEnvFloat("SNAKE_TEST_FLOAT", 1))
}

func TestGetEnvDuration(t *testing.T) {
	defer setenv(t, "SNAKE_TEST_DURATION", "90s")()
	require.Equal(t, 90*time.Second, getEnvDuration("SNAKE_TEST_DURATION", time.Second))

	os.Setenv("SNAKE_TEST_DURATION", "90")
	require.Equal(t, time.Second, getEnvDuration("SNAKE_TEST_DURATION", time.Second))
}

func TestGetEnvBoundary(t *testing.T) {
	defer setenv(t, "SNAKE_TEST_BOUNDARY", "wrap")()
	require.Equal(t, rules.Wrap, getEnvBoundary("SNAKE_TEST_BOUNDARY", rules.Wall))

	os.Setenv("SNAKE_TEST_BOUNDARY", "bounce")
	require.Equal(t, rules.Wall, getEnvBoundary("SNAKE_TEST_BOUNDARY", rules.Wall))
}

func TestGameConfig(t *testing.T) {
	cfg := GameConfig()
	require.Equal(t, GridWidth, cfg.Width)
	require.Equal(t, GridHeight, cfg.Height)
	require.NoError(t, cfg.Validate())
}
