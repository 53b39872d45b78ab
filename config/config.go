// Package config holds service tuning read from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Abhisg5/snakeAPI/rules"
	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of the service. Flags override them.
var (
	GridWidth          = getEnvInt("GRID_WIDTH", rules.DefaultWidth)
	GridHeight         = getEnvInt("GRID_HEIGHT", rules.DefaultHeight)
	GameSpeed          = getEnvFloat("GAME_SPEED", rules.DefaultSpeed)
	Boundary           = getEnvBoundary("BOUNDARY", rules.Wall)
	MaxSessions        = getEnvInt("MAX_SESSIONS", 1000)
	APIRate            = rate.Limit(getEnvInt("API_RPS", 100))
	APIBurstRate       = getEnvInt("API_BURST", 50)
	SessionIdleTimeout = getEnvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute)
	ReapInterval       = getEnvDuration("REAP_INTERVAL", time.Minute)
	LockHeartbeat      = getEnvDuration("LOCK_HEARTBEAT", 2*time.Second)
)

// GameConfig is the default game built from the environment.
func GameConfig() rules.Config {
	return rules.Config{
		Width:    GridWidth,
		Height:   GridHeight,
		Boundary: Boundary,
		Speed:    GameSpeed,
	}
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvFloat(varName string, defaults float64) float64 {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaults
	}
	return f
}

func getEnvDuration(varName string, defaults time.Duration) time.Duration {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaults
	}
	return d
}

func getEnvBoundary(varName string, defaults rules.BoundaryPolicy) rules.BoundaryPolicy {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	b, err := rules.ParseBoundaryPolicy(val)
	if err != nil {
		return defaults
	}
	return b
}
