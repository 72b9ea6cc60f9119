package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Remote booking service.
	GatewayBaseURL string
	GatewayTimeout time.Duration

	// List view input debounce quiet period.
	DebounceWindow time.Duration

	// Local stub gateway.
	FixtureAddr string
}

func FromEnv() (Config, error) {
	cfg := Config{
		GatewayBaseURL: getenv("GATEWAY_BASE_URL", "http://localhost:3001"),
		FixtureAddr:    getenv("FIXTURE_ADDR", ":3001"),
	}

	timeoutSec, err := strconv.Atoi(getenv("GATEWAY_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSec < 1 {
		return Config{}, fmt.Errorf("invalid GATEWAY_TIMEOUT_SECONDS")
	}
	cfg.GatewayTimeout = time.Duration(timeoutSec) * time.Second

	debounceMs, err := strconv.Atoi(getenv("DEBOUNCE_MS", "300"))
	if err != nil || debounceMs < 0 {
		return Config{}, fmt.Errorf("invalid DEBOUNCE_MS")
	}
	cfg.DebounceWindow = time.Duration(debounceMs) * time.Millisecond

	return cfg, nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
