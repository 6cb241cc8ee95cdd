package api

import (
	"os"
	"strconv"
)

const defaultMaxBodyBytes = 1 << 20

// Config holds the handler-level knobs.
type Config struct {
	// MaxBodyBytes caps how much of a request body a handler will read.
	MaxBodyBytes int64
}

func DefaultConfig() Config {
	return Config{MaxBodyBytes: defaultMaxBodyBytes}
}

// FromEnv reads SPIRITS_API_MAX_BODY_BYTES, keeping the default when the
// variable is unset or not a positive integer.
func FromEnv() Config {
	cfg := DefaultConfig()
	if raw := os.Getenv("SPIRITS_API_MAX_BODY_BYTES"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			cfg.MaxBodyBytes = n
		}
	}
	return cfg
}
