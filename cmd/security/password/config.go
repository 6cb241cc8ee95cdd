package password

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Config is the single configuration surface for this package.
//
// The validation policy itself is fixed (the game client depends on the
// exact violation messages), so only hashing cost and concurrency are
// tunable.
type Config struct {
	// Cost is the bcrypt cost factor.
	Cost int

	// MaxConcurrent caps in-flight bcrypt operations. Hashing is
	// CPU-bound; an unbounded burst would starve request handling.
	MaxConcurrent int
}

// DefaultConfig returns a baseline suitable for interactive logins.
func DefaultConfig() Config {
	// Clamp to [1..4] to keep resource usage predictable in containers.
	workers := runtime.NumCPU()
	if workers <= 0 {
		workers = 1
	}
	if workers > 4 {
		workers = 4
	}

	return Config{
		Cost:          12,
		MaxConcurrent: workers,
	}
}

// FromEnv loads config from environment variables.
//
// Env surface:
// - SPIRITS_BCRYPT_COST
// - SPIRITS_HASH_MAX_CONCURRENT
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("SPIRITS_BCRYPT_COST"); ok {
		n, err := atoiRange(v, bcrypt.MinCost, bcrypt.MaxCost)
		if err != nil {
			return Config{}, fmt.Errorf("SPIRITS_BCRYPT_COST: %w", err)
		}
		cfg.Cost = n
	}

	if v, ok := os.LookupEnv("SPIRITS_HASH_MAX_CONCURRENT"); ok {
		n, err := atoiRange(v, 1, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SPIRITS_HASH_MAX_CONCURRENT: %w", err)
		}
		cfg.MaxConcurrent = n
	}

	return cfg, nil
}

func atoiRange(s string, minVal, maxVal int) (int, error) {
	s = strings.TrimSpace(s)
	i64, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not an integer")
	}

	i := int(i64)
	if i < minVal || i > maxVal {
		return 0, fmt.Errorf("out of range [%d..%d]", minVal, maxVal)
	}
	return i, nil
}
