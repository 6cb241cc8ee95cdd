package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords with bcrypt, bounding the number
// of concurrent hashing operations.
//
// Callers block on a limiter slot while other request goroutines keep
// being served; an in-flight operation always runs to completion (no
// cancellation semantics).
type Hasher struct {
	cost int
	sem  chan struct{}
}

// NewHasher constructs a Hasher from cfg, clamping out-of-range values
// to the defaults.
func NewHasher(cfg Config) *Hasher {
	def := DefaultConfig()
	if cfg.Cost < bcrypt.MinCost || cfg.Cost > bcrypt.MaxCost {
		cfg.Cost = def.Cost
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = def.MaxConcurrent
	}

	return &Hasher{
		cost: cfg.Cost,
		sem:  make(chan struct{}, cfg.MaxConcurrent),
	}
}

// Hash returns a salted bcrypt hash of password. bcrypt generates a
// fresh random salt per call, so hashing the same plaintext twice yields
// two different encoded values.
func (h *Hasher) Hash(password string) (string, error) {
	h.acquire()
	defer h.release()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches encodedHash. Mismatches and
// malformed hashes both verify false; this method never returns an
// error, which keeps "bad hash" indistinguishable from "bad password"
// for callers.
func (h *Hasher) Verify(password, encodedHash string) bool {
	h.acquire()
	defer h.release()

	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}

func (h *Hasher) acquire() { h.sem <- struct{}{} }
func (h *Hasher) release() { <-h.sem }
