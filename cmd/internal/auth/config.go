package auth

import (
	"os"
	"strings"
)

const (
	// SecretEnvKey is the env var name for the token signing secret.
	// #nosec G101 -- not a credential; it's an environment variable name.
	SecretEnvKey = "SPIRITS_JWT_SECRET"

	// minSecretBytes is the minimum HMAC-SHA256 secret length. Measured
	// in bytes (not runes) because the key is used as raw bytes.
	minSecretBytes = 32
)

// Config holds the token signing secret. It is read once at startup and
// injected into the issuer and the gate; nothing in this package keeps
// mutable process-wide state.
type Config struct {
	Secret []byte
}

// LoadConfigFromEnv reads and validates the signing secret.
//
// Fail-fast is intentional: starting with a weak or absent secret would
// silently issue forgeable sessions.
func LoadConfigFromEnv() (Config, error) {
	raw := strings.TrimSpace(os.Getenv(SecretEnvKey))
	if raw == "" {
		return Config{}, ErrSecretMissing
	}
	if len(raw) < minSecretBytes {
		return Config{}, ErrSecretTooShort
	}
	return Config{Secret: []byte(raw)}, nil
}
