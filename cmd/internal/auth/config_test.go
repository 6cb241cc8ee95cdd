package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadConfigFromEnv(t *testing.T) {
	secret := strings.Repeat("s", 32)
	t.Setenv(SecretEnvKey, secret)

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if string(cfg.Secret) != secret {
		t.Fatalf("secret mismatch")
	}
}

func TestLoadConfigFromEnv_Missing(t *testing.T) {
	t.Setenv(SecretEnvKey, "")

	if _, err := LoadConfigFromEnv(); !errors.Is(err, ErrSecretMissing) {
		t.Fatalf("expected ErrSecretMissing, got %v", err)
	}
}

func TestLoadConfigFromEnv_TooShort(t *testing.T) {
	t.Setenv(SecretEnvKey, "short")

	if _, err := LoadConfigFromEnv(); !errors.Is(err, ErrSecretTooShort) {
		t.Fatalf("expected ErrSecretTooShort, got %v", err)
	}
}
