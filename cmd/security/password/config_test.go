package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cost < bcrypt.MinCost || cfg.Cost > bcrypt.MaxCost {
		t.Fatalf("default cost %d outside bcrypt range", cfg.Cost)
	}
	if cfg.MaxConcurrent < 1 || cfg.MaxConcurrent > 4 {
		t.Fatalf("default max concurrent %d outside [1..4]", cfg.MaxConcurrent)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SPIRITS_BCRYPT_COST", "6")
	t.Setenv("SPIRITS_HASH_MAX_CONCURRENT", "3")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Cost != 6 {
		t.Fatalf("cost=%d want=6", cfg.Cost)
	}
	if cfg.MaxConcurrent != 3 {
		t.Fatalf("max concurrent=%d want=3", cfg.MaxConcurrent)
	}
}

func TestFromEnv_RejectsBadValues(t *testing.T) {
	cases := []struct {
		key string
		val string
	}{
		{key: "SPIRITS_BCRYPT_COST", val: "not-a-number"},
		{key: "SPIRITS_BCRYPT_COST", val: "99"},
		{key: "SPIRITS_HASH_MAX_CONCURRENT", val: "0"},
		{key: "SPIRITS_HASH_MAX_CONCURRENT", val: "-1"},
	}

	for _, tc := range cases {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.val)
			}
		})
	}
}

func TestNewHasher_ClampsBadConfig(t *testing.T) {
	t.Parallel()

	h := NewHasher(Config{Cost: 999, MaxConcurrent: -5})
	if h.cost != DefaultConfig().Cost {
		t.Fatalf("cost=%d want default %d", h.cost, DefaultConfig().Cost)
	}
	if cap(h.sem) != DefaultConfig().MaxConcurrent {
		t.Fatalf("limiter cap=%d want default %d", cap(h.sem), DefaultConfig().MaxConcurrent)
	}
}
