package password

import (
	"strings"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func testHasher() *Hasher {
	// MinCost keeps the test suite fast; cost does not change semantics.
	return NewHasher(Config{Cost: bcrypt.MinCost, MaxConcurrent: 2})
}

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	h := testHasher()

	hash, err := h.Hash("11AAaa!!")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "11AAaa!!" || strings.Contains(hash, "11AAaa!!") {
		t.Fatalf("hash must not contain the plaintext")
	}
	if !h.Verify("11AAaa!!", hash) {
		t.Fatalf("expected hash to verify against original password")
	}
	if h.Verify("22BBbb@@", hash) {
		t.Fatalf("expected mismatched password to fail verification")
	}
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h := testHasher()

	first, err := h.Hash("Testing!1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := h.Hash("Testing!1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !h.Verify("Testing!1", first) || !h.Verify("Testing!1", second) {
		t.Fatalf("both hashes must verify against the password")
	}
}

func TestVerify_MalformedHashIsFalse(t *testing.T) {
	t.Parallel()

	h := testHasher()

	for _, bad := range []string{"", "not-a-hash", "$2a$xx$garbage"} {
		if h.Verify("11AAaa!!", bad) {
			t.Fatalf("Verify against malformed hash %q must be false", bad)
		}
	}
}

func TestHasher_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	h := testHasher()

	// All goroutines must complete; the limiter serializes excess work
	// instead of rejecting it.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash, err := h.Hash("11AAaa!!")
			if err != nil {
				t.Errorf("Hash: %v", err)
				return
			}
			if !h.Verify("11AAaa!!", hash) {
				t.Errorf("expected hash to verify")
			}
		}()
	}
	wg.Wait()
}
