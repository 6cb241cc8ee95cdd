package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"spiritsforest/cmd/internal/users"
)

func testGate(t *testing.T) (*Gate, *Issuer, *users.MemoryStore) {
	t.Helper()

	issuer := testIssuer("test-secret-0123456789-0123456789")
	store := users.NewMemoryStore()
	store.Seed(users.Record{ID: 7, Username: "alice", PasswordHash: "hash", Score: 3, Savegame: "forest-1"})
	return NewGate(issuer, store), issuer, store
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	gate, issuer, _ := testGate(t)

	tok, err := issuer.Issue("alice", 7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	record, err := gate.Authenticate(req)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if record.ID != 7 || record.Username != "alice" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestAuthenticate_CaseInsensitiveScheme(t *testing.T) {
	t.Parallel()

	gate, issuer, _ := testGate(t)

	tok, err := issuer.Issue("alice", 7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "bearer "+tok)

	if _, err := gate.Authenticate(req); err != nil {
		t.Fatalf("Authenticate with lower-case scheme: %v", err)
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	t.Parallel()

	gate, _, _ := testGate(t)

	cases := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "scheme only", header: "Bearer"},
		{name: "scheme and space only", header: "Bearer "},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/api/users", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if _, err := gate.Authenticate(req); err != ErrMissingToken {
				t.Fatalf("expected ErrMissingToken, got %v", err)
			}
		})
	}
}

func TestAuthenticate_ForeignSecret(t *testing.T) {
	t.Parallel()

	gate, _, _ := testGate(t)
	foreign := testIssuer("some-other-secret-0123456789-xyz")

	tok, err := foreign.Issue("alice", 7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	if _, err := gate.Authenticate(req); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	t.Parallel()

	gate, issuer, _ := testGate(t)

	tok, err := issuer.Issue("user-not-existy", 1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	// Indistinguishable from a bad signature on purpose.
	if _, err := gate.Authenticate(req); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIdentityContextRoundTrip(t *testing.T) {
	t.Parallel()

	record := users.Record{ID: 7, Username: "alice"}
	ctx := WithIdentity(context.Background(), record)

	got, ok := IdentityFromContext(ctx)
	if !ok || got != record {
		t.Fatalf("got=%+v ok=%v", got, ok)
	}

	if _, ok := IdentityFromContext(context.Background()); ok {
		t.Fatalf("empty context must carry no identity")
	}
}
