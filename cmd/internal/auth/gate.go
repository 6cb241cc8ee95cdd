package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"spiritsforest/cmd/internal/users"
)

// Gate validates bearer tokens on incoming requests and resolves them
// to user records. It is transport-light on purpose: Authenticate takes
// the request and returns a result, and the HTTP layer decides how to
// wrap it as middleware.
type Gate struct {
	issuer *Issuer
	store  users.Store
}

// NewGate constructs a Gate.
func NewGate(issuer *Issuer, store users.Store) *Gate {
	return &Gate{issuer: issuer, store: store}
}

// Authenticate runs the token state machine for one request:
// extract the Authorization header, verify the signature, resolve the
// subject to an account.
//
// An unknown subject returns ErrInvalidToken, the same error as a bad
// signature, so the response cannot be used to enumerate usernames.
func (g *Gate) Authenticate(r *http.Request) (users.Record, error) {
	raw, ok := bearerToken(r)
	if !ok {
		return users.Record{}, ErrMissingToken
	}

	claims, err := g.issuer.Verify(raw)
	if err != nil {
		return users.Record{}, ErrInvalidToken
	}

	record, err := g.store.FindByUsername(r.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return users.Record{}, ErrInvalidToken
		}
		return users.Record{}, err
	}
	return record, nil
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// The scheme match is case-insensitive; anything else counts as no
// token at all.
func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", false
	}

	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

type identityKey struct{}

// WithIdentity attaches the authenticated user record to the request
// context. The identity is request-scoped: it is derived once by the
// gate and discarded when the request completes.
func WithIdentity(ctx context.Context, record users.Record) context.Context {
	return context.WithValue(ctx, identityKey{}, record)
}

// IdentityFromContext returns the record attached by WithIdentity.
func IdentityFromContext(ctx context.Context) (users.Record, bool) {
	record, ok := ctx.Value(identityKey{}).(users.Record)
	return record, ok
}
