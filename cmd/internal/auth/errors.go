package auth

import "errors"

// Public, stable errors for callers.
//
// ErrInvalidToken deliberately covers bad signatures, malformed tokens,
// unsupported algorithms AND unknown subjects: a caller probing the API
// must not be able to tell which usernames exist.
var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")

	ErrSecretMissing  = errors.New("signing secret missing")
	ErrSecretTooShort = errors.New("signing secret too short")
)
