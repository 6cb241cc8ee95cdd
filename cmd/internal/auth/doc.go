// Package auth is the stateless session core: it issues HS256 bearer
// tokens and validates them on protected requests.
//
// The scheme is deliberately minimal. A token carries only the subject
// (lower-cased username) and the user id; there is no expiry, no
// issued-at, and no server-side session state. A token stays valid
// until the signing secret rotates or the subject no longer resolves to
// an account. Because no time-based claim is signed, issuing twice for
// the same subject and id produces byte-identical tokens.
package auth
