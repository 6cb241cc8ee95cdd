// Package users is the account persistence boundary: the user record
// model, the Store interface consumed by the HTTP layer and the auth
// gate, and its Postgres and in-memory implementations.
package users
