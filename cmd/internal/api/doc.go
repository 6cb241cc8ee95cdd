// Package api wires the HTTP endpoints: login, account CRUD, and the
// read-only level data routes. Handlers translate between the wire
// contract (field names, exact error strings the game client matches
// on) and the auth/users/levels packages.
package api
