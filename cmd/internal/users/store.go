package users

import (
	"context"
)

// Record is a stored user row.
//
// PasswordHash is a bcrypt hash; the plaintext is never persisted.
// Username storage is case-sensitive (token subjects are lower-cased by
// the auth layer, lookups here match exactly).
type Record struct {
	ID           int64
	Username     string
	PasswordHash string
	Score        int64
	Savegame     string
}

// Changes is a partial update. Nil fields are left untouched.
type Changes struct {
	Username     *string
	PasswordHash *string
	Score        *int64
	Savegame     *string
}

// IsEmpty reports whether the update would touch nothing.
func (c Changes) IsEmpty() bool {
	return c.Username == nil && c.PasswordHash == nil && c.Score == nil && c.Savegame == nil
}

// Store is the account persistence boundary.
//
// Uniqueness contract: Insert and Update return ErrUsernameTaken on a
// username collision. Callers may pre-check with UsernameTaken for a
// friendlier error, but the pre-check is not atomic with the write; the
// database unique constraint is the arbiter of concurrent registrations.
type Store interface {
	// FindByUsername returns the record for an exact username match,
	// or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (Record, error)

	// UsernameTaken reports whether a row with this username exists.
	UsernameTaken(ctx context.Context, username string) (bool, error)

	// Insert creates a new account and returns the stored record with
	// its assigned id.
	Insert(ctx context.Context, username, passwordHash string) (Record, error)

	// Update applies the non-nil fields of ch to the row identified by
	// username and returns the updated record.
	Update(ctx context.Context, username string, ch Changes) (Record, error)

	// Delete removes the row identified by username. Deleting a missing
	// row returns ErrNotFound.
	Delete(ctx context.Context, username string) error
}
