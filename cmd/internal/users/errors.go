package users

import "errors"

// Public, stable errors for callers.
var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)
