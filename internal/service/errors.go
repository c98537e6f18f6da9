package service

import "errors"

// Error kinds callers branch on with errors.Is. Messages wrapping these are
// safe to show to users; nothing in this layer is fatal.
var (
	// ErrValidation covers empty required fields and out-of-set ids.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound covers ids that do not exist or are not owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrTokenInvalid is returned when a bearer token does not verify.
	ErrTokenInvalid = errors.New("invalid token")
)
