package account

import "errors"

var (
	// ErrMissingFields signals that a required registration field was empty.
	ErrMissingFields = errors.New("missing fields")

	// ErrEmailOrUsernameTaken signals a uniqueness violation on email or
	// username. Deliberately does not say which of the two collided.
	ErrEmailOrUsernameTaken = errors.New("email or username already in use")

	// ErrInvalidCredentials is the single generic login failure. Unknown
	// identifier and wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound signals that no account exists for the given identifier.
	ErrNotFound = errors.New("account not found")
)
