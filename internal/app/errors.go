package app

import "errors"

// Sentinel errors returned by engine operations. Callers branch with
// errors.Is; the engine wraps them with operation context.
var (
	// ErrValidation marks a rejected input (missing name, bad role).
	ErrValidation = errors.New("validation failed")

	// ErrNotAuthorized marks a role refused a privileged operation.
	// The original engine silently no-opped these; refusals are
	// surfaced as typed errors here so the boundary is testable.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound marks a mutation referencing an unknown id.
	ErrNotFound = errors.New("not found")

	// ErrLoginFailed marks a credential or device-binding miss.
	ErrLoginFailed = errors.New("login failed")

	// ErrNoSession marks an operation that needs a current account.
	ErrNoSession = errors.New("no active session")
)
