package identity

import "errors"

var (
	// ErrSessionNotFound indicates the session ID has no live session.
	ErrSessionNotFound = errors.New("identity: session not found")
	// ErrNotAuthenticated indicates the session carries no identity.
	ErrNotAuthenticated = errors.New("identity: not authenticated")
	// ErrInvalidRole indicates a registration with a role outside parent/partner.
	ErrInvalidRole = errors.New("identity: invalid role")
	// ErrInvalidToken indicates a session token that failed verification.
	ErrInvalidToken = errors.New("identity: invalid session token")
)
