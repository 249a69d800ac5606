package domain

import "errors"

// Authentication failures are never more specific than "invalid credentials":
// a missing user, an inactive user and a wrong phone all surface identically
// so the login endpoint cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrSubServiceNotFound = errors.New("sub-service not found")
	ErrAssignmentExists   = errors.New("assignment already exists")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrForbidden          = errors.New("access forbidden")

	// ErrSyncInProgress is returned when a catalog sync is requested for a
	// service whose advisory lock is already held.
	ErrSyncInProgress = errors.New("sync already in progress for service")
)
