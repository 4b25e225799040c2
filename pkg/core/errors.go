package core

import "errors"

// Common errors.
var (
	// ErrNotFound reports a query that matched no document.
	ErrNotFound = errors.New("document not found")

	// ErrNotConfigured reports a collaborator whose required configuration
	// (credential, project identifier) is absent.
	ErrNotConfigured = errors.New("service is not configured")
)
