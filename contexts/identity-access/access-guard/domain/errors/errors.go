package errors

import "errors"

var (
	// ErrAccessDenied covers both "resource missing" and "resource not owned
	// by the actor" so ownership checks never leak existence.
	ErrAccessDenied = errors.New("access denied")

	ErrClientProfileNotFound     = errors.New("client profile not found")
	ErrAmbassadorProfileNotFound = errors.New("ambassador profile not found")
)
