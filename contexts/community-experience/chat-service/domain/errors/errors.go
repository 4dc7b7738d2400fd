package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrThreadNotFound = errors.New("chat thread not found")
	ErrNotParticipant = errors.New("user is not a participant of this thread")
)
