package errors

import "errors"

var (
	ErrSubmissionNotFound     = errors.New("submission not found")
	ErrInvalidSubmissionInput = errors.New("invalid submission input")
	ErrInvalidReviewDecision  = errors.New("unsupported review decision")
	ErrFeedbackRequired       = errors.New("feedback is required when requesting changes")
	ErrEngagementNotActive    = errors.New("engagement is not active")
)
