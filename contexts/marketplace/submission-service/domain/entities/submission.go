package entities

import (
	"strings"
	"time"
)

type SubmissionStatus string

const (
	SubmissionStatusPendingReview   SubmissionStatus = "pending_review"
	SubmissionStatusApproved        SubmissionStatus = "approved"
	SubmissionStatusRequiresChanges SubmissionStatus = "requires_changes"
)

func IsSupportedReviewDecision(value string) bool {
	switch SubmissionStatus(strings.TrimSpace(value)) {
	case SubmissionStatusApproved, SubmissionStatusRequiresChanges:
		return true
	default:
		return false
	}
}

type Submission struct {
	SubmissionID string
	EngagementID string
	ContentURL   string
	AdCode       string
	Status       SubmissionStatus
	Feedback     string
	SubmittedAt  time.Time
	ReviewedAt   *time.Time
}
