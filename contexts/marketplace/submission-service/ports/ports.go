package ports

import (
	"context"
	"time"

	"brandloop/contexts/marketplace/submission-service/domain/entities"
)

// EngagementStatusActive is the only engagement status that accepts content.
const EngagementStatusActive = "active"

// EngagementRef is the submission workflow's narrow view of an engagement.
type EngagementRef struct {
	EngagementID string
	CampaignID   string
	AmbassadorID string
	Status       string
}

type EngagementDirectory interface {
	EngagementByID(ctx context.Context, engagementID string) (EngagementRef, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]EngagementRef, error)
	ListByAmbassador(ctx context.Context, ambassadorID string) ([]EngagementRef, error)
}

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission entities.Submission) error
	GetSubmission(ctx context.Context, submissionID string) (entities.Submission, error)
	UpdateSubmission(ctx context.Context, submission entities.Submission) error
	ListByEngagement(ctx context.Context, engagementID string) ([]entities.Submission, error)
	ListByEngagements(ctx context.Context, engagementIDs []string) ([]entities.Submission, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
