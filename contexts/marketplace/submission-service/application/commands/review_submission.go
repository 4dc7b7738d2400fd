package commands

import (
	"context"
	"log/slog"
	"strings"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	application "brandloop/contexts/marketplace/submission-service/application"
	"brandloop/contexts/marketplace/submission-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/submission-service/domain/errors"
	"brandloop/contexts/marketplace/submission-service/ports"
)

type ReviewSubmissionCommand struct {
	ActorUserID  string
	SubmissionID string
	Decision     string
	Feedback     string
}

// ReviewSubmissionUseCase records the client's verdict. A requires_changes
// decision without feedback is rejected before anything is written, so the
// submission never ends up flagged with no explanation.
type ReviewSubmissionUseCase struct {
	Submissions ports.SubmissionRepository
	Directory   ports.EngagementDirectory
	Guard       guardapp.Guard
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (uc ReviewSubmissionUseCase) Execute(ctx context.Context, cmd ReviewSubmissionCommand) (entities.Submission, error) {
	submissionID := strings.TrimSpace(cmd.SubmissionID)
	if submissionID == "" {
		return entities.Submission{}, domainerrors.ErrInvalidSubmissionInput
	}
	if !entities.IsSupportedReviewDecision(cmd.Decision) {
		return entities.Submission{}, domainerrors.ErrInvalidReviewDecision
	}
	decision := entities.SubmissionStatus(strings.TrimSpace(cmd.Decision))
	feedback := strings.TrimSpace(cmd.Feedback)
	if decision == entities.SubmissionStatusRequiresChanges && feedback == "" {
		return entities.Submission{}, domainerrors.ErrFeedbackRequired
	}

	submission, err := uc.Submissions.GetSubmission(ctx, submissionID)
	if err != nil {
		return entities.Submission{}, err
	}
	engagement, err := uc.Directory.EngagementByID(ctx, submission.EngagementID)
	if err != nil {
		return entities.Submission{}, err
	}
	if _, err := uc.Guard.AssertOwnsCampaign(ctx, cmd.ActorUserID, engagement.CampaignID); err != nil {
		return entities.Submission{}, err
	}

	now := uc.Clock.Now().UTC()
	submission.Status = decision
	submission.Feedback = feedback
	submission.ReviewedAt = &now
	if err := uc.Submissions.UpdateSubmission(ctx, submission); err != nil {
		return entities.Submission{}, err
	}

	application.ResolveLogger(uc.Logger).Info("submission reviewed",
		"event", "submission_reviewed",
		"module", "marketplace/submission-service",
		"layer", "application",
		"submission_id", submission.SubmissionID,
		"decision", string(decision),
	)
	return submission, nil
}
