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

type UpdateSubmissionCommand struct {
	ActorUserID  string
	SubmissionID string
	ContentURL   *string
	AdCode       *string
}

// UpdateSubmissionUseCase lets the ambassador rework a submission. Any edit
// sends it back to pending_review and clears the previous review outcome.
type UpdateSubmissionUseCase struct {
	Submissions ports.SubmissionRepository
	Guard       guardapp.Guard
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (uc UpdateSubmissionUseCase) Execute(ctx context.Context, cmd UpdateSubmissionCommand) (entities.Submission, error) {
	submissionID := strings.TrimSpace(cmd.SubmissionID)
	if submissionID == "" {
		return entities.Submission{}, domainerrors.ErrInvalidSubmissionInput
	}

	submission, err := uc.Submissions.GetSubmission(ctx, submissionID)
	if err != nil {
		return entities.Submission{}, err
	}
	if _, err := uc.Guard.AssertEngagementAmbassador(ctx, cmd.ActorUserID, submission.EngagementID); err != nil {
		return entities.Submission{}, err
	}

	if cmd.ContentURL != nil {
		contentURL := strings.TrimSpace(*cmd.ContentURL)
		if contentURL == "" {
			return entities.Submission{}, domainerrors.ErrInvalidSubmissionInput
		}
		submission.ContentURL = contentURL
	}
	if cmd.AdCode != nil {
		submission.AdCode = strings.TrimSpace(*cmd.AdCode)
	}

	submission.Status = entities.SubmissionStatusPendingReview
	submission.Feedback = ""
	submission.ReviewedAt = nil
	submission.SubmittedAt = uc.Clock.Now().UTC()
	if err := uc.Submissions.UpdateSubmission(ctx, submission); err != nil {
		return entities.Submission{}, err
	}

	application.ResolveLogger(uc.Logger).Info("submission updated",
		"event", "submission_updated",
		"module", "marketplace/submission-service",
		"layer", "application",
		"submission_id", submission.SubmissionID,
	)
	return submission, nil
}
