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

type CreateSubmissionCommand struct {
	ActorUserID  string
	EngagementID string
	ContentURL   string
	AdCode       string
}

// CreateSubmissionUseCase records content for review. Only the ambassador of
// an engagement that has reached active may submit.
type CreateSubmissionUseCase struct {
	Submissions ports.SubmissionRepository
	Directory   ports.EngagementDirectory
	Guard       guardapp.Guard
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateSubmissionUseCase) Execute(ctx context.Context, cmd CreateSubmissionCommand) (entities.Submission, error) {
	engagementID := strings.TrimSpace(cmd.EngagementID)
	contentURL := strings.TrimSpace(cmd.ContentURL)
	if engagementID == "" || contentURL == "" {
		return entities.Submission{}, domainerrors.ErrInvalidSubmissionInput
	}

	if _, err := uc.Guard.AssertEngagementAmbassador(ctx, cmd.ActorUserID, engagementID); err != nil {
		return entities.Submission{}, err
	}
	engagement, err := uc.Directory.EngagementByID(ctx, engagementID)
	if err != nil {
		return entities.Submission{}, err
	}
	if engagement.Status != ports.EngagementStatusActive {
		return entities.Submission{}, domainerrors.ErrEngagementNotActive
	}

	submissionID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Submission{}, err
	}
	submission := entities.Submission{
		SubmissionID: submissionID,
		EngagementID: engagementID,
		ContentURL:   contentURL,
		AdCode:       strings.TrimSpace(cmd.AdCode),
		Status:       entities.SubmissionStatusPendingReview,
		SubmittedAt:  uc.Clock.Now().UTC(),
	}
	if err := uc.Submissions.CreateSubmission(ctx, submission); err != nil {
		return entities.Submission{}, err
	}

	application.ResolveLogger(uc.Logger).Info("submission created",
		"event", "submission_created",
		"module", "marketplace/submission-service",
		"layer", "application",
		"submission_id", submission.SubmissionID,
		"engagement_id", engagementID,
	)
	return submission, nil
}
