package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	"brandloop/contexts/marketplace/submission-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/submission-service/domain/errors"
	"brandloop/contexts/marketplace/submission-service/ports"
)

// EngagementSubmissionsUseCase lists the submissions of one engagement for
// either side of it: the campaign's client or the engagement's ambassador.
type EngagementSubmissionsUseCase struct {
	Submissions ports.SubmissionRepository
	Directory   ports.EngagementDirectory
	Guard       guardapp.Guard
	Logger      *slog.Logger
}

func (uc EngagementSubmissionsUseCase) Execute(ctx context.Context, actorUserID string, engagementID string) ([]entities.Submission, error) {
	if strings.TrimSpace(engagementID) == "" {
		return nil, domainerrors.ErrInvalidSubmissionInput
	}
	engagement, err := uc.Directory.EngagementByID(ctx, strings.TrimSpace(engagementID))
	if err != nil {
		return nil, err
	}

	if _, err := uc.Guard.AssertOwnsCampaign(ctx, actorUserID, engagement.CampaignID); err != nil {
		if !errors.Is(err, guarderrors.ErrAccessDenied) {
			return nil, err
		}
		ambassador, profileErr := uc.Guard.AmbassadorProfile(ctx, actorUserID)
		if profileErr != nil || ambassador.ProfileID != engagement.AmbassadorID {
			return nil, guarderrors.ErrAccessDenied
		}
	}

	return uc.Submissions.ListByEngagement(ctx, engagement.EngagementID)
}

// CampaignSubmissionsUseCase lists every submission across a campaign's
// engagements, owner only.
type CampaignSubmissionsUseCase struct {
	Submissions ports.SubmissionRepository
	Directory   ports.EngagementDirectory
	Guard       guardapp.Guard
	Logger      *slog.Logger
}

func (uc CampaignSubmissionsUseCase) Execute(ctx context.Context, actorUserID string, campaignID string) ([]entities.Submission, error) {
	if strings.TrimSpace(campaignID) == "" {
		return nil, domainerrors.ErrInvalidSubmissionInput
	}
	if _, err := uc.Guard.AssertOwnsCampaign(ctx, actorUserID, campaignID); err != nil {
		return nil, err
	}

	engagements, err := uc.Directory.ListByCampaign(ctx, strings.TrimSpace(campaignID))
	if err != nil {
		return nil, err
	}
	engagementIDs := make([]string, 0, len(engagements))
	for _, engagement := range engagements {
		engagementIDs = append(engagementIDs, engagement.EngagementID)
	}
	return uc.Submissions.ListByEngagements(ctx, engagementIDs)
}

// MySubmissionsUseCase lists the calling ambassador's submissions.
type MySubmissionsUseCase struct {
	Submissions ports.SubmissionRepository
	Directory   ports.EngagementDirectory
	Guard       guardapp.Guard
	Logger      *slog.Logger
}

func (uc MySubmissionsUseCase) Execute(ctx context.Context, actorUserID string) ([]entities.Submission, error) {
	ambassador, err := uc.Guard.AmbassadorProfile(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	engagements, err := uc.Directory.ListByAmbassador(ctx, ambassador.ProfileID)
	if err != nil {
		return nil, err
	}
	engagementIDs := make([]string, 0, len(engagements))
	for _, engagement := range engagements {
		engagementIDs = append(engagementIDs, engagement.EngagementID)
	}
	return uc.Submissions.ListByEngagements(ctx, engagementIDs)
}
