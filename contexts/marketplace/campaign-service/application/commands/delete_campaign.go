package commands

import (
	"context"
	"log/slog"
	"strings"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	application "brandloop/contexts/marketplace/campaign-service/application"
	domainerrors "brandloop/contexts/marketplace/campaign-service/domain/errors"
	"brandloop/contexts/marketplace/campaign-service/ports"
)

type DeleteCampaignCommand struct {
	ActorUserID string
	CampaignID  string
}

// DeleteCampaignUseCase is the only hard delete in the marketplace context.
// Engagements are never deleted, only terminated.
type DeleteCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Guard     guardapp.Guard
	Logger    *slog.Logger
}

func (uc DeleteCampaignUseCase) Execute(ctx context.Context, cmd DeleteCampaignCommand) error {
	campaignID := strings.TrimSpace(cmd.CampaignID)
	if campaignID == "" {
		return domainerrors.ErrInvalidCampaignInput
	}

	if _, err := uc.Guard.AssertOwnsCampaign(ctx, cmd.ActorUserID, campaignID); err != nil {
		return err
	}
	if err := uc.Campaigns.DeleteCampaign(ctx, campaignID); err != nil {
		return err
	}

	application.ResolveLogger(uc.Logger).Info("campaign deleted",
		"event", "campaign_deleted",
		"module", "marketplace/campaign-service",
		"layer", "application",
		"campaign_id", campaignID,
	)
	return nil
}
