package commands

import (
	"context"
	"log/slog"
	"strings"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	application "brandloop/contexts/marketplace/campaign-service/application"
	"brandloop/contexts/marketplace/campaign-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/campaign-service/domain/errors"
	"brandloop/contexts/marketplace/campaign-service/ports"
)

type ChangeStatusCommand struct {
	ActorUserID string
	CampaignID  string
	Status      string
}

type ChangeStatusUseCase struct {
	Campaigns ports.CampaignRepository
	Guard     guardapp.Guard
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (entities.Campaign, error) {
	campaignID := strings.TrimSpace(cmd.CampaignID)
	if campaignID == "" {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}
	if !entities.IsSupportedCampaignStatus(cmd.Status) {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignStatus
	}

	if _, err := uc.Guard.AssertOwnsCampaign(ctx, cmd.ActorUserID, campaignID); err != nil {
		return entities.Campaign{}, err
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return entities.Campaign{}, err
	}
	if campaign.Status.Terminal() {
		return entities.Campaign{}, domainerrors.ErrCampaignClosed
	}

	campaign.Status = entities.CampaignStatus(strings.TrimSpace(cmd.Status))
	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	application.ResolveLogger(uc.Logger).Info("campaign status changed",
		"event", "campaign_status_changed",
		"module", "marketplace/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"status", string(campaign.Status),
	)
	return campaign, nil
}
