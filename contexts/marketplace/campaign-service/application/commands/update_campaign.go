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

type UpdateCampaignCommand struct {
	ActorUserID     string
	CampaignID      string
	Title           *string
	Description     *string
	BudgetMin       *float64
	BudgetMax       *float64
	Requirements    *string
	ProposalMessage *string
	MaxAmbassadors  *int
}

// UpdateCampaignUseCase patches only the fields present in the command. The
// ownership check runs before any read of the row is returned, so a denied
// caller learns nothing and changes nothing.
type UpdateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Guard     guardapp.Guard
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpdateCampaignUseCase) Execute(ctx context.Context, cmd UpdateCampaignCommand) (entities.Campaign, error) {
	campaignID := strings.TrimSpace(cmd.CampaignID)
	if campaignID == "" {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}

	if _, err := uc.Guard.AssertOwnsCampaign(ctx, cmd.ActorUserID, campaignID); err != nil {
		return entities.Campaign{}, err
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return entities.Campaign{}, err
	}

	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if title == "" {
			return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
		}
		campaign.Title = title
	}
	if cmd.Description != nil {
		campaign.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.BudgetMin != nil {
		campaign.BudgetMin = *cmd.BudgetMin
	}
	if cmd.BudgetMax != nil {
		campaign.BudgetMax = *cmd.BudgetMax
	}
	if campaign.BudgetMin < 0 || campaign.BudgetMax < campaign.BudgetMin {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}
	if cmd.Requirements != nil {
		campaign.Requirements = strings.TrimSpace(*cmd.Requirements)
	}
	if cmd.ProposalMessage != nil {
		campaign.ProposalMessage = strings.TrimSpace(*cmd.ProposalMessage)
	}
	if cmd.MaxAmbassadors != nil {
		if *cmd.MaxAmbassadors <= 0 {
			return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
		}
		campaign.MaxAmbassadors = *cmd.MaxAmbassadors
	}

	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	application.ResolveLogger(uc.Logger).Info("campaign updated",
		"event", "campaign_updated",
		"module", "marketplace/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
	)
	return campaign, nil
}
