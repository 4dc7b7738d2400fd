package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	application "brandloop/contexts/marketplace/campaign-service/application"
	"brandloop/contexts/marketplace/campaign-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/campaign-service/domain/errors"
	"brandloop/contexts/marketplace/campaign-service/ports"
)

type CreateCampaignCommand struct {
	ActorUserID     string
	Title           string
	Description     string
	BudgetMin       float64
	BudgetMax       float64
	Deadline        *time.Time
	Requirements    string
	ProposalMessage string
	MaxAmbassadors  int
}

type CreateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Guard     guardapp.Guard
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}
	if cmd.BudgetMin < 0 || cmd.BudgetMax < cmd.BudgetMin {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}

	client, err := uc.Guard.ClientProfile(ctx, cmd.ActorUserID)
	if err != nil {
		return entities.Campaign{}, err
	}

	campaignID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Campaign{}, err
	}
	now := uc.Clock.Now().UTC()
	maxAmbassadors := cmd.MaxAmbassadors
	if maxAmbassadors <= 0 {
		maxAmbassadors = 1
	}
	campaign := entities.Campaign{
		CampaignID:      campaignID,
		ClientID:        client.ProfileID,
		Title:           title,
		Description:     strings.TrimSpace(cmd.Description),
		BudgetMin:       cmd.BudgetMin,
		BudgetMax:       cmd.BudgetMax,
		Deadline:        cmd.Deadline,
		Requirements:    strings.TrimSpace(cmd.Requirements),
		ProposalMessage: strings.TrimSpace(cmd.ProposalMessage),
		MaxAmbassadors:  maxAmbassadors,
		Status:          entities.CampaignStatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	application.ResolveLogger(uc.Logger).Info("campaign created",
		"event", "campaign_created",
		"module", "marketplace/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"client_id", campaign.ClientID,
	)
	return campaign, nil
}
