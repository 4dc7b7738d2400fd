package queries

import (
	"context"
	"log/slog"
	"strings"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	"brandloop/contexts/marketplace/campaign-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/campaign-service/domain/errors"
	"brandloop/contexts/marketplace/campaign-service/ports"
)

type GetCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (uc GetCampaignUseCase) Execute(ctx context.Context, campaignID string) (entities.Campaign, error) {
	if strings.TrimSpace(campaignID) == "" {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}
	return uc.Campaigns.GetCampaign(ctx, campaignID)
}

// MyCampaignsUseCase lists the campaigns owned by the calling client.
type MyCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Guard     guardapp.Guard
	Logger    *slog.Logger
}

func (uc MyCampaignsUseCase) Execute(ctx context.Context, actorUserID string, status string) ([]entities.Campaign, error) {
	client, err := uc.Guard.ClientProfile(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	filter := ports.CampaignFilter{ClientID: client.ProfileID}
	if strings.TrimSpace(status) != "" {
		if !entities.IsSupportedCampaignStatus(status) {
			return nil, domainerrors.ErrInvalidCampaignStatus
		}
		filter.Status = entities.CampaignStatus(strings.TrimSpace(status))
	}
	return uc.Campaigns.ListCampaigns(ctx, filter)
}

// OpenCampaignsUseCase lists active campaigns for ambassador discovery.
type OpenCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (uc OpenCampaignsUseCase) Execute(ctx context.Context) ([]entities.Campaign, error) {
	return uc.Campaigns.ListCampaigns(ctx, ports.CampaignFilter{
		Status: entities.CampaignStatusActive,
	})
}
