package ports

import (
	"context"
	"time"

	"brandloop/contexts/marketplace/campaign-service/domain/entities"
)

type CampaignFilter struct {
	ClientID string
	Status   entities.CampaignStatus
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign entities.Campaign) error
	DeleteCampaign(ctx context.Context, campaignID string) error
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]entities.Campaign, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
