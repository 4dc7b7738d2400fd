package ports

import (
	"context"

	"brandloop/contexts/identity-access/access-guard/domain/entities"
)

type ProfileRepository interface {
	ClientProfileByUser(ctx context.Context, userID string) (entities.ClientProfile, error)
	AmbassadorProfileByUser(ctx context.Context, userID string) (entities.AmbassadorProfile, error)
	AmbassadorProfileByID(ctx context.Context, profileID string) (entities.AmbassadorProfile, error)
}

// OwnershipReader resolves the owning identifier of a guarded resource.
// Implementations read the campaigns and campaign_ambassadors tables directly.
type OwnershipReader interface {
	CampaignOwner(ctx context.Context, campaignID string) (string, error)
	EngagementAmbassador(ctx context.Context, engagementID string) (string, error)
}
