package engagementadapter

import (
	"context"

	engagementports "brandloop/contexts/marketplace/engagement-service/ports"
	"brandloop/contexts/marketplace/submission-service/ports"
)

// Directory projects the engagement repository into the submission
// workflow's EngagementRef view.
type Directory struct {
	Engagements engagementports.EngagementRepository
}

func (d Directory) EngagementByID(ctx context.Context, engagementID string) (ports.EngagementRef, error) {
	engagement, err := d.Engagements.GetEngagement(ctx, engagementID)
	if err != nil {
		return ports.EngagementRef{}, err
	}
	return ports.EngagementRef{
		EngagementID: engagement.EngagementID,
		CampaignID:   engagement.CampaignID,
		AmbassadorID: engagement.AmbassadorID,
		Status:       string(engagement.Status),
	}, nil
}

func (d Directory) ListByCampaign(ctx context.Context, campaignID string) ([]ports.EngagementRef, error) {
	engagements, err := d.Engagements.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	refs := make([]ports.EngagementRef, 0, len(engagements))
	for _, engagement := range engagements {
		refs = append(refs, ports.EngagementRef{
			EngagementID: engagement.EngagementID,
			CampaignID:   engagement.CampaignID,
			AmbassadorID: engagement.AmbassadorID,
			Status:       string(engagement.Status),
		})
	}
	return refs, nil
}

func (d Directory) ListByAmbassador(ctx context.Context, ambassadorID string) ([]ports.EngagementRef, error) {
	engagements, err := d.Engagements.ListByAmbassador(ctx, ambassadorID, nil)
	if err != nil {
		return nil, err
	}
	refs := make([]ports.EngagementRef, 0, len(engagements))
	for _, engagement := range engagements {
		refs = append(refs, ports.EngagementRef{
			EngagementID: engagement.EngagementID,
			CampaignID:   engagement.CampaignID,
			AmbassadorID: engagement.AmbassadorID,
			Status:       string(engagement.Status),
		})
	}
	return refs, nil
}
