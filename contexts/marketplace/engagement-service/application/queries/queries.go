package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
	"brandloop/contexts/marketplace/engagement-service/ports"
)

// GetEngagementUseCase returns the engagement if the actor is a party to it:
// the campaign's client or the named ambassador. Anyone else sees
// "engagement not found", never an ownership hint.
type GetEngagementUseCase struct {
	Engagements ports.EngagementRepository
	Guard       guardapp.Guard
	Logger      *slog.Logger
}

func (uc GetEngagementUseCase) Execute(ctx context.Context, actorUserID string, engagementID string) (entities.Engagement, error) {
	engagement, err := uc.Engagements.GetEngagement(ctx, strings.TrimSpace(engagementID))
	if err != nil {
		return entities.Engagement{}, err
	}

	if _, err := uc.Guard.AssertOwnsCampaign(ctx, actorUserID, engagement.CampaignID); err == nil {
		return engagement, nil
	}
	if _, err := uc.Guard.AssertEngagementAmbassador(ctx, actorUserID, engagement.EngagementID); err == nil {
		return engagement, nil
	}
	return entities.Engagement{}, domainerrors.ErrEngagementNotFound
}

// ListCampaignEngagementsUseCase returns the campaign's roster, owner only.
type ListCampaignEngagementsUseCase struct {
	Engagements ports.EngagementRepository
	Guard       guardapp.Guard
	Logger      *slog.Logger
}

func (uc ListCampaignEngagementsUseCase) Execute(ctx context.Context, actorUserID string, campaignID string) ([]entities.Engagement, error) {
	if _, err := uc.Guard.AssertOwnsCampaign(ctx, actorUserID, strings.TrimSpace(campaignID)); err != nil {
		return nil, err
	}
	return uc.Engagements.ListByCampaign(ctx, strings.TrimSpace(campaignID))
}

// AmbassadorEngagementsUseCase lists the actor's accepted, in-flight
// engagements, newest first. Proposals and terminal rows are excluded.
type AmbassadorEngagementsUseCase struct {
	Engagements ports.EngagementRepository
	Guard       guardapp.Guard
	Logger      *slog.Logger
}

func (uc AmbassadorEngagementsUseCase) Execute(ctx context.Context, actorUserID string) ([]entities.Engagement, error) {
	ambassador, err := uc.Guard.AmbassadorProfile(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	return uc.Engagements.ListByAmbassador(ctx, ambassador.ProfileID, entities.ActiveStatuses())
}

// GetContractUseCase returns the contract if the actor is a party to it.
// Anyone else sees "contract not found", never an ownership hint.
type GetContractUseCase struct {
	Contracts   ports.ContractRepository
	Engagements ports.EngagementRepository
	Guard       guardapp.Guard
	Logger      *slog.Logger
}

func (uc GetContractUseCase) Execute(ctx context.Context, actorUserID string, contractID string) (entities.Contract, error) {
	contract, err := uc.Contracts.GetContract(ctx, strings.TrimSpace(contractID))
	if err != nil {
		return entities.Contract{}, err
	}

	if client, err := uc.Guard.ClientProfile(ctx, actorUserID); err == nil && contract.ClientID == client.ProfileID {
		return contract, nil
	}
	if ambassador, err := uc.Guard.AmbassadorProfile(ctx, actorUserID); err == nil {
		engagement, err := uc.Engagements.GetEngagement(ctx, contract.EngagementID)
		if err == nil && engagement.AmbassadorID == ambassador.ProfileID {
			return contract, nil
		}
	}
	return entities.Contract{}, domainerrors.ErrContractNotFound
}

// MyContractsUseCase merges the actor's client-side and ambassador-side
// contracts, deduplicated, newest first.
type MyContractsUseCase struct {
	Contracts ports.ContractRepository
	Guard     guardapp.Guard
	Logger    *slog.Logger
}

func (uc MyContractsUseCase) Execute(ctx context.Context, actorUserID string) ([]entities.Contract, error) {
	merged := make([]entities.Contract, 0)
	seen := make(map[string]bool)

	if client, err := uc.Guard.ClientProfile(ctx, actorUserID); err == nil {
		items, err := uc.Contracts.ListContractsByClient(ctx, client.ProfileID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if !seen[item.ContractID] {
				seen[item.ContractID] = true
				merged = append(merged, item)
			}
		}
	}
	if ambassador, err := uc.Guard.AmbassadorProfile(ctx, actorUserID); err == nil {
		items, err := uc.Contracts.ListContractsByAmbassador(ctx, ambassador.ProfileID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if !seen[item.ContractID] {
				seen[item.ContractID] = true
				merged = append(merged, item)
			}
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}
