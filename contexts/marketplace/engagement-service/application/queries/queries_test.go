package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	guardmemory "brandloop/contexts/identity-access/access-guard/adapters/memory"
	guardapp "brandloop/contexts/identity-access/access-guard/application"
	guardentities "brandloop/contexts/identity-access/access-guard/domain/entities"
	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	"brandloop/contexts/marketplace/engagement-service/adapters/memory"
	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
)

type mapOwnership struct {
	campaignOwners map[string]string
	engagementAmbs map[string]string
}

func (o mapOwnership) CampaignOwner(_ context.Context, campaignID string) (string, error) {
	owner, ok := o.campaignOwners[campaignID]
	if !ok {
		return "", guarderrors.ErrAccessDenied
	}
	return owner, nil
}

func (o mapOwnership) EngagementAmbassador(_ context.Context, engagementID string) (string, error) {
	ambassador, ok := o.engagementAmbs[engagementID]
	if !ok {
		return "", guarderrors.ErrAccessDenied
	}
	return ambassador, nil
}

func newQueryFixture() (*memory.Store, guardapp.Guard) {
	profiles := guardmemory.NewStore()
	profiles.AddClient(guardentities.ClientProfile{ProfileID: "client-1", UserID: "user-client", CompanyName: "Acme"})
	profiles.AddClient(guardentities.ClientProfile{ProfileID: "client-2", UserID: "user-rival", CompanyName: "Rival"})
	profiles.AddAmbassador(guardentities.AmbassadorProfile{ProfileID: "amb-1", UserID: "user-amb", FullName: "Riley Fox"})
	profiles.AddAmbassador(guardentities.AmbassadorProfile{ProfileID: "amb-2", UserID: "user-amb2", FullName: "Sam Lee"})

	guard := guardapp.Guard{
		Profiles: profiles,
		Ownership: mapOwnership{
			campaignOwners: map[string]string{"camp-1": "client-1"},
			engagementAmbs: map[string]string{"eng-1": "amb-1"},
		},
	}

	store := memory.NewStore([]entities.Engagement{{
		EngagementID: "eng-1",
		CampaignID:   "camp-1",
		AmbassadorID: "amb-1",
		ChatThreadID: "thread-1",
		Status:       entities.EngagementStatusActive,
		CreatedAt:    time.Now().UTC().Add(-time.Hour),
	}})
	return store, guard
}

func TestGetEngagementVisibleToBothParties(t *testing.T) {
	store, guard := newQueryFixture()
	uc := GetEngagementUseCase{Engagements: store, Guard: guard}

	for _, actor := range []string{"user-client", "user-amb"} {
		engagement, err := uc.Execute(context.Background(), actor, "eng-1")
		if err != nil {
			t.Fatalf("get as %s: %v", actor, err)
		}
		if engagement.EngagementID != "eng-1" {
			t.Fatalf("unexpected engagement %q for %s", engagement.EngagementID, actor)
		}
	}
}

func TestGetEngagementHiddenFromStrangers(t *testing.T) {
	store, guard := newQueryFixture()
	uc := GetEngagementUseCase{Engagements: store, Guard: guard}

	// A rival client and an unrelated ambassador both see the same
	// not-found as a genuinely missing row.
	for _, actor := range []string{"user-rival", "user-amb2"} {
		if _, err := uc.Execute(context.Background(), actor, "eng-1"); !errors.Is(err, domainerrors.ErrEngagementNotFound) {
			t.Fatalf("get as %s: got %v, want ErrEngagementNotFound", actor, err)
		}
	}
	if _, err := uc.Execute(context.Background(), "user-rival", "eng-9"); !errors.Is(err, domainerrors.ErrEngagementNotFound) {
		t.Fatalf("missing engagement: got %v, want ErrEngagementNotFound", err)
	}
}
