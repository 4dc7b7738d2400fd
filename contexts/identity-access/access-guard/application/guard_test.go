package application

import (
	"context"
	"errors"
	"testing"

	"brandloop/contexts/identity-access/access-guard/adapters/memory"
	"brandloop/contexts/identity-access/access-guard/domain/entities"
	domainerrors "brandloop/contexts/identity-access/access-guard/domain/errors"
)

type testOwnership struct {
	campaignOwners map[string]string
	engagementAmbs map[string]string
}

func (t testOwnership) CampaignOwner(_ context.Context, campaignID string) (string, error) {
	owner, ok := t.campaignOwners[campaignID]
	if !ok {
		return "", domainerrors.ErrAccessDenied
	}
	return owner, nil
}

func (t testOwnership) EngagementAmbassador(_ context.Context, engagementID string) (string, error) {
	ambassador, ok := t.engagementAmbs[engagementID]
	if !ok {
		return "", domainerrors.ErrAccessDenied
	}
	return ambassador, nil
}

func newTestGuard() Guard {
	profiles := memory.NewStore()
	profiles.AddClient(entities.ClientProfile{ProfileID: "client-1", UserID: "user-1", CompanyName: "Acme"})
	profiles.AddClient(entities.ClientProfile{ProfileID: "client-3", UserID: "user-3", CompanyName: "Rival"})
	profiles.AddAmbassador(entities.AmbassadorProfile{ProfileID: "amb-2", UserID: "user-2", FullName: "Jordan Lee"})

	return Guard{
		Profiles: profiles,
		Ownership: testOwnership{
			campaignOwners: map[string]string{"camp-1": "client-1"},
			engagementAmbs: map[string]string{"eng-1": "amb-2"},
		},
	}
}

func TestAssertOwnsCampaignPermitsOwner(t *testing.T) {
	guard := newTestGuard()
	profile, err := guard.AssertOwnsCampaign(context.Background(), "user-1", "camp-1")
	if err != nil {
		t.Fatalf("expected owner to be permitted, got %v", err)
	}
	if profile.ProfileID != "client-1" {
		t.Fatalf("expected client-1 profile, got %q", profile.ProfileID)
	}
}

func TestAssertOwnsCampaignDeniesForeignClient(t *testing.T) {
	guard := newTestGuard()
	_, err := guard.AssertOwnsCampaign(context.Background(), "user-3", "camp-1")
	if !errors.Is(err, domainerrors.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestAssertOwnsCampaignDeniesMissingCampaignIdentically(t *testing.T) {
	guard := newTestGuard()
	_, err := guard.AssertOwnsCampaign(context.Background(), "user-1", "camp-missing")
	if !errors.Is(err, domainerrors.ErrAccessDenied) {
		t.Fatalf("expected missing campaign to map to access denied, got %v", err)
	}
}

func TestAssertEngagementAmbassador(t *testing.T) {
	guard := newTestGuard()

	profile, err := guard.AssertEngagementAmbassador(context.Background(), "user-2", "eng-1")
	if err != nil {
		t.Fatalf("expected named ambassador to be permitted, got %v", err)
	}
	if profile.ProfileID != "amb-2" {
		t.Fatalf("expected amb-2 profile, got %q", profile.ProfileID)
	}

	if _, err := guard.AssertEngagementAmbassador(context.Background(), "user-2", "eng-missing"); !errors.Is(err, domainerrors.ErrAccessDenied) {
		t.Fatalf("expected access denied for missing engagement, got %v", err)
	}
}

func TestClientProfileRequiresUserID(t *testing.T) {
	guard := newTestGuard()
	if _, err := guard.ClientProfile(context.Background(), "  "); !errors.Is(err, domainerrors.ErrClientProfileNotFound) {
		t.Fatalf("expected profile not found for blank user id, got %v", err)
	}
}
