package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
)

func TestTransitionStatusCompareAndSwap(t *testing.T) {
	store := NewStore([]entities.Engagement{{
		EngagementID: "eng-1",
		CampaignID:   "camp-1",
		AmbassadorID: "amb-1",
		Status:       entities.EngagementStatusProposalReceived,
		CreatedAt:    time.Now().UTC(),
	}})

	now := time.Now().UTC()
	selected := now
	updated, err := store.TransitionStatus(
		context.Background(),
		"eng-1",
		entities.EngagementStatusProposalReceived,
		entities.EngagementStatusContractDrafted,
		now,
		&selected,
	)
	if err != nil {
		t.Fatalf("first transition failed: %v", err)
	}
	if updated.Status != entities.EngagementStatusContractDrafted {
		t.Fatalf("status = %s, want contract_drafted", updated.Status)
	}
	if updated.SelectedAt == nil {
		t.Fatal("selected_at should be set")
	}

	// A second writer still holding the old status loses the race.
	_, err = store.TransitionStatus(
		context.Background(),
		"eng-1",
		entities.EngagementStatusProposalReceived,
		entities.EngagementStatusContractDrafted,
		now,
		nil,
	)
	if !errors.Is(err, domainerrors.ErrStatusConflict) {
		t.Fatalf("expected status conflict, got %v", err)
	}

	_, err = store.TransitionStatus(
		context.Background(),
		"missing",
		entities.EngagementStatusProposalReceived,
		entities.EngagementStatusContractDrafted,
		now,
		nil,
	)
	if !errors.Is(err, domainerrors.ErrEngagementNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLatestByThreadPicksNewest(t *testing.T) {
	base := time.Now().UTC().Add(-time.Hour)
	store := NewStore([]entities.Engagement{
		{
			EngagementID: "eng-old",
			CampaignID:   "camp-1",
			AmbassadorID: "amb-1",
			ChatThreadID: "thread-1",
			Status:       entities.EngagementStatusTerminated,
			CreatedAt:    base,
		},
		{
			EngagementID: "eng-new",
			CampaignID:   "camp-2",
			AmbassadorID: "amb-1",
			ChatThreadID: "thread-1",
			Status:       entities.EngagementStatusProposalReceived,
			CreatedAt:    base.Add(30 * time.Minute),
		},
	})

	latest, err := store.LatestByThread(context.Background(), "thread-1", "amb-1")
	if err != nil {
		t.Fatalf("latest by thread failed: %v", err)
	}
	if latest.EngagementID != "eng-new" {
		t.Fatalf("latest = %s, want eng-new", latest.EngagementID)
	}

	_, err = store.LatestByThread(context.Background(), "thread-1", "amb-2")
	if !errors.Is(err, domainerrors.ErrProposalNotFound) {
		t.Fatalf("expected proposal not found, got %v", err)
	}
}

func TestLiveEngagementSkipsTerminated(t *testing.T) {
	base := time.Now().UTC().Add(-time.Hour)
	store := NewStore([]entities.Engagement{
		{
			EngagementID: "eng-dead",
			CampaignID:   "camp-1",
			AmbassadorID: "amb-1",
			Status:       entities.EngagementStatusTerminated,
			CreatedAt:    base.Add(30 * time.Minute),
		},
		{
			EngagementID: "eng-live",
			CampaignID:   "camp-1",
			AmbassadorID: "amb-1",
			Status:       entities.EngagementStatusActive,
			CreatedAt:    base,
		},
	})

	live, err := store.LiveEngagement(context.Background(), "camp-1", "amb-1")
	if err != nil {
		t.Fatalf("live engagement failed: %v", err)
	}
	if live.EngagementID != "eng-live" {
		t.Fatalf("live = %s, want eng-live", live.EngagementID)
	}
}

func TestListContractsByAmbassadorJoinsEngagements(t *testing.T) {
	store := NewStore([]entities.Engagement{
		{EngagementID: "eng-1", CampaignID: "camp-1", AmbassadorID: "amb-1", Status: entities.EngagementStatusActive, CreatedAt: time.Now().UTC()},
		{EngagementID: "eng-2", CampaignID: "camp-2", AmbassadorID: "amb-2", Status: entities.EngagementStatusActive, CreatedAt: time.Now().UTC()},
	})

	for _, contract := range []entities.Contract{
		{ContractID: "con-1", EngagementID: "eng-1", ClientID: "client-1", Status: entities.ContractStatusDraft, CreatedAt: time.Now().UTC()},
		{ContractID: "con-2", EngagementID: "eng-2", ClientID: "client-2", Status: entities.ContractStatusDraft, CreatedAt: time.Now().UTC()},
	} {
		if err := store.CreateContract(context.Background(), contract); err != nil {
			t.Fatalf("create contract failed: %v", err)
		}
	}

	items, err := store.ListContractsByAmbassador(context.Background(), "amb-1")
	if err != nil {
		t.Fatalf("list by ambassador failed: %v", err)
	}
	if len(items) != 1 || items[0].ContractID != "con-1" {
		t.Fatalf("unexpected contracts: %+v", items)
	}
}
