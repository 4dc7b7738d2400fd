package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	guardmemory "brandloop/contexts/identity-access/access-guard/adapters/memory"
	guardapp "brandloop/contexts/identity-access/access-guard/application"
	guardentities "brandloop/contexts/identity-access/access-guard/domain/entities"
	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	"brandloop/contexts/marketplace/engagement-service/adapters/memory"
	"brandloop/contexts/marketplace/engagement-service/application"
	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type seqIDGen struct {
	mu      sync.Mutex
	counter int
}

func (g *seqIDGen) NewID(context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("id-%d", g.counter), nil
}

type recordingChat struct {
	mu             sync.Mutex
	systemMessages []string
	messages       []string
}

func (c *recordingChat) EnsureDirectThread(context.Context, string, string) (string, error) {
	return "thread-1", nil
}

func (c *recordingChat) PostMessage(_ context.Context, _ string, _ string, content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, content)
	return nil
}

func (c *recordingChat) PostSystemMessage(_ context.Context, _ string, _ string, content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.systemMessages = append(c.systemMessages, content)
	return nil
}

func (c *recordingChat) systemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.systemMessages)
}

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

func newTestGuard() guardapp.Guard {
	profiles := guardmemory.NewStore()
	profiles.AddClient(guardentities.ClientProfile{ProfileID: "client-1", UserID: "user-client", CompanyName: "Acme"})
	profiles.AddClient(guardentities.ClientProfile{ProfileID: "client-2", UserID: "user-rival", CompanyName: "Rival"})
	profiles.AddAmbassador(guardentities.AmbassadorProfile{ProfileID: "amb-1", UserID: "user-amb", FullName: "Riley Fox"})
	profiles.AddAmbassador(guardentities.AmbassadorProfile{ProfileID: "amb-2", UserID: "user-amb2", FullName: "Sam Lee"})

	return guardapp.Guard{
		Profiles: profiles,
		Ownership: mapOwnership{
			campaignOwners: map[string]string{"camp-1": "client-1"},
			engagementAmbs: map[string]string{"eng-1": "amb-1"},
		},
	}
}

func seedProposal(status entities.EngagementStatus) *memory.Store {
	return memory.NewStore([]entities.Engagement{{
		EngagementID: "eng-1",
		CampaignID:   "camp-1",
		AmbassadorID: "amb-1",
		ChatThreadID: "thread-1",
		Status:       status,
		CreatedAt:    time.Now().UTC().Add(-time.Hour),
	}})
}

func TestAcceptProposalAdvancesAndNotifies(t *testing.T) {
	store := seedProposal(entities.EngagementStatusProposalReceived)
	chat := &recordingChat{}
	uc := AcceptProposalUseCase{
		Engagements: store,
		Guard:       newTestGuard(),
		Notifier:    application.Notifier{Chat: chat},
		Clock:       fixedClock{now: time.Now().UTC()},
	}

	updated, err := uc.Execute(context.Background(), AcceptProposalCommand{
		ActorUserID:  "user-amb",
		ChatThreadID: "thread-1",
	})
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if updated.Status != entities.EngagementStatusContractDrafted {
		t.Fatalf("status = %s, want contract_drafted", updated.Status)
	}
	if updated.SelectedAt == nil {
		t.Fatal("selected_at should be set on accept")
	}
	if chat.systemCount() != 1 {
		t.Fatalf("system messages = %d, want 1", chat.systemCount())
	}
}

func TestAcceptProposalTwiceFailsWithoutSecondSideEffect(t *testing.T) {
	store := seedProposal(entities.EngagementStatusProposalReceived)
	chat := &recordingChat{}
	uc := AcceptProposalUseCase{
		Engagements: store,
		Guard:       newTestGuard(),
		Notifier:    application.Notifier{Chat: chat},
		Clock:       fixedClock{now: time.Now().UTC()},
	}

	first, err := uc.Execute(context.Background(), AcceptProposalCommand{ActorUserID: "user-amb", ChatThreadID: "thread-1"})
	if err != nil {
		t.Fatalf("first accept failed: %v", err)
	}

	_, err = uc.Execute(context.Background(), AcceptProposalCommand{ActorUserID: "user-amb", ChatThreadID: "thread-1"})
	if !errors.Is(err, domainerrors.ErrProposalAlreadyProcessed) {
		t.Fatalf("expected proposal already processed, got %v", err)
	}

	current, err := store.GetEngagement(context.Background(), "eng-1")
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if current.Status != entities.EngagementStatusContractDrafted {
		t.Fatalf("status = %s, want contract_drafted", current.Status)
	}
	if !current.SelectedAt.Equal(*first.SelectedAt) {
		t.Fatal("selected_at must not move on the failed retry")
	}
	if chat.systemCount() != 1 {
		t.Fatalf("system messages = %d, want exactly 1", chat.systemCount())
	}
}

func TestAcceptProposalRequiresAmbassadorProfile(t *testing.T) {
	uc := AcceptProposalUseCase{
		Engagements: seedProposal(entities.EngagementStatusProposalReceived),
		Guard:       newTestGuard(),
		Notifier:    application.Notifier{},
		Clock:       fixedClock{now: time.Now().UTC()},
	}

	_, err := uc.Execute(context.Background(), AcceptProposalCommand{ActorUserID: "user-client", ChatThreadID: "thread-1"})
	if !errors.Is(err, guarderrors.ErrAmbassadorProfileNotFound) {
		t.Fatalf("expected ambassador profile not found, got %v", err)
	}
}

func TestAcceptProposalUnknownThread(t *testing.T) {
	uc := AcceptProposalUseCase{
		Engagements: seedProposal(entities.EngagementStatusProposalReceived),
		Guard:       newTestGuard(),
		Notifier:    application.Notifier{},
		Clock:       fixedClock{now: time.Now().UTC()},
	}

	_, err := uc.Execute(context.Background(), AcceptProposalCommand{ActorUserID: "user-amb", ChatThreadID: "thread-9"})
	if !errors.Is(err, domainerrors.ErrProposalNotFound) {
		t.Fatalf("expected proposal not found, got %v", err)
	}
}
