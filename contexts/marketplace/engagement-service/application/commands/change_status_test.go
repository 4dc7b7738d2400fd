package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	"brandloop/contexts/marketplace/engagement-service/adapters/memory"
	"brandloop/contexts/marketplace/engagement-service/application"
	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
)

func newStatusUseCase(store *memory.Store) ChangeStatusUseCase {
	return ChangeStatusUseCase{
		Engagements: store,
		Guard:       newTestGuard(),
		Notifier:    application.Notifier{},
		Clock:       fixedClock{now: time.Now().UTC()},
	}
}

func TestActivateRequiresSignedContract(t *testing.T) {
	store := seedProposal(entities.EngagementStatusContractSigned)
	uc := newStatusUseCase(store)

	updated, err := uc.Execute(context.Background(), ChangeStatusCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		Action:       StatusActionActivate,
	})
	if err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if updated.Status != entities.EngagementStatusActive {
		t.Fatalf("status = %s, want active", updated.Status)
	}

	again := newStatusUseCase(seedProposal(entities.EngagementStatusContractDrafted))
	_, err = again.Execute(context.Background(), ChangeStatusCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		Action:       StatusActionActivate,
	})
	if !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected invalid transition from contract_drafted, got %v", err)
	}
}

func TestCompleteOnlyFromActive(t *testing.T) {
	uc := newStatusUseCase(seedProposal(entities.EngagementStatusActive))
	updated, err := uc.Execute(context.Background(), ChangeStatusCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		Action:       StatusActionComplete,
	})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if updated.Status != entities.EngagementStatusComplete {
		t.Fatalf("status = %s, want complete", updated.Status)
	}

	uc = newStatusUseCase(seedProposal(entities.EngagementStatusContractSigned))
	_, err = uc.Execute(context.Background(), ChangeStatusCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		Action:       StatusActionComplete,
	})
	if !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected invalid transition from contract_signed, got %v", err)
	}
}

func TestTerminateReachableFromEveryNonTerminalStatus(t *testing.T) {
	nonTerminal := []entities.EngagementStatus{
		entities.EngagementStatusProposalReceived,
		entities.EngagementStatusContractDrafted,
		entities.EngagementStatusContractSigned,
		entities.EngagementStatusActive,
	}
	for _, from := range nonTerminal {
		uc := newStatusUseCase(seedProposal(from))
		updated, err := uc.Execute(context.Background(), ChangeStatusCommand{
			ActorUserID:  "user-client",
			EngagementID: "eng-1",
			Action:       StatusActionTerminate,
		})
		if err != nil {
			t.Fatalf("terminate from %s failed: %v", from, err)
		}
		if updated.Status != entities.EngagementStatusTerminated {
			t.Fatalf("terminate from %s left status %s", from, updated.Status)
		}
	}
}

func TestTerminatedIsAbsorbing(t *testing.T) {
	uc := newStatusUseCase(seedProposal(entities.EngagementStatusTerminated))
	for _, action := range []StatusAction{StatusActionActivate, StatusActionComplete, StatusActionTerminate} {
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{
			ActorUserID:  "user-client",
			EngagementID: "eng-1",
			Action:       action,
		})
		if !errors.Is(err, domainerrors.ErrEngagementTerminated) {
			t.Fatalf("action %s on terminated engagement: got %v, want engagement terminated", action, err)
		}
	}
}

func TestChangeStatusDeniedForStrangerClient(t *testing.T) {
	store := seedProposal(entities.EngagementStatusActive)
	uc := newStatusUseCase(store)

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		ActorUserID:  "user-rival",
		EngagementID: "eng-1",
		Action:       StatusActionComplete,
	})
	if !errors.Is(err, guarderrors.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}

	current, err := store.GetEngagement(context.Background(), "eng-1")
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if current.Status != entities.EngagementStatusActive {
		t.Fatalf("denied action must not change status, got %s", current.Status)
	}
}

func TestChangeStatusUnknownAction(t *testing.T) {
	uc := newStatusUseCase(seedProposal(entities.EngagementStatusActive))
	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		Action:       StatusAction("pause"),
	})
	if !errors.Is(err, domainerrors.ErrInvalidEngagementInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
