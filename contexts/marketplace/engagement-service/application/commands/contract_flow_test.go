package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	"brandloop/contexts/marketplace/engagement-service/adapters/memory"
	"brandloop/contexts/marketplace/engagement-service/application"
	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
)

func newContractFixture(t *testing.T) (*memory.Store, DraftContractUseCase, SignContractUseCase) {
	t.Helper()
	store := seedProposal(entities.EngagementStatusContractDrafted)
	guard := newTestGuard()
	clock := fixedClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}

	draft := DraftContractUseCase{
		Engagements: store,
		Contracts:   store,
		Guard:       guard,
		Notifier:    application.Notifier{},
		Clock:       clock,
		IDGen:       &seqIDGen{},
	}
	sign := SignContractUseCase{
		Contracts:   store,
		Engagements: store,
		Guard:       guard,
		Notifier:    application.Notifier{},
		Clock:       clock,
	}
	return store, draft, sign
}

func TestDraftContractCreatesUnacceptedDraft(t *testing.T) {
	store, draft, _ := newContractFixture(t)

	contract, err := draft.Execute(context.Background(), DraftContractCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		ContractText: "Deliver three posts.",
		PaymentType:  entities.PaymentTypePerPost,
	})
	if err != nil {
		t.Fatalf("draft failed: %v", err)
	}
	if contract.Status != entities.ContractStatusDraft {
		t.Fatalf("status = %s, want draft", contract.Status)
	}
	if contract.TermsAccepted {
		t.Fatal("a fresh draft must not have accepted terms")
	}

	engagement, err := store.GetEngagement(context.Background(), "eng-1")
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if engagement.Status != entities.EngagementStatusContractDrafted {
		t.Fatalf("drafting must not move the engagement, got %s", engagement.Status)
	}

	_, err = draft.Execute(context.Background(), DraftContractCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		ContractText: "Second draft.",
	})
	if !errors.Is(err, domainerrors.ErrContractAlreadyDrafted) {
		t.Fatalf("expected contract already drafted, got %v", err)
	}
}

func TestSignContractFullFlow(t *testing.T) {
	store, draft, sign := newContractFixture(t)

	contract, err := draft.Execute(context.Background(), DraftContractCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		ContractText: "Deliver three posts.",
	})
	if err != nil {
		t.Fatalf("draft failed: %v", err)
	}

	err = sign.Execute(context.Background(), SignContractCommand{
		ActorUserID: "user-client",
		ContractID:  contract.ContractID,
		Signer:      entities.SignerClient,
	})
	if err != nil {
		t.Fatalf("client sign failed: %v", err)
	}
	signed, err := store.GetContract(context.Background(), contract.ContractID)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if signed.Status != entities.ContractStatusPendingSignature {
		t.Fatalf("status after client sign = %s, want pending_ambassador_signature", signed.Status)
	}
	if signed.ClientSignedAt == nil {
		t.Fatal("client signature timestamp missing")
	}
	if !strings.Contains(signed.ContractText, "Client Signature:") {
		t.Fatal("contract text missing client signature block")
	}

	err = sign.Execute(context.Background(), SignContractCommand{
		ActorUserID: "user-amb",
		ContractID:  contract.ContractID,
		Signer:      entities.SignerAmbassador,
	})
	if err != nil {
		t.Fatalf("ambassador sign failed: %v", err)
	}
	final, err := store.GetContract(context.Background(), contract.ContractID)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if final.Status != entities.ContractStatusActive {
		t.Fatalf("status after both signatures = %s, want active", final.Status)
	}
	if !final.TermsAccepted {
		t.Fatal("ambassador signature must accept the terms")
	}

	engagement, err := store.GetEngagement(context.Background(), "eng-1")
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if engagement.Status != entities.EngagementStatusContractSigned {
		t.Fatalf("engagement = %s, want contract_signed", engagement.Status)
	}
}

func TestSignContractRejectsDoubleClientSignature(t *testing.T) {
	_, draft, sign := newContractFixture(t)

	contract, err := draft.Execute(context.Background(), DraftContractCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		ContractText: "Deliver three posts.",
	})
	if err != nil {
		t.Fatalf("draft failed: %v", err)
	}

	cmd := SignContractCommand{ActorUserID: "user-client", ContractID: contract.ContractID, Signer: entities.SignerClient}
	if err := sign.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("first sign failed: %v", err)
	}
	if err := sign.Execute(context.Background(), cmd); !errors.Is(err, domainerrors.ErrContractAlreadySigned) {
		t.Fatalf("expected contract already signed, got %v", err)
	}
}

func TestSignContractDeniedForWrongParty(t *testing.T) {
	_, draft, sign := newContractFixture(t)

	contract, err := draft.Execute(context.Background(), DraftContractCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		ContractText: "Deliver three posts.",
	})
	if err != nil {
		t.Fatalf("draft failed: %v", err)
	}

	err = sign.Execute(context.Background(), SignContractCommand{
		ActorUserID: "user-rival",
		ContractID:  contract.ContractID,
		Signer:      entities.SignerClient,
	})
	if !errors.Is(err, guarderrors.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestSignContractDeniedForStrangerAmbassador(t *testing.T) {
	_, draft, sign := newContractFixture(t)

	contract, err := draft.Execute(context.Background(), DraftContractCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		ContractText: "Deliver three posts.",
	})
	if err != nil {
		t.Fatalf("draft failed: %v", err)
	}

	err = sign.Execute(context.Background(), SignContractCommand{
		ActorUserID: "user-amb2",
		ContractID:  contract.ContractID,
		Signer:      entities.SignerAmbassador,
	})
	if !errors.Is(err, guarderrors.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestDraftContractRejectsUnknownPaymentType(t *testing.T) {
	_, draft, _ := newContractFixture(t)

	_, err := draft.Execute(context.Background(), DraftContractCommand{
		ActorUserID:  "user-client",
		EngagementID: "eng-1",
		ContractText: "Deliver three posts.",
		PaymentType:  entities.PaymentType("barter"),
	})
	if !errors.Is(err, domainerrors.ErrInvalidEngagementInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
