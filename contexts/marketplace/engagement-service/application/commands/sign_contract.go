package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	application "brandloop/contexts/marketplace/engagement-service/application"
	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
	"brandloop/contexts/marketplace/engagement-service/ports"
)

type SignContractCommand struct {
	ActorUserID string
	ContractID  string
	Signer      entities.SignerRole
}

// SignContractUseCase records a party's signature. The client's signature
// moves the contract to pending_ambassador_signature; the ambassador's
// signature activates the contract, accepts the terms, and advances the
// engagement contract_drafted -> contract_signed.
type SignContractUseCase struct {
	Contracts   ports.ContractRepository
	Engagements ports.EngagementRepository
	Guard       guardapp.Guard
	Notifier    application.Notifier
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (uc SignContractUseCase) Execute(ctx context.Context, cmd SignContractCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	if !entities.IsSupportedSignerRole(cmd.Signer) {
		return domainerrors.ErrInvalidEngagementInput
	}

	contract, err := uc.Contracts.GetContract(ctx, strings.TrimSpace(cmd.ContractID))
	if err != nil {
		return err
	}
	now := uc.Clock.Now().UTC()

	switch cmd.Signer {
	case entities.SignerClient:
		client, err := uc.Guard.ClientProfile(ctx, cmd.ActorUserID)
		if err != nil {
			return err
		}
		if contract.ClientID != client.ProfileID {
			return guarderrors.ErrAccessDenied
		}
		if contract.ClientSignedAt != nil {
			return domainerrors.ErrContractAlreadySigned
		}
		name := client.CompanyName
		if name == "" {
			name = "Client"
		}
		contract.ClientSignedAt = &now
		contract.Status = entities.ContractStatusPendingSignature
		contract.ContractText = entities.AppendSignature(contract.ContractText, "Client Signature:", name, now)

	case entities.SignerAmbassador:
		ambassador, err := uc.Guard.AssertEngagementAmbassador(ctx, cmd.ActorUserID, contract.EngagementID)
		if err != nil {
			return err
		}
		if contract.AmbassadorSignedAt != nil {
			return domainerrors.ErrContractAlreadySigned
		}
		name := ambassador.FullName
		if name == "" {
			name = "Ambassador"
		}
		contract.AmbassadorSignedAt = &now
		contract.TermsAccepted = true
		contract.Status = entities.ContractStatusActive
		contract.ContractText = entities.AppendSignature(contract.ContractText, "Ambassador Signature:", name, now)

		if _, err := uc.Engagements.TransitionStatus(
			ctx,
			contract.EngagementID,
			entities.EngagementStatusContractDrafted,
			entities.EngagementStatusContractSigned,
			now,
			nil,
		); err != nil {
			if errors.Is(err, domainerrors.ErrStatusConflict) {
				return domainerrors.ErrInvalidStatusTransition
			}
			return err
		}
	}

	contract.UpdatedAt = now
	if err := uc.Contracts.UpdateContract(ctx, contract); err != nil {
		return err
	}

	uc.Notifier.InvalidatePaths(ctx, "/contracts/"+contract.ContractID)

	logger.Info("contract signed",
		"event", "contract_signed",
		"module", "marketplace/engagement-service",
		"layer", "application",
		"contract_id", contract.ContractID,
		"signer", string(cmd.Signer),
	)
	return nil
}
