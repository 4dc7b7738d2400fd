package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	application "brandloop/contexts/marketplace/engagement-service/application"
	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
	"brandloop/contexts/marketplace/engagement-service/ports"
)

type DraftContractCommand struct {
	ActorUserID         string
	EngagementID        string
	ContractText        string
	PaymentType         entities.PaymentType
	TargetImpressions   *int
	CostPerCPM          *float64
	StartDate           *time.Time
	UsageRightsDuration string
}

// DraftContractUseCase creates the contract row for an engagement sitting in
// contract_drafted. The engagement status itself does not move here; it
// advances when the ambassador signs.
type DraftContractUseCase struct {
	Engagements ports.EngagementRepository
	Contracts   ports.ContractRepository
	Guard       guardapp.Guard
	Notifier    application.Notifier
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (uc DraftContractUseCase) Execute(ctx context.Context, cmd DraftContractCommand) (entities.Contract, error) {
	logger := application.ResolveLogger(uc.Logger)
	text := strings.TrimSpace(cmd.ContractText)
	if strings.TrimSpace(cmd.EngagementID) == "" || text == "" {
		return entities.Contract{}, domainerrors.ErrInvalidEngagementInput
	}
	if cmd.PaymentType != "" && !entities.IsSupportedPaymentType(cmd.PaymentType) {
		return entities.Contract{}, domainerrors.ErrInvalidEngagementInput
	}

	engagement, err := uc.Engagements.GetEngagement(ctx, strings.TrimSpace(cmd.EngagementID))
	if err != nil {
		return entities.Contract{}, err
	}
	client, err := uc.Guard.AssertOwnsCampaign(ctx, cmd.ActorUserID, engagement.CampaignID)
	if err != nil {
		return entities.Contract{}, err
	}
	if engagement.Status != entities.EngagementStatusContractDrafted {
		return entities.Contract{}, domainerrors.ErrInvalidStatusTransition
	}

	if _, err := uc.Contracts.ContractByEngagement(ctx, engagement.EngagementID); err == nil {
		return entities.Contract{}, domainerrors.ErrContractAlreadyDrafted
	} else if !errors.Is(err, domainerrors.ErrContractNotFound) {
		return entities.Contract{}, err
	}

	contractID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Contract{}, err
	}
	now := uc.Clock.Now().UTC()
	contract := entities.Contract{
		ContractID:          contractID,
		EngagementID:        engagement.EngagementID,
		ClientID:            client.ProfileID,
		ContractText:        text,
		TermsAccepted:       false,
		Status:              entities.ContractStatusDraft,
		PaymentType:         cmd.PaymentType,
		TargetImpressions:   cmd.TargetImpressions,
		CostPerCPM:          cmd.CostPerCPM,
		StartDate:           cmd.StartDate,
		UsageRightsDuration: strings.TrimSpace(cmd.UsageRightsDuration),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.Contracts.CreateContract(ctx, contract); err != nil {
		return entities.Contract{}, err
	}

	uc.Notifier.InvalidatePaths(ctx, "/contracts")

	logger.Info("contract drafted",
		"event", "contract_drafted",
		"module", "marketplace/engagement-service",
		"layer", "application",
		"contract_id", contract.ContractID,
		"engagement_id", engagement.EngagementID,
	)
	return contract, nil
}

type UpdateContractCommand struct {
	ActorUserID         string
	ContractID          string
	ContractText        *string
	PaymentType         *entities.PaymentType
	TargetImpressions   *int
	CostPerCPM          *float64
	StartDate           *time.Time
	UsageRightsDuration *string
}

type UpdateContractUseCase struct {
	Contracts ports.ContractRepository
	Guard     guardapp.Guard
	Notifier  application.Notifier
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpdateContractUseCase) Execute(ctx context.Context, cmd UpdateContractCommand) error {
	contract, err := uc.Contracts.GetContract(ctx, strings.TrimSpace(cmd.ContractID))
	if err != nil {
		return err
	}
	client, err := uc.Guard.ClientProfile(ctx, cmd.ActorUserID)
	if err != nil {
		return err
	}
	if contract.ClientID != client.ProfileID {
		return guarderrors.ErrAccessDenied
	}
	if !contract.Editable() {
		return domainerrors.ErrContractNotEditable
	}

	if cmd.ContractText != nil {
		text := strings.TrimSpace(*cmd.ContractText)
		if text == "" {
			return domainerrors.ErrInvalidEngagementInput
		}
		contract.ContractText = text
	}
	if cmd.PaymentType != nil {
		if !entities.IsSupportedPaymentType(*cmd.PaymentType) {
			return domainerrors.ErrInvalidEngagementInput
		}
		contract.PaymentType = *cmd.PaymentType
	}
	if cmd.TargetImpressions != nil {
		contract.TargetImpressions = cmd.TargetImpressions
	}
	if cmd.CostPerCPM != nil {
		contract.CostPerCPM = cmd.CostPerCPM
	}
	if cmd.StartDate != nil {
		contract.StartDate = cmd.StartDate
	}
	if cmd.UsageRightsDuration != nil {
		contract.UsageRightsDuration = strings.TrimSpace(*cmd.UsageRightsDuration)
	}
	contract.UpdatedAt = uc.Clock.Now().UTC()

	if err := uc.Contracts.UpdateContract(ctx, contract); err != nil {
		return err
	}
	uc.Notifier.InvalidatePaths(ctx, "/contracts/"+contract.ContractID)
	return nil
}

type SendContractCommand struct {
	ActorUserID string
	ContractID  string
}

// SendContractUseCase hands a drafted contract to the ambassador for
// signature.
type SendContractUseCase struct {
	Contracts ports.ContractRepository
	Guard     guardapp.Guard
	Notifier  application.Notifier
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc SendContractUseCase) Execute(ctx context.Context, cmd SendContractCommand) error {
	contract, err := uc.Contracts.GetContract(ctx, strings.TrimSpace(cmd.ContractID))
	if err != nil {
		return err
	}
	client, err := uc.Guard.ClientProfile(ctx, cmd.ActorUserID)
	if err != nil {
		return err
	}
	if contract.ClientID != client.ProfileID {
		return guarderrors.ErrAccessDenied
	}
	if contract.Status != entities.ContractStatusDraft {
		return domainerrors.ErrContractNotSendable
	}

	contract.Status = entities.ContractStatusPendingSignature
	contract.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Contracts.UpdateContract(ctx, contract); err != nil {
		return err
	}

	uc.Notifier.InvalidatePaths(ctx, "/contracts/"+contract.ContractID)

	application.ResolveLogger(uc.Logger).Info("contract sent",
		"event", "contract_sent",
		"module", "marketplace/engagement-service",
		"layer", "application",
		"contract_id", contract.ContractID,
	)
	return nil
}
