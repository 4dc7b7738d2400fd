package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"brandloop/contexts/marketplace/engagement-service/application/commands"
	"brandloop/contexts/marketplace/engagement-service/application/queries"
	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
	httptransport "brandloop/contexts/marketplace/engagement-service/transport/http"
)

type Handler struct {
	InviteAmbassador commands.InviteAmbassadorUseCase
	AcceptProposal   commands.AcceptProposalUseCase
	ChangeStatus     commands.ChangeStatusUseCase
	DraftContract    commands.DraftContractUseCase
	UpdateContract   commands.UpdateContractUseCase
	SendContract     commands.SendContractUseCase
	SignContract     commands.SignContractUseCase
	GetEngagement    queries.GetEngagementUseCase
	ListByCampaign   queries.ListCampaignEngagementsUseCase
	MyEngagements    queries.AmbassadorEngagementsUseCase
	GetContract      queries.GetContractUseCase
	MyContracts      queries.MyContractsUseCase
	Logger           *slog.Logger
}

func (h Handler) InviteAmbassadorHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	req httptransport.InviteAmbassadorRequest,
) (httptransport.EngagementResponse, error) {
	engagement, err := h.InviteAmbassador.Execute(ctx, commands.InviteAmbassadorCommand{
		ActorUserID:         userID,
		CampaignID:          campaignID,
		AmbassadorProfileID: req.AmbassadorProfileID,
		Message:             req.Message,
	})
	if err != nil {
		return httptransport.EngagementResponse{}, err
	}
	return httptransport.EngagementResponse{Engagement: mapEngagement(engagement)}, nil
}

func (h Handler) AcceptProposalHandler(
	ctx context.Context,
	userID string,
	req httptransport.AcceptProposalRequest,
) (httptransport.EngagementResponse, error) {
	engagement, err := h.AcceptProposal.Execute(ctx, commands.AcceptProposalCommand{
		ActorUserID:  userID,
		ChatThreadID: req.ChatThreadID,
	})
	if err != nil {
		return httptransport.EngagementResponse{}, err
	}
	return httptransport.EngagementResponse{Engagement: mapEngagement(engagement)}, nil
}

func (h Handler) ChangeStatusHandler(
	ctx context.Context,
	userID string,
	engagementID string,
	action commands.StatusAction,
) (httptransport.EngagementResponse, error) {
	engagement, err := h.ChangeStatus.Execute(ctx, commands.ChangeStatusCommand{
		ActorUserID:  userID,
		EngagementID: engagementID,
		Action:       action,
	})
	if err != nil {
		return httptransport.EngagementResponse{}, err
	}
	return httptransport.EngagementResponse{Engagement: mapEngagement(engagement)}, nil
}

func (h Handler) GetEngagementHandler(ctx context.Context, userID string, engagementID string) (httptransport.EngagementResponse, error) {
	engagement, err := h.GetEngagement.Execute(ctx, userID, engagementID)
	if err != nil {
		return httptransport.EngagementResponse{}, err
	}
	return httptransport.EngagementResponse{Engagement: mapEngagement(engagement)}, nil
}

func (h Handler) ListCampaignEngagementsHandler(
	ctx context.Context,
	userID string,
	campaignID string,
) (httptransport.ListEngagementsResponse, error) {
	items, err := h.ListByCampaign.Execute(ctx, userID, campaignID)
	if err != nil {
		return httptransport.ListEngagementsResponse{}, err
	}
	return httptransport.ListEngagementsResponse{Items: mapEngagements(items)}, nil
}

func (h Handler) MyEngagementsHandler(ctx context.Context, userID string) (httptransport.ListEngagementsResponse, error) {
	items, err := h.MyEngagements.Execute(ctx, userID)
	if err != nil {
		return httptransport.ListEngagementsResponse{}, err
	}
	return httptransport.ListEngagementsResponse{Items: mapEngagements(items)}, nil
}

func (h Handler) DraftContractHandler(
	ctx context.Context,
	userID string,
	engagementID string,
	req httptransport.DraftContractRequest,
) (httptransport.ContractResponse, error) {
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return httptransport.ContractResponse{}, domainerrors.ErrInvalidEngagementInput
	}
	contract, err := h.DraftContract.Execute(ctx, commands.DraftContractCommand{
		ActorUserID:         userID,
		EngagementID:        engagementID,
		ContractText:        req.ContractText,
		PaymentType:         entities.PaymentType(strings.TrimSpace(req.PaymentType)),
		TargetImpressions:   req.TargetImpressions,
		CostPerCPM:          req.CostPerCPM,
		StartDate:           startDate,
		UsageRightsDuration: req.UsageRightsDuration,
	})
	if err != nil {
		return httptransport.ContractResponse{}, err
	}
	return httptransport.ContractResponse{Contract: mapContract(contract)}, nil
}

func (h Handler) UpdateContractHandler(
	ctx context.Context,
	userID string,
	contractID string,
	req httptransport.UpdateContractRequest,
) error {
	cmd := commands.UpdateContractCommand{
		ActorUserID:         userID,
		ContractID:          contractID,
		ContractText:        req.ContractText,
		TargetImpressions:   req.TargetImpressions,
		CostPerCPM:          req.CostPerCPM,
		UsageRightsDuration: req.UsageRightsDuration,
	}
	if req.PaymentType != nil {
		paymentType := entities.PaymentType(strings.TrimSpace(*req.PaymentType))
		cmd.PaymentType = &paymentType
	}
	if req.StartDate != nil {
		startDate, err := parseOptionalDate(*req.StartDate)
		if err != nil {
			return domainerrors.ErrInvalidEngagementInput
		}
		cmd.StartDate = startDate
	}
	return h.UpdateContract.Execute(ctx, cmd)
}

func (h Handler) SendContractHandler(ctx context.Context, userID string, contractID string) error {
	return h.SendContract.Execute(ctx, commands.SendContractCommand{
		ActorUserID: userID,
		ContractID:  contractID,
	})
}

func (h Handler) SignContractHandler(
	ctx context.Context,
	userID string,
	contractID string,
	req httptransport.SignContractRequest,
) error {
	return h.SignContract.Execute(ctx, commands.SignContractCommand{
		ActorUserID: userID,
		ContractID:  contractID,
		Signer:      entities.SignerRole(strings.TrimSpace(req.Signer)),
	})
}

func (h Handler) GetContractHandler(ctx context.Context, userID string, contractID string) (httptransport.ContractResponse, error) {
	contract, err := h.GetContract.Execute(ctx, userID, contractID)
	if err != nil {
		return httptransport.ContractResponse{}, err
	}
	return httptransport.ContractResponse{Contract: mapContract(contract)}, nil
}

func (h Handler) MyContractsHandler(ctx context.Context, userID string) (httptransport.ListContractsResponse, error) {
	items, err := h.MyContracts.Execute(ctx, userID)
	if err != nil {
		return httptransport.ListContractsResponse{}, err
	}
	result := make([]httptransport.ContractDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapContract(item))
	}
	return httptransport.ListContractsResponse{Items: result}, nil
}

func mapEngagement(item entities.Engagement) httptransport.EngagementDTO {
	result := httptransport.EngagementDTO{
		EngagementID: item.EngagementID,
		CampaignID:   item.CampaignID,
		AmbassadorID: item.AmbassadorID,
		ChatThreadID: item.ChatThreadID,
		Status:       string(item.Status),
		CreatedAt:    item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    item.UpdatedAt.Format(time.RFC3339),
	}
	if item.SelectedAt != nil {
		result.SelectedAt = item.SelectedAt.Format(time.RFC3339)
	}
	return result
}

func mapEngagements(items []entities.Engagement) []httptransport.EngagementDTO {
	result := make([]httptransport.EngagementDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapEngagement(item))
	}
	return result
}

func mapContract(item entities.Contract) httptransport.ContractDTO {
	result := httptransport.ContractDTO{
		ContractID:          item.ContractID,
		EngagementID:        item.EngagementID,
		ClientID:            item.ClientID,
		ContractText:        item.ContractText,
		TermsAccepted:       item.TermsAccepted,
		Status:              string(item.Status),
		PaymentType:         string(item.PaymentType),
		TargetImpressions:   item.TargetImpressions,
		CostPerCPM:          item.CostPerCPM,
		UsageRightsDuration: item.UsageRightsDuration,
		CreatedAt:           item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           item.UpdatedAt.Format(time.RFC3339),
	}
	if item.StartDate != nil {
		result.StartDate = item.StartDate.Format(time.RFC3339)
	}
	if item.ClientSignedAt != nil {
		result.ClientSignedAt = item.ClientSignedAt.Format(time.RFC3339)
	}
	if item.AmbassadorSignedAt != nil {
		result.AmbassadorSignedAt = item.AmbassadorSignedAt.Format(time.RFC3339)
	}
	return result
}

func parseOptionalDate(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", trimmed)
		if err != nil {
			return nil, err
		}
	}
	utc := parsed.UTC()
	return &utc, nil
}
