package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"brandloop/contexts/marketplace/campaign-service/application/commands"
	"brandloop/contexts/marketplace/campaign-service/application/queries"
	"brandloop/contexts/marketplace/campaign-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/campaign-service/domain/errors"
	httptransport "brandloop/contexts/marketplace/campaign-service/transport/http"
)

type Handler struct {
	CreateCampaign commands.CreateCampaignUseCase
	UpdateCampaign commands.UpdateCampaignUseCase
	ChangeStatus   commands.ChangeStatusUseCase
	DeleteCampaign commands.DeleteCampaignUseCase
	GetCampaign    queries.GetCampaignUseCase
	MyCampaigns    queries.MyCampaignsUseCase
	OpenCampaigns  queries.OpenCampaignsUseCase
	Logger         *slog.Logger
}

func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	userID string,
	req httptransport.CreateCampaignRequest,
) (httptransport.CampaignResponse, error) {
	deadline, err := parseOptionalDate(req.Deadline)
	if err != nil {
		return httptransport.CampaignResponse{}, domainerrors.ErrInvalidCampaignInput
	}
	campaign, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		ActorUserID:     userID,
		Title:           req.Title,
		Description:     req.Description,
		BudgetMin:       req.BudgetMin,
		BudgetMax:       req.BudgetMax,
		Deadline:        deadline,
		Requirements:    req.Requirements,
		ProposalMessage: req.ProposalMessage,
		MaxAmbassadors:  req.MaxAmbassadors,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) UpdateCampaignHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	req httptransport.UpdateCampaignRequest,
) (httptransport.CampaignResponse, error) {
	campaign, err := h.UpdateCampaign.Execute(ctx, commands.UpdateCampaignCommand{
		ActorUserID:     userID,
		CampaignID:      campaignID,
		Title:           req.Title,
		Description:     req.Description,
		BudgetMin:       req.BudgetMin,
		BudgetMax:       req.BudgetMax,
		Requirements:    req.Requirements,
		ProposalMessage: req.ProposalMessage,
		MaxAmbassadors:  req.MaxAmbassadors,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) ChangeStatusHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	req httptransport.ChangeStatusRequest,
) (httptransport.CampaignResponse, error) {
	campaign, err := h.ChangeStatus.Execute(ctx, commands.ChangeStatusCommand{
		ActorUserID: userID,
		CampaignID:  campaignID,
		Status:      req.Status,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) DeleteCampaignHandler(ctx context.Context, userID string, campaignID string) error {
	return h.DeleteCampaign.Execute(ctx, commands.DeleteCampaignCommand{
		ActorUserID: userID,
		CampaignID:  campaignID,
	})
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (httptransport.CampaignResponse, error) {
	campaign, err := h.GetCampaign.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) MyCampaignsHandler(ctx context.Context, userID string, status string) (httptransport.ListCampaignsResponse, error) {
	items, err := h.MyCampaigns.Execute(ctx, userID, status)
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}
	return httptransport.ListCampaignsResponse{Items: mapCampaigns(items)}, nil
}

func (h Handler) OpenCampaignsHandler(ctx context.Context) (httptransport.ListCampaignsResponse, error) {
	items, err := h.OpenCampaigns.Execute(ctx)
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}
	return httptransport.ListCampaignsResponse{Items: mapCampaigns(items)}, nil
}

func mapCampaign(campaign entities.Campaign) httptransport.CampaignDTO {
	dto := httptransport.CampaignDTO{
		CampaignID:      campaign.CampaignID,
		ClientID:        campaign.ClientID,
		Title:           campaign.Title,
		Description:     campaign.Description,
		BudgetMin:       campaign.BudgetMin,
		BudgetMax:       campaign.BudgetMax,
		Requirements:    campaign.Requirements,
		ProposalMessage: campaign.ProposalMessage,
		MaxAmbassadors:  campaign.MaxAmbassadors,
		Status:          string(campaign.Status),
		CreatedAt:       campaign.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       campaign.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if campaign.Deadline != nil {
		dto.Deadline = campaign.Deadline.UTC().Format(time.RFC3339)
	}
	return dto
}

func mapCampaigns(items []entities.Campaign) []httptransport.CampaignDTO {
	result := make([]httptransport.CampaignDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapCampaign(item))
	}
	return result
}

func parseOptionalDate(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		utc := parsed.UTC()
		return &utc, nil
	}
	parsed, err := time.Parse("2006-01-02", trimmed)
	if err != nil {
		return nil, err
	}
	utc := parsed.UTC()
	return &utc, nil
}
