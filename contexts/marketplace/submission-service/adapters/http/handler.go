package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"brandloop/contexts/marketplace/submission-service/application/commands"
	"brandloop/contexts/marketplace/submission-service/application/queries"
	"brandloop/contexts/marketplace/submission-service/domain/entities"
	httptransport "brandloop/contexts/marketplace/submission-service/transport/http"
)

type Handler struct {
	CreateSubmission      commands.CreateSubmissionUseCase
	UpdateSubmission      commands.UpdateSubmissionUseCase
	ReviewSubmission      commands.ReviewSubmissionUseCase
	EngagementSubmissions queries.EngagementSubmissionsUseCase
	CampaignSubmissions   queries.CampaignSubmissionsUseCase
	MySubmissions         queries.MySubmissionsUseCase
	Logger                *slog.Logger
}

func (h Handler) CreateSubmissionHandler(
	ctx context.Context,
	userID string,
	req httptransport.CreateSubmissionRequest,
) (httptransport.SubmissionResponse, error) {
	submission, err := h.CreateSubmission.Execute(ctx, commands.CreateSubmissionCommand{
		ActorUserID:  userID,
		EngagementID: req.EngagementID,
		ContentURL:   req.ContentURL,
		AdCode:       req.AdCode,
	})
	if err != nil {
		return httptransport.SubmissionResponse{}, err
	}
	return httptransport.SubmissionResponse{Submission: mapSubmission(submission)}, nil
}

func (h Handler) UpdateSubmissionHandler(
	ctx context.Context,
	userID string,
	submissionID string,
	req httptransport.UpdateSubmissionRequest,
) (httptransport.SubmissionResponse, error) {
	submission, err := h.UpdateSubmission.Execute(ctx, commands.UpdateSubmissionCommand{
		ActorUserID:  userID,
		SubmissionID: submissionID,
		ContentURL:   req.ContentURL,
		AdCode:       req.AdCode,
	})
	if err != nil {
		return httptransport.SubmissionResponse{}, err
	}
	return httptransport.SubmissionResponse{Submission: mapSubmission(submission)}, nil
}

func (h Handler) ReviewSubmissionHandler(
	ctx context.Context,
	userID string,
	submissionID string,
	req httptransport.ReviewSubmissionRequest,
) (httptransport.SubmissionResponse, error) {
	submission, err := h.ReviewSubmission.Execute(ctx, commands.ReviewSubmissionCommand{
		ActorUserID:  userID,
		SubmissionID: submissionID,
		Decision:     req.Decision,
		Feedback:     req.Feedback,
	})
	if err != nil {
		return httptransport.SubmissionResponse{}, err
	}
	return httptransport.SubmissionResponse{Submission: mapSubmission(submission)}, nil
}

func (h Handler) EngagementSubmissionsHandler(ctx context.Context, userID string, engagementID string) (httptransport.ListSubmissionsResponse, error) {
	items, err := h.EngagementSubmissions.Execute(ctx, userID, engagementID)
	if err != nil {
		return httptransport.ListSubmissionsResponse{}, err
	}
	return httptransport.ListSubmissionsResponse{Items: mapSubmissions(items)}, nil
}

func (h Handler) CampaignSubmissionsHandler(ctx context.Context, userID string, campaignID string) (httptransport.ListSubmissionsResponse, error) {
	items, err := h.CampaignSubmissions.Execute(ctx, userID, campaignID)
	if err != nil {
		return httptransport.ListSubmissionsResponse{}, err
	}
	return httptransport.ListSubmissionsResponse{Items: mapSubmissions(items)}, nil
}

func (h Handler) MySubmissionsHandler(ctx context.Context, userID string) (httptransport.ListSubmissionsResponse, error) {
	items, err := h.MySubmissions.Execute(ctx, userID)
	if err != nil {
		return httptransport.ListSubmissionsResponse{}, err
	}
	return httptransport.ListSubmissionsResponse{Items: mapSubmissions(items)}, nil
}

func mapSubmission(submission entities.Submission) httptransport.SubmissionDTO {
	dto := httptransport.SubmissionDTO{
		SubmissionID: submission.SubmissionID,
		EngagementID: submission.EngagementID,
		ContentURL:   submission.ContentURL,
		AdCode:       submission.AdCode,
		Status:       string(submission.Status),
		Feedback:     submission.Feedback,
		SubmittedAt:  submission.SubmittedAt.UTC().Format(time.RFC3339),
	}
	if submission.ReviewedAt != nil {
		dto.ReviewedAt = submission.ReviewedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func mapSubmissions(items []entities.Submission) []httptransport.SubmissionDTO {
	result := make([]httptransport.SubmissionDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapSubmission(item))
	}
	return result
}
