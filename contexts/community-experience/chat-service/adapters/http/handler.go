package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"brandloop/contexts/community-experience/chat-service/application"
	"brandloop/contexts/community-experience/chat-service/ports"
	httptransport "brandloop/contexts/community-experience/chat-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) StartThreadHandler(
	ctx context.Context,
	userID string,
	req httptransport.StartThreadRequest,
) (httptransport.ThreadResponse, error) {
	thread, err := h.Service.StartDirectThread(ctx, userID, req.WithUserID)
	if err != nil {
		return httptransport.ThreadResponse{}, err
	}
	return httptransport.ThreadResponse{Thread: mapThread(thread)}, nil
}

func (h Handler) PostMessageHandler(
	ctx context.Context,
	userID string,
	threadID string,
	req httptransport.PostMessageRequest,
) (httptransport.MessageResponse, error) {
	message, err := h.Service.PostMessage(ctx, threadID, userID, req.Content)
	if err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: mapMessage(message)}, nil
}

func (h Handler) ListMessagesHandler(
	ctx context.Context,
	userID string,
	threadID string,
	limit int,
) (httptransport.ListMessagesResponse, error) {
	items, err := h.Service.ListMessages(ctx, userID, ports.ListMessagesInput{
		ThreadID: threadID,
		Limit:    limit,
	})
	if err != nil {
		return httptransport.ListMessagesResponse{}, err
	}
	result := make([]httptransport.MessageDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapMessage(item))
	}
	return httptransport.ListMessagesResponse{Items: result}, nil
}

func mapThread(thread ports.Thread) httptransport.ThreadDTO {
	return httptransport.ThreadDTO{
		ThreadID:       thread.ThreadID,
		Kind:           thread.Kind,
		ParticipantIDs: append([]string(nil), thread.ParticipantIDs...),
		CreatedAt:      thread.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapMessage(message ports.Message) httptransport.MessageDTO {
	return httptransport.MessageDTO{
		MessageID:   message.MessageID,
		ThreadID:    message.ThreadID,
		SenderID:    message.SenderID,
		Content:     message.Content,
		MessageType: message.MessageType,
		CreatedAt:   message.CreatedAt.UTC().Format(time.RFC3339),
	}
}
