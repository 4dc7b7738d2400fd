package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "brandloop/contexts/community-experience/chat-service/domain/errors"
	"brandloop/contexts/community-experience/chat-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// StartDirectThread resolves the direct thread between two users, creating it
// when the pair has never chatted before. The call is safe to repeat.
func (s Service) StartDirectThread(ctx context.Context, firstUserID string, secondUserID string) (ports.Thread, error) {
	first := strings.TrimSpace(firstUserID)
	second := strings.TrimSpace(secondUserID)
	if first == "" || second == "" || first == second {
		return ports.Thread{}, domainerrors.ErrInvalidRequest
	}

	threadID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Thread{}, err
	}
	thread, err := s.Repo.EnsureDirectThread(ctx, first, second, threadID, s.now())
	if err != nil {
		return ports.Thread{}, err
	}

	resolveLogger(s.Logger).Debug("direct thread resolved",
		"event", "chat_direct_thread_resolved",
		"module", "community-experience/chat-service",
		"layer", "application",
		"thread_id", thread.ThreadID,
	)
	return thread, nil
}

func (s Service) PostMessage(ctx context.Context, threadID string, senderID string, content string) (ports.Message, error) {
	return s.post(ctx, threadID, senderID, content, ports.MessageTypeText)
}

// PostSystemMessage records workflow notices such as invitation and acceptance
// notes. The sender must still be a participant of the thread.
func (s Service) PostSystemMessage(ctx context.Context, threadID string, senderID string, content string) (ports.Message, error) {
	return s.post(ctx, threadID, senderID, content, ports.MessageTypeSystem)
}

func (s Service) post(ctx context.Context, threadID string, senderID string, content string, messageType string) (ports.Message, error) {
	thread := strings.TrimSpace(threadID)
	sender := strings.TrimSpace(senderID)
	if thread == "" || sender == "" || strings.TrimSpace(content) == "" {
		return ports.Message{}, domainerrors.ErrInvalidRequest
	}

	member, err := s.Repo.IsParticipant(ctx, thread, sender)
	if err != nil {
		return ports.Message{}, err
	}
	if !member {
		return ports.Message{}, domainerrors.ErrNotParticipant
	}

	messageID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Message{}, err
	}
	message := ports.Message{
		MessageID:   messageID,
		ThreadID:    thread,
		SenderID:    sender,
		Content:     content,
		MessageType: messageType,
		CreatedAt:   s.now(),
	}
	if err := s.Repo.CreateMessage(ctx, message); err != nil {
		return ports.Message{}, err
	}
	return message, nil
}

func (s Service) ListMessages(ctx context.Context, requesterID string, input ports.ListMessagesInput) ([]ports.Message, error) {
	requester := strings.TrimSpace(requesterID)
	if requester == "" || strings.TrimSpace(input.ThreadID) == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	member, err := s.Repo.IsParticipant(ctx, strings.TrimSpace(input.ThreadID), requester)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domainerrors.ErrNotParticipant
	}

	if input.Limit <= 0 {
		input.Limit = 50
	}
	if input.Limit > 200 {
		input.Limit = 200
	}
	return s.Repo.ListMessages(ctx, input)
}

func (s Service) IsParticipant(ctx context.Context, threadID string, userID string) (bool, error) {
	if strings.TrimSpace(threadID) == "" || strings.TrimSpace(userID) == "" {
		return false, domainerrors.ErrInvalidRequest
	}
	return s.Repo.IsParticipant(ctx, strings.TrimSpace(threadID), strings.TrimSpace(userID))
}

func (s Service) CleanupOrphanedThreads(ctx context.Context) (int, error) {
	removed, err := s.Repo.DeleteOrphanedDirectThreads(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		resolveLogger(s.Logger).Info("orphaned direct threads removed",
			"event", "chat_orphaned_threads_removed",
			"module", "community-experience/chat-service",
			"layer", "application",
			"removed_count", removed,
		)
	}
	return removed, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
