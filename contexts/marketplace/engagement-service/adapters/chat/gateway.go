package chatadapter

import (
	"context"

	chatapp "brandloop/contexts/community-experience/chat-service/application"
)

// Gateway adapts the chat service to the workflow's view of chat: thread
// creation on invite plus plain and system messages.
type Gateway struct {
	Chat chatapp.Service
}

func (g Gateway) EnsureDirectThread(ctx context.Context, firstUserID string, secondUserID string) (string, error) {
	thread, err := g.Chat.StartDirectThread(ctx, firstUserID, secondUserID)
	if err != nil {
		return "", err
	}
	return thread.ThreadID, nil
}

func (g Gateway) PostMessage(ctx context.Context, threadID string, senderID string, content string) error {
	_, err := g.Chat.PostMessage(ctx, threadID, senderID, content)
	return err
}

func (g Gateway) PostSystemMessage(ctx context.Context, threadID string, senderID string, content string) error {
	_, err := g.Chat.PostSystemMessage(ctx, threadID, senderID, content)
	return err
}
