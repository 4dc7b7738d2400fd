package application

import (
	"context"
	"log/slog"

	"brandloop/contexts/marketplace/engagement-service/ports"
)

// Notifier carries the side effects of a completed transition: a system chat
// message and cache-invalidation signals. Both are best-effort; the status
// write is the source of truth and a failed side effect never rolls it back.
type Notifier struct {
	Chat        ports.ChatGateway
	Invalidator ports.ViewInvalidator
	Logger      *slog.Logger
}

func (n Notifier) SystemMessage(ctx context.Context, threadID string, senderID string, content string) {
	if n.Chat == nil || threadID == "" {
		return
	}
	if err := n.Chat.PostSystemMessage(ctx, threadID, senderID, content); err != nil {
		ResolveLogger(n.Logger).Warn("system message not delivered",
			"event", "engagement_system_message_failed",
			"module", "marketplace/engagement-service",
			"layer", "application",
			"thread_id", threadID,
			"error", err.Error(),
		)
	}
}

func (n Notifier) InvalidatePaths(ctx context.Context, paths ...string) {
	if n.Invalidator == nil {
		return
	}
	for _, path := range paths {
		if err := n.Invalidator.Invalidate(ctx, path); err != nil {
			ResolveLogger(n.Logger).Warn("view invalidation not delivered",
				"event", "engagement_invalidate_failed",
				"module", "marketplace/engagement-service",
				"layer", "application",
				"path", path,
				"error", err.Error(),
			)
		}
	}
}
