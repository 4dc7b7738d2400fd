package workers

import (
	"context"
	"log/slog"

	"brandloop/contexts/community-experience/chat-service/application"
)

// ThreadCleanup removes direct threads that lost a participant, for example
// when an account is deleted, so stale one sided conversations do not pile up.
type ThreadCleanup struct {
	Chat   application.Service
	Logger *slog.Logger
}

func (c ThreadCleanup) RunOnce(ctx context.Context) error {
	logger := c.logger()
	removed, err := c.Chat.CleanupOrphanedThreads(ctx)
	if err != nil {
		logger.Error("thread cleanup cycle failed",
			"event", "chat_thread_cleanup_failed",
			"module", "community-experience/chat-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	logger.Debug("thread cleanup cycle completed",
		"event", "chat_thread_cleanup_completed",
		"module", "community-experience/chat-service",
		"layer", "worker",
		"removed_count", removed,
	)
	return nil
}

func (c ThreadCleanup) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
