package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

const (
	ThreadKindDirect = "direct"

	MessageTypeText   = "text"
	MessageTypeSystem = "system"
)

type Thread struct {
	ThreadID       string
	Kind           string
	ParticipantIDs []string
	CreatedAt      time.Time
}

type Message struct {
	MessageID   string
	ThreadID    string
	SenderID    string
	Content     string
	MessageType string
	CreatedAt   time.Time
}

type ListMessagesInput struct {
	ThreadID string
	Limit    int
}

type Repository interface {
	// EnsureDirectThread returns the existing direct thread between the two
	// users, or persists a new one under threadID when none exists yet.
	EnsureDirectThread(ctx context.Context, firstUserID string, secondUserID string, threadID string, now time.Time) (Thread, error)
	GetThread(ctx context.Context, threadID string) (Thread, error)
	IsParticipant(ctx context.Context, threadID string, userID string) (bool, error)
	CreateMessage(ctx context.Context, message Message) error
	ListMessages(ctx context.Context, input ListMessagesInput) ([]Message, error)
	// DeleteOrphanedDirectThreads removes direct threads that are left with
	// fewer than two participants, together with their messages.
	DeleteOrphanedDirectThreads(ctx context.Context) (int, error)
}
