package ports

import (
	"context"
	"time"

	"brandloop/contexts/marketplace/engagement-service/domain/entities"
)

type EngagementRepository interface {
	CreateEngagement(ctx context.Context, engagement entities.Engagement) error
	GetEngagement(ctx context.Context, engagementID string) (entities.Engagement, error)

	// LatestByThread picks the most recent row by created_at when several
	// engagements share a chat thread and ambassador.
	LatestByThread(ctx context.Context, chatThreadID string, ambassadorID string) (entities.Engagement, error)

	// LiveEngagement returns the newest non-terminated row for the pair.
	LiveEngagement(ctx context.Context, campaignID string, ambassadorID string) (entities.Engagement, error)

	ListByCampaign(ctx context.Context, campaignID string) ([]entities.Engagement, error)
	ListByAmbassador(ctx context.Context, ambassadorID string, statuses []entities.EngagementStatus) ([]entities.Engagement, error)

	// TransitionStatus is a compare-and-swap: the row is updated only while
	// its status still equals from. A row whose status moved concurrently
	// yields ErrStatusConflict, a missing row ErrEngagementNotFound.
	TransitionStatus(
		ctx context.Context,
		engagementID string,
		from entities.EngagementStatus,
		to entities.EngagementStatus,
		now time.Time,
		selectedAt *time.Time,
	) (entities.Engagement, error)
}

type ContractRepository interface {
	CreateContract(ctx context.Context, contract entities.Contract) error
	GetContract(ctx context.Context, contractID string) (entities.Contract, error)
	UpdateContract(ctx context.Context, contract entities.Contract) error
	ContractByEngagement(ctx context.Context, engagementID string) (entities.Contract, error)
	ListContractsByClient(ctx context.Context, clientID string) ([]entities.Contract, error)
	ListContractsByAmbassador(ctx context.Context, ambassadorID string) ([]entities.Contract, error)
}

type CampaignReader interface {
	CampaignTitle(ctx context.Context, campaignID string) (string, error)
}

// ChatGateway covers the chat-thread coupling of the workflow: thread
// creation on invite and system messages on transitions.
type ChatGateway interface {
	EnsureDirectThread(ctx context.Context, firstUserID string, secondUserID string) (string, error)
	PostMessage(ctx context.Context, threadID string, senderID string, content string) error
	PostSystemMessage(ctx context.Context, threadID string, senderID string, content string) error
}

// ViewInvalidator emits an "invalidate path" signal after a successful
// mutation so dependent list views refresh.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, path string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
