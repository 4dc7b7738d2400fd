package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	application "brandloop/contexts/marketplace/engagement-service/application"
	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
	"brandloop/contexts/marketplace/engagement-service/ports"
)

type AcceptProposalCommand struct {
	ActorUserID  string
	ChatThreadID string
}

// AcceptProposalUseCase advances proposal_received to contract_drafted for
// the ambassador's pending proposal linked to a chat thread. The status write
// is a compare-and-swap, so a concurrent duplicate accept fails with
// "proposal already processed" instead of double-applying side effects.
type AcceptProposalUseCase struct {
	Engagements ports.EngagementRepository
	Guard       guardapp.Guard
	Notifier    application.Notifier
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (uc AcceptProposalUseCase) Execute(ctx context.Context, cmd AcceptProposalCommand) (entities.Engagement, error) {
	logger := application.ResolveLogger(uc.Logger)
	threadID := strings.TrimSpace(cmd.ChatThreadID)
	if threadID == "" {
		return entities.Engagement{}, domainerrors.ErrInvalidEngagementInput
	}

	ambassador, err := uc.Guard.AmbassadorProfile(ctx, cmd.ActorUserID)
	if err != nil {
		return entities.Engagement{}, err
	}

	engagement, err := uc.Engagements.LatestByThread(ctx, threadID, ambassador.ProfileID)
	if err != nil {
		return entities.Engagement{}, err
	}
	if engagement.Status != entities.EngagementStatusProposalReceived {
		return entities.Engagement{}, domainerrors.ErrProposalAlreadyProcessed
	}

	now := uc.Clock.Now().UTC()
	updated, err := uc.Engagements.TransitionStatus(
		ctx,
		engagement.EngagementID,
		entities.EngagementStatusProposalReceived,
		entities.EngagementStatusContractDrafted,
		now,
		&now,
	)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStatusConflict) {
			return entities.Engagement{}, domainerrors.ErrProposalAlreadyProcessed
		}
		return entities.Engagement{}, err
	}

	uc.Notifier.SystemMessage(ctx, threadID, strings.TrimSpace(cmd.ActorUserID), "Ambassador accepted the campaign invitation")
	uc.Notifier.InvalidatePaths(ctx, "/chats", "/ambassador/dashboard")

	logger.Info("proposal accepted",
		"event", "engagement_proposal_accepted",
		"module", "marketplace/engagement-service",
		"layer", "application",
		"engagement_id", updated.EngagementID,
		"campaign_id", updated.CampaignID,
		"ambassador_id", updated.AmbassadorID,
	)
	return updated, nil
}
