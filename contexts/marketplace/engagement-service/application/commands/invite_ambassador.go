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

type InviteAmbassadorCommand struct {
	ActorUserID         string
	CampaignID          string
	AmbassadorProfileID string
	Message             string
}

// InviteAmbassadorUseCase creates the engagement in proposal_received,
// creating or reusing the 1:1 chat thread between client and ambassador.
type InviteAmbassadorUseCase struct {
	Engagements ports.EngagementRepository
	Campaigns   ports.CampaignReader
	Guard       guardapp.Guard
	Chat        ports.ChatGateway
	Notifier    application.Notifier
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (uc InviteAmbassadorUseCase) Execute(ctx context.Context, cmd InviteAmbassadorCommand) (entities.Engagement, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaignID := strings.TrimSpace(cmd.CampaignID)
	profileID := strings.TrimSpace(cmd.AmbassadorProfileID)
	if campaignID == "" || profileID == "" {
		return entities.Engagement{}, domainerrors.ErrInvalidEngagementInput
	}

	if _, err := uc.Guard.AssertOwnsCampaign(ctx, cmd.ActorUserID, campaignID); err != nil {
		return entities.Engagement{}, err
	}
	ambassador, err := uc.Guard.AmbassadorByProfileID(ctx, profileID)
	if err != nil {
		return entities.Engagement{}, err
	}

	if _, err := uc.Engagements.LiveEngagement(ctx, campaignID, profileID); err == nil {
		return entities.Engagement{}, domainerrors.ErrAlreadyInvited
	} else if !errors.Is(err, domainerrors.ErrEngagementNotFound) {
		return entities.Engagement{}, err
	}

	title, err := uc.Campaigns.CampaignTitle(ctx, campaignID)
	if err != nil {
		return entities.Engagement{}, err
	}

	threadID, err := uc.Chat.EnsureDirectThread(ctx, strings.TrimSpace(cmd.ActorUserID), ambassador.UserID)
	if err != nil {
		return entities.Engagement{}, err
	}
	if message := strings.TrimSpace(cmd.Message); message != "" {
		if err := uc.Chat.PostMessage(ctx, threadID, strings.TrimSpace(cmd.ActorUserID), message); err != nil {
			return entities.Engagement{}, err
		}
	}

	engagementID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Engagement{}, err
	}
	now := uc.Clock.Now().UTC()
	engagement := entities.Engagement{
		EngagementID: engagementID,
		CampaignID:   campaignID,
		AmbassadorID: profileID,
		ChatThreadID: threadID,
		Status:       entities.EngagementStatusProposalReceived,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.Engagements.CreateEngagement(ctx, engagement); err != nil {
		return entities.Engagement{}, err
	}

	uc.Notifier.SystemMessage(ctx, threadID, strings.TrimSpace(cmd.ActorUserID), "Invitation to campaign: "+title)
	uc.Notifier.InvalidatePaths(ctx, "/campaigns/"+campaignID)

	logger.Info("ambassador invited",
		"event", "engagement_created",
		"module", "marketplace/engagement-service",
		"layer", "application",
		"engagement_id", engagement.EngagementID,
		"campaign_id", campaignID,
		"ambassador_id", profileID,
	)
	return engagement, nil
}
