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

type StatusAction string

const (
	StatusActionActivate  StatusAction = "activate"
	StatusActionComplete  StatusAction = "complete"
	StatusActionTerminate StatusAction = "terminate"
)

type ChangeStatusCommand struct {
	ActorUserID  string
	EngagementID string
	Action       StatusAction
}

// ChangeStatusUseCase covers the client-driven transitions after signing:
// activate (contract_signed -> active), complete (active -> complete) and
// terminate (any non-terminal -> terminated, absorbing).
type ChangeStatusUseCase struct {
	Engagements ports.EngagementRepository
	Guard       guardapp.Guard
	Notifier    application.Notifier
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (uc ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (entities.Engagement, error) {
	logger := application.ResolveLogger(uc.Logger)
	engagement, err := uc.Engagements.GetEngagement(ctx, strings.TrimSpace(cmd.EngagementID))
	if err != nil {
		return entities.Engagement{}, err
	}
	if _, err := uc.Guard.AssertOwnsCampaign(ctx, cmd.ActorUserID, engagement.CampaignID); err != nil {
		return entities.Engagement{}, err
	}

	from := engagement.Status
	var to entities.EngagementStatus
	switch cmd.Action {
	case StatusActionActivate:
		if from != entities.EngagementStatusContractSigned {
			return entities.Engagement{}, uc.invalidFrom(from)
		}
		to = entities.EngagementStatusActive
	case StatusActionComplete:
		if from != entities.EngagementStatusActive {
			return entities.Engagement{}, uc.invalidFrom(from)
		}
		to = entities.EngagementStatusComplete
	case StatusActionTerminate:
		if from.Terminal() {
			return entities.Engagement{}, uc.invalidFrom(from)
		}
		to = entities.EngagementStatusTerminated
	default:
		return entities.Engagement{}, domainerrors.ErrInvalidEngagementInput
	}

	now := uc.Clock.Now().UTC()
	updated, err := uc.Engagements.TransitionStatus(ctx, engagement.EngagementID, from, to, now, nil)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStatusConflict) {
			return entities.Engagement{}, domainerrors.ErrInvalidStatusTransition
		}
		return entities.Engagement{}, err
	}

	uc.Notifier.InvalidatePaths(ctx,
		"/campaigns/"+updated.CampaignID,
		"/ambassador/dashboard",
		"/client/dashboard",
	)

	logger.Info("engagement status changed",
		"event", "engagement_status_changed",
		"module", "marketplace/engagement-service",
		"layer", "application",
		"engagement_id", updated.EngagementID,
		"from_status", string(from),
		"to_status", string(to),
	)
	return updated, nil
}

func (uc ChangeStatusUseCase) invalidFrom(from entities.EngagementStatus) error {
	if from == entities.EngagementStatusTerminated {
		return domainerrors.ErrEngagementTerminated
	}
	return domainerrors.ErrInvalidStatusTransition
}
