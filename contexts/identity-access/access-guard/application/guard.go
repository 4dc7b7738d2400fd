package application

import (
	"context"
	"log/slog"
	"strings"

	"brandloop/contexts/identity-access/access-guard/domain/entities"
	domainerrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	"brandloop/contexts/identity-access/access-guard/ports"
)

// Guard is the single ownership-check capability shared by every mutating
// operation. Each call performs a fresh lookup; results are never cached.
type Guard struct {
	Profiles  ports.ProfileRepository
	Ownership ports.OwnershipReader
	Logger    *slog.Logger
}

func (g Guard) ClientProfile(ctx context.Context, userID string) (entities.ClientProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.ClientProfile{}, domainerrors.ErrClientProfileNotFound
	}
	return g.Profiles.ClientProfileByUser(ctx, strings.TrimSpace(userID))
}

func (g Guard) AmbassadorProfile(ctx context.Context, userID string) (entities.AmbassadorProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.AmbassadorProfile{}, domainerrors.ErrAmbassadorProfileNotFound
	}
	return g.Profiles.AmbassadorProfileByUser(ctx, strings.TrimSpace(userID))
}

func (g Guard) AmbassadorByProfileID(ctx context.Context, profileID string) (entities.AmbassadorProfile, error) {
	if strings.TrimSpace(profileID) == "" {
		return entities.AmbassadorProfile{}, domainerrors.ErrAmbassadorProfileNotFound
	}
	return g.Profiles.AmbassadorProfileByID(ctx, strings.TrimSpace(profileID))
}

// AssertOwnsCampaign permits the call iff the actor's client profile owns the
// campaign. A missing campaign and a foreign campaign produce the same
// ErrAccessDenied.
func (g Guard) AssertOwnsCampaign(ctx context.Context, actorUserID string, campaignID string) (entities.ClientProfile, error) {
	profile, err := g.ClientProfile(ctx, actorUserID)
	if err != nil {
		return entities.ClientProfile{}, err
	}

	owner, err := g.Ownership.CampaignOwner(ctx, strings.TrimSpace(campaignID))
	if err != nil {
		return entities.ClientProfile{}, domainerrors.ErrAccessDenied
	}
	if owner != profile.ProfileID {
		g.logDenied(ctx, actorUserID, "campaign", campaignID)
		return entities.ClientProfile{}, domainerrors.ErrAccessDenied
	}
	return profile, nil
}

// AssertEngagementAmbassador permits the call iff the actor's ambassador
// profile is the one named by the engagement.
func (g Guard) AssertEngagementAmbassador(ctx context.Context, actorUserID string, engagementID string) (entities.AmbassadorProfile, error) {
	profile, err := g.AmbassadorProfile(ctx, actorUserID)
	if err != nil {
		return entities.AmbassadorProfile{}, err
	}

	named, err := g.Ownership.EngagementAmbassador(ctx, strings.TrimSpace(engagementID))
	if err != nil {
		return entities.AmbassadorProfile{}, domainerrors.ErrAccessDenied
	}
	if named != profile.ProfileID {
		g.logDenied(ctx, actorUserID, "engagement", engagementID)
		return entities.AmbassadorProfile{}, domainerrors.ErrAccessDenied
	}
	return profile, nil
}

func (g Guard) logDenied(_ context.Context, actorUserID string, resource string, resourceID string) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("ownership check denied",
		"event", "access_denied",
		"module", "identity-access/access-guard",
		"layer", "application",
		"actor_user_id", actorUserID,
		"resource", resource,
		"resource_id", resourceID,
	)
}
