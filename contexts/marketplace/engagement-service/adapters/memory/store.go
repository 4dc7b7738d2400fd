package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	engagements map[string]entities.Engagement
	contracts   map[string]entities.Contract
}

func NewStore(seed []entities.Engagement) *Store {
	engagements := make(map[string]entities.Engagement, len(seed))
	for _, item := range seed {
		engagements[item.EngagementID] = item
	}
	return &Store{
		engagements: engagements,
		contracts:   make(map[string]entities.Contract),
	}
}

func (s *Store) CreateEngagement(_ context.Context, engagement entities.Engagement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.engagements[engagement.EngagementID]; exists {
		return domainerrors.ErrInvalidEngagementInput
	}
	s.engagements[engagement.EngagementID] = engagement
	return nil
}

func (s *Store) GetEngagement(_ context.Context, engagementID string) (entities.Engagement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.engagements[strings.TrimSpace(engagementID)]
	if !exists {
		return entities.Engagement{}, domainerrors.ErrEngagementNotFound
	}
	return item, nil
}

func (s *Store) LatestByThread(_ context.Context, chatThreadID string, ambassadorID string) (entities.Engagement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found bool
	var latest entities.Engagement
	for _, item := range s.engagements {
		if item.ChatThreadID != strings.TrimSpace(chatThreadID) || item.AmbassadorID != strings.TrimSpace(ambassadorID) {
			continue
		}
		if !found || item.CreatedAt.After(latest.CreatedAt) {
			latest = item
			found = true
		}
	}
	if !found {
		return entities.Engagement{}, domainerrors.ErrProposalNotFound
	}
	return latest, nil
}

func (s *Store) LiveEngagement(_ context.Context, campaignID string, ambassadorID string) (entities.Engagement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found bool
	var latest entities.Engagement
	for _, item := range s.engagements {
		if item.CampaignID != strings.TrimSpace(campaignID) || item.AmbassadorID != strings.TrimSpace(ambassadorID) {
			continue
		}
		if item.Status == entities.EngagementStatusTerminated {
			continue
		}
		if !found || item.CreatedAt.After(latest.CreatedAt) {
			latest = item
			found = true
		}
	}
	if !found {
		return entities.Engagement{}, domainerrors.ErrEngagementNotFound
	}
	return latest, nil
}

func (s *Store) ListByCampaign(_ context.Context, campaignID string) ([]entities.Engagement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Engagement, 0)
	for _, item := range s.engagements {
		if item.CampaignID == strings.TrimSpace(campaignID) {
			items = append(items, item)
		}
	}
	sortNewestFirst(items)
	return items, nil
}

func (s *Store) ListByAmbassador(_ context.Context, ambassadorID string, statuses []entities.EngagementStatus) ([]entities.Engagement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[entities.EngagementStatus]bool, len(statuses))
	for _, status := range statuses {
		wanted[status] = true
	}

	items := make([]entities.Engagement, 0)
	for _, item := range s.engagements {
		if item.AmbassadorID != strings.TrimSpace(ambassadorID) {
			continue
		}
		if len(wanted) > 0 && !wanted[item.Status] {
			continue
		}
		items = append(items, item)
	}
	sortNewestFirst(items)
	return items, nil
}

func (s *Store) TransitionStatus(
	_ context.Context,
	engagementID string,
	from entities.EngagementStatus,
	to entities.EngagementStatus,
	now time.Time,
	selectedAt *time.Time,
) (entities.Engagement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.engagements[strings.TrimSpace(engagementID)]
	if !exists {
		return entities.Engagement{}, domainerrors.ErrEngagementNotFound
	}
	if item.Status != from {
		return entities.Engagement{}, domainerrors.ErrStatusConflict
	}

	item.Status = to
	item.UpdatedAt = now.UTC()
	if selectedAt != nil {
		stamped := selectedAt.UTC()
		item.SelectedAt = &stamped
	}
	s.engagements[item.EngagementID] = item
	return item, nil
}

func (s *Store) CreateContract(_ context.Context, contract entities.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contracts[contract.ContractID]; exists {
		return domainerrors.ErrInvalidEngagementInput
	}
	s.contracts[contract.ContractID] = contract
	return nil
}

func (s *Store) GetContract(_ context.Context, contractID string) (entities.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.contracts[strings.TrimSpace(contractID)]
	if !exists {
		return entities.Contract{}, domainerrors.ErrContractNotFound
	}
	return item, nil
}

func (s *Store) UpdateContract(_ context.Context, contract entities.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contracts[contract.ContractID]; !exists {
		return domainerrors.ErrContractNotFound
	}
	s.contracts[contract.ContractID] = contract
	return nil
}

func (s *Store) ContractByEngagement(_ context.Context, engagementID string) (entities.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.contracts {
		if item.EngagementID == strings.TrimSpace(engagementID) {
			return item, nil
		}
	}
	return entities.Contract{}, domainerrors.ErrContractNotFound
}

func (s *Store) ListContractsByClient(_ context.Context, clientID string) ([]entities.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Contract, 0)
	for _, item := range s.contracts {
		if item.ClientID == strings.TrimSpace(clientID) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Store) ListContractsByAmbassador(ctx context.Context, ambassadorID string) ([]entities.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Contract, 0)
	for _, item := range s.contracts {
		engagement, exists := s.engagements[item.EngagementID]
		if exists && engagement.AmbassadorID == strings.TrimSpace(ambassadorID) {
			items = append(items, item)
		}
	}
	return items, nil
}

// EngagementAmbassador serves the access guard's ownership lookup.
func (s *Store) EngagementAmbassador(_ context.Context, engagementID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.engagements[strings.TrimSpace(engagementID)]
	if !exists {
		return "", domainerrors.ErrEngagementNotFound
	}
	return item.AmbassadorID, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sortNewestFirst(items []entities.Engagement) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
