package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"brandloop/contexts/marketplace/campaign-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/campaign-service/domain/errors"
	"brandloop/contexts/marketplace/campaign-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	campaigns map[string]entities.Campaign
}

func NewStore(seed []entities.Campaign) *Store {
	campaigns := make(map[string]entities.Campaign, len(seed))
	for _, item := range seed {
		campaigns[item.CampaignID] = item
	}
	return &Store{campaigns: campaigns}
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; exists {
		return domainerrors.ErrInvalidCampaignInput
	}
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return item, nil
}

func (s *Store) UpdateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; !exists {
		return domainerrors.ErrCampaignNotFound
	}
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) DeleteCampaign(_ context.Context, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[strings.TrimSpace(campaignID)]; !exists {
		return domainerrors.ErrCampaignNotFound
	}
	delete(s.campaigns, strings.TrimSpace(campaignID))
	return nil
}

func (s *Store) ListCampaigns(_ context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Campaign, 0)
	for _, item := range s.campaigns {
		if strings.TrimSpace(filter.ClientID) != "" && item.ClientID != strings.TrimSpace(filter.ClientID) {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// CampaignTitle serves the engagement workflow's campaign lookup.
func (s *Store) CampaignTitle(ctx context.Context, campaignID string) (string, error) {
	item, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return "", err
	}
	return item.Title, nil
}

// CampaignOwner serves the access guard's ownership lookup.
func (s *Store) CampaignOwner(ctx context.Context, campaignID string) (string, error) {
	item, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return "", err
	}
	return item.ClientID, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
