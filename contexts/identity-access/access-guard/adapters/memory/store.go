package memory

import (
	"context"
	"strings"
	"sync"

	"brandloop/contexts/identity-access/access-guard/domain/entities"
	domainerrors "brandloop/contexts/identity-access/access-guard/domain/errors"
)

type Store struct {
	mu sync.RWMutex

	clientsByUser     map[string]entities.ClientProfile
	ambassadorsByUser map[string]entities.AmbassadorProfile
	ambassadorsByID   map[string]entities.AmbassadorProfile
}

func NewStore() *Store {
	return &Store{
		clientsByUser:     make(map[string]entities.ClientProfile),
		ambassadorsByUser: make(map[string]entities.AmbassadorProfile),
		ambassadorsByID:   make(map[string]entities.AmbassadorProfile),
	}
}

func (s *Store) AddClient(profile entities.ClientProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientsByUser[profile.UserID] = profile
}

func (s *Store) AddAmbassador(profile entities.AmbassadorProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambassadorsByUser[profile.UserID] = profile
	s.ambassadorsByID[profile.ProfileID] = profile
}

func (s *Store) ClientProfileByUser(_ context.Context, userID string) (entities.ClientProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.clientsByUser[strings.TrimSpace(userID)]
	if !ok {
		return entities.ClientProfile{}, domainerrors.ErrClientProfileNotFound
	}
	return profile, nil
}

func (s *Store) AmbassadorProfileByUser(_ context.Context, userID string) (entities.AmbassadorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.ambassadorsByUser[strings.TrimSpace(userID)]
	if !ok {
		return entities.AmbassadorProfile{}, domainerrors.ErrAmbassadorProfileNotFound
	}
	return profile, nil
}

func (s *Store) AmbassadorProfileByID(_ context.Context, profileID string) (entities.AmbassadorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.ambassadorsByID[strings.TrimSpace(profileID)]
	if !ok {
		return entities.AmbassadorProfile{}, domainerrors.ErrAmbassadorProfileNotFound
	}
	return profile, nil
}
